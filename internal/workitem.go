package internal

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const (
	providerMonday = "monday"

	createItemMutation = `mutation ($boardId: ID!, $itemName: String!) { create_item (board_id: $boardId, item_name: $itemName) { id } }`
)

type IWorkItem interface {
	CreateItem(ctx context.Context, boardID, title string) (string, error)
}

// MondayWorkItems creates board items through the monday.com GraphQL API.
type MondayWorkItems struct {
	apiURL string
	apiKey string
	client *http.Client
	logger *zap.SugaredLogger
}

func NewMondayWorkItems(cfg MondayConfig, client *http.Client, logger *zap.SugaredLogger) *MondayWorkItems {
	return &MondayWorkItems{apiURL: cfg.APIURL, apiKey: cfg.APIKey, client: client, logger: logger}
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type createItemResponse struct {
	Data struct {
		CreateItem *struct {
			ID string `json:"id"`
		} `json:"create_item"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
	ErrorMessage string `json:"error_message"`
}

func (m *MondayWorkItems) CreateItem(ctx context.Context, boardID, title string) (string, error) {
	req := graphQLRequest{
		Query:     createItemMutation,
		Variables: map[string]interface{}{"boardId": boardID, "itemName": title},
	}

	var res createItemResponse
	err := makeRequest(ctx, m.client, m.apiURL, map[string]string{"Authorization": m.apiKey}, req, &res)
	if err != nil {
		return "", NewUpstreamError(providerMonday, err)
	}

	if len(res.Errors) > 0 || res.ErrorMessage != "" {
		msgs := make([]string, 0, len(res.Errors)+1)
		for _, e := range res.Errors {
			msgs = append(msgs, e.Message)
		}
		if res.ErrorMessage != "" {
			msgs = append(msgs, res.ErrorMessage)
		}
		return "", NewUpstreamError(providerMonday, fmt.Errorf("%w: %s", ErrGraphQLResponse, strings.Join(msgs, "; ")))
	}
	if res.Data.CreateItem == nil {
		return "", NewUpstreamError(providerMonday, fmt.Errorf("%w: create_item is empty", ErrGraphQLResponse))
	}

	m.logger.Infof("monday.com item created: %s", res.Data.CreateItem.ID)
	return res.Data.CreateItem.ID, nil
}
