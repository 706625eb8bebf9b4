package internal

import (
	"context"

	"github.com/algolia/algoliasearch-client-go/v3/algolia/search"
	"go.uber.org/zap"

	"github.com/DrGermanius/OnboardFlow/internal/model"
)

const providerAlgolia = "algolia"

type IIndexer interface {
	Upsert(ctx context.Context, objectID string, doc model.SearchDocument) error
}

// AlgoliaIndexer writes order snapshots with SaveObject, which replaces any
// object already stored under the same objectID.
type AlgoliaIndexer struct {
	index  *search.Index
	logger *zap.SugaredLogger
}

func NewAlgoliaIndexer(cfg AlgoliaConfig, logger *zap.SugaredLogger) *AlgoliaIndexer {
	return NewAlgoliaIndexerWithClient(search.NewClient(cfg.AppID, cfg.AdminKey), cfg.IndexName, logger)
}

func NewAlgoliaIndexerWithClient(client *search.Client, indexName string, logger *zap.SugaredLogger) *AlgoliaIndexer {
	return &AlgoliaIndexer{index: client.InitIndex(indexName), logger: logger}
}

func (a *AlgoliaIndexer) Upsert(ctx context.Context, objectID string, doc model.SearchDocument) error {
	doc.ObjectID = objectID

	_, err := a.index.SaveObject(doc, ctx)
	if err != nil {
		return NewUpstreamError(providerAlgolia, err)
	}

	a.logger.Infof("Indexed order in Algolia: %s", objectID)
	return nil
}
