package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// makeRequest posts in as JSON and decodes the answer into out.
func makeRequest(ctx context.Context, client *http.Client, url string, headers map[string]string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return decodeResponse(client, req, out)
}

// decodeResponse sends req and decodes a 2xx JSON body into out. Any other
// status is returned as an error carrying the response body.
func decodeResponse(client *http.Client, req *http.Request, out interface{}) error {
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var buf bytes.Buffer
	_, err = io.Copy(&buf, res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, res.StatusCode, bytes.TrimSpace(buf.Bytes()))
	}

	if out == nil || buf.Len() == 0 {
		return nil
	}
	return json.Unmarshal(buf.Bytes(), out)
}
