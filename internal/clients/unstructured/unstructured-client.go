package unstructured_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/parsewell/excel-gateway/internal/config"
)

// UnstructuredClient talks to the remote parser that handles structurally
// complex workbooks (merged cells, template-driven reports).
type UnstructuredClient struct {
	url    string
	client *http.Client
}

type ParseRequest struct {
	BucketName string `json:"bucket_name"`
	FileName   string `json:"file_name"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func New(cfg *config.Config) *UnstructuredClient {
	client := &http.Client{
		Timeout: cfg.Clients.Unstructured.Timeout,
	}

	return &UnstructuredClient{
		url:    cfg.Clients.Unstructured.Url,
		client: client,
	}
}

// Parse forwards a file reference to the remote parser and returns the raw
// result payload on HTTP 200. Any other status or transport failure comes
// back as an error; nothing escapes this boundary.
func (this *UnstructuredClient) Parse(ctx context.Context, bucket, key string) (json.RawMessage, error) {
	payload := ParseRequest{
		BucketName: bucket,
		FileName:   key,
	}

	js, e := json.Marshal(payload)
	if e != nil {
		return nil, e
	}

	req, e := http.NewRequestWithContext(ctx, "POST", this.url, bytes.NewBuffer(js))
	if e != nil {
		return nil, e
	}

	req.Header.Set("Content-Type", "application/json")

	res, e := this.client.Do(req)
	if e != nil {
		return nil, fmt.Errorf("failed to communicate with unstructured parser: %w", e)
	}
	defer res.Body.Close()

	body, e := io.ReadAll(res.Body)
	if e != nil {
		return nil, e
	}

	if res.StatusCode != 200 {
		var er errorResponse
		if json.Unmarshal(body, &er) == nil && er.Error != "" {
			return nil, fmt.Errorf("unstructured parser failed: %s", er.Error)
		}
		return nil, fmt.Errorf("unstructured parser failed: API error %d: %s", res.StatusCode, string(body))
	}

	return json.RawMessage(body), nil
}
