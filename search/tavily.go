package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ankoehn/ai-content-writer/config"
	"github.com/ankoehn/ai-content-writer/httpclient"
	"github.com/ankoehn/ai-content-writer/logger"
	"github.com/ankoehn/ai-content-writer/models"
)

// TavilyEngine implements Engine using the Tavily search API.
type TavilyEngine struct {
	client *httpclient.BaseClient
	cfg    config.TavilyConfig
}

// NewTavilyEngine builds a Tavily engine from configuration.
func NewTavilyEngine(cfg config.TavilyConfig) *TavilyEngine {
	return &TavilyEngine{
		client: httpclient.NewBaseClient(cfg.APIURL),
		cfg:    cfg,
	}
}

// NewTavilyEngineWithClient allows injecting a custom http.Client, mainly
// for tests against a local server.
func NewTavilyEngineWithClient(cfg config.TavilyConfig, hc *http.Client) *TavilyEngine {
	return &TavilyEngine{
		client: httpclient.NewBaseClientWithClient(hc, cfg.APIURL),
		cfg:    cfg,
	}
}

type tavilySearchRequest struct {
	APIKey            string `json:"api_key"`
	Query             string `json:"query"`
	SearchDepth       string `json:"search_depth"`
	IncludeAnswer     bool   `json:"include_answer"`
	Topic             string `json:"topic"`
	IncludeRawContent bool   `json:"include_raw_content"`
	MaxResults        int    `json:"max_results"`
}

type tavilySearchResponse struct {
	Results []struct {
		Title      string `json:"title"`
		Content    string `json:"content"`
		RawContent string `json:"raw_content"`
	} `json:"results"`
}

// Search runs one query against the Tavily /search endpoint with the
// configured depth, topic and result count. Per result, the raw page
// content is preferred over the short snippet when available.
func (e *TavilyEngine) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	body, err := json.Marshal(tavilySearchRequest{
		APIKey:            e.cfg.APIKey,
		Query:             query,
		SearchDepth:       e.cfg.SearchDepth,
		IncludeAnswer:     e.cfg.IncludeAnswer,
		Topic:             e.cfg.Topic,
		IncludeRawContent: e.cfg.IncludeRawContent,
		MaxResults:        e.cfg.MaxResults,
	})
	if err != nil {
		return nil, err
	}

	resp, err := e.client.PostJSON(ctx, "/search", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("tavily: unexpected status %d: %s", resp.StatusCode, string(snippet))
	}

	var decoded tavilySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("tavily: decode response: %w", err)
	}

	results := make([]models.SearchResult, 0, len(decoded.Results))
	for _, item := range decoded.Results {
		content := item.RawContent
		if content == "" {
			content = item.Content
		}
		results = append(results, models.SearchResult{
			Title:   item.Title,
			Content: content,
		})
	}

	logger.Log.Infof("tavily search returned %d results for query %q", len(results), query)
	return results, nil
}
