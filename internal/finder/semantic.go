// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package finder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/pdiddy/paperwatch/internal/httputil"
	"github.com/pdiddy/paperwatch/pkg/types"
)

// semanticAPIBase is the Semantic Scholar paper search endpoint. Declared
// as a var so tests can substitute an httptest server.
var semanticAPIBase = "https://api.semanticscholar.org/graph/v1/paper/search"

// semanticFields is the field set requested for every search.
const semanticFields = "title,authors,url,venue,year,publicationDate"

// resultLimit caps a search at one page of results.
const resultLimit = 100

// SemanticClient queries the Semantic Scholar paper search API. Outbound
// requests pass through a client-side rate limiter.
type SemanticClient struct {
	client    *http.Client
	limiter   *rate.Limiter
	apiKey    string
	userAgent string
}

// NewSemanticClient builds a client from cfg, applying defaults for the
// timeout and request rate.
func NewSemanticClient(cfg types.FinderConfig) *SemanticClient {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	return &SemanticClient{
		client:    httputil.NewClient(cfg.Timeout),
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
		apiKey:    cfg.SemanticScholarAPIKey,
		userAgent: cfg.UserAgent,
	}
}

// Search issues a single window-filtered query for topic and returns the
// decoded records in service order. A missing or empty data array is an
// empty slice, not an error.
func (c *SemanticClient) Search(ctx context.Context, topic string, window SearchWindow) ([]types.PaperRecord, error) {
	if topic == "" {
		return nil, fmt.Errorf("empty search topic")
	}

	params := url.Values{
		"query":           {topic},
		"fields":          {semanticFields},
		"publicationDate": {window.String()},
		"limit":           {strconv.Itoa(resultLimit)},
	}
	reqURL := semanticAPIBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := httputil.Do(ctx, c.client, c.limiter, req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, &RemoteError{StatusCode: resp.StatusCode}
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	records := make([]types.PaperRecord, 0, len(sr.Data))
	for _, p := range sr.Data {
		rec := types.PaperRecord{
			Title:           p.Title,
			URL:             p.URL,
			Venue:           p.Venue,
			Year:            p.Year,
			PublicationDate: p.PublicationDate,
		}
		for _, a := range p.Authors {
			rec.Authors = append(rec.Authors, a.Name)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Semantic Scholar API JSON structures.
type searchResponse struct {
	Total  int           `json:"total"`
	Offset int           `json:"offset"`
	Data   []searchPaper `json:"data"`
}

type searchPaper struct {
	PaperID         string         `json:"paperId"`
	Title           string         `json:"title"`
	URL             string         `json:"url"`
	Venue           string         `json:"venue"`
	Year            int            `json:"year"`
	PublicationDate string         `json:"publicationDate"`
	Authors         []searchAuthor `json:"authors"`
}

type searchAuthor struct {
	AuthorID string `json:"authorId"`
	Name     string `json:"name"`
}
