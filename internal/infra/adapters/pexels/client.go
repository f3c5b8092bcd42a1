package pexels

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/bunny00908/anime/internal/config"
	"github.com/bunny00908/anime/internal/domain/model"
	"github.com/bunny00908/anime/internal/domain/ports/adapter"
	"github.com/bunny00908/anime/internal/infra/logging"
)

var _ adapter.ImageSearchAdapter = (*Client)(nil)

const (
	defaultBaseURL = "https://api.pexels.com/v1"
	perPage        = 20
	requestTimeout = 10 * time.Second
)

type photoSrc struct {
	Original string `json:"original"`
	Large    string `json:"large"`
}

type photo struct {
	ID           int      `json:"id"`
	Photographer string   `json:"photographer"`
	Alt          string   `json:"alt"`
	Src          photoSrc `json:"src"`
}

type searchResponse struct {
	TotalResults int     `json:"total_results"`
	Page         int     `json:"page"`
	PerPage      int     `json:"per_page"`
	Photos       []photo `json:"photos"`
}

// Client talks to the Pexels photo search API.
type Client struct {
	http *resty.Client
	log  *zerolog.Logger
}

func NewClient(cfg *config.PexelsConfig, logger *zerolog.Logger) (*Client, error) {
	if cfg == nil || cfg.Key == "" {
		return nil, errors.New("pexels key is empty")
	}
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	rc := resty.New().
		SetBaseURL(base).
		SetHeader("Authorization", cfg.Key).
		SetTimeout(requestTimeout)
	return &Client{http: rc, log: logger}, nil
}

// Search runs one photo search. An empty result slice is a valid outcome;
// the caller decides whether that counts as a failure.
func (c *Client) Search(ctx context.Context, query string, page int) ([]model.Image, error) {
	var body searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":       query,
			"per_page":    strconv.Itoa(perPage),
			"page":        strconv.Itoa(page),
			"orientation": "all",
		}).
		SetResult(&body).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("pexels search %q: %w", query, err)
	}
	if resp.IsError() {
		logging.With(ctx, c.log).Debug().Int("status", resp.StatusCode()).Str("query", query).Msg("pexels returned an error status")
		return nil, fmt.Errorf("pexels search %q: unexpected status %d", query, resp.StatusCode())
	}

	out := make([]model.Image, 0, len(body.Photos))
	for _, p := range body.Photos {
		url := p.Src.Large
		if url == "" {
			url = p.Src.Original
		}
		if url == "" {
			continue
		}
		out = append(out, model.Image{
			URL:          url,
			Photographer: p.Photographer,
			Alt:          p.Alt,
		})
	}
	return out, nil
}
