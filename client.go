package fyyur

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/rubpy/crawly/cclient"
	"github.com/rubpy/crawly/csync"
)

//////////////////////////////////////////////////

type Client struct {
	client  cclient.Client
	baseURL string

	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *metrics

	settings csync.Value[Settings]
}

func NewClient(opts ...ConfigOption) (*Client, error) {
	var cfg config

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	c, err := buildClientFromConfig(&cfg)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}
