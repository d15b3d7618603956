package fyyur

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rubpy/crawly/cclient"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//////////////////////////////////////////////////

const tracerName = "github.com/rubpy/fyyur-client"

type config struct {
	logger     *slog.Logger
	client     cclient.Client
	baseURL    string
	tracer     trace.Tracer
	registerer prometheus.Registerer

	transport struct {
		logger *slog.Logger
		ok     bool
	}

	settings struct {
		v  Settings
		ok bool
	}
}

var (
	NilConfig      = errors.New("config is nil")
	NilClient      = errors.New("client is nil")
	InvalidBaseURL = errors.New("invalid base URL")
)

func validateConfig(cfg *config) error {
	if cfg == nil {
		return NilConfig
	}

	if cfg.baseURL != "" && !isValidURL(cfg.baseURL) {
		return InvalidBaseURL
	}

	return nil
}

func buildClientFromConfig(cfg *config) (c *Client, err error) {
	if cfg == nil {
		err = NilConfig
		return
	}

	cl := cfg.client
	if cl == nil {
		// The transport never inherits cfg.logger.
		if cfg.transport.ok && cfg.transport.logger != nil {
			cl, err = cclient.NewClient(cclient.WithLogger(cfg.transport.logger.WithGroup("client")))
		} else {
			cl, err = cclient.NewClient()
		}
		if err != nil {
			return nil, fmt.Errorf("cclient.NewClient: %w", err)
		}
	}

	tracer := cfg.tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	c = &Client{
		client:  cl,
		baseURL: strings.TrimRight(cfg.baseURL, "/"),
		logger:  cfg.logger,
		tracer:  tracer,
	}

	if cfg.registerer != nil {
		c.metrics, err = newMetrics(cfg.registerer)
		if err != nil {
			return nil, fmt.Errorf("newMetrics: %w", err)
		}
	}

	if cfg.settings.ok {
		c.SetSettings(cfg.settings.v)
	} else {
		c.SetSettings(DefaultSettings)
	}

	return c, nil
}

type ConfigOption func(cfg *config)

//////////////////////////////////////////////////

func WithLogger(logger *slog.Logger) ConfigOption {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithTransportLogger hands logger to the default cclient transport, which
// then records each request itself. Ignored when WithClient is used.
func WithTransportLogger(logger *slog.Logger) ConfigOption {
	return func(cfg *config) {
		cfg.transport.logger = logger
		cfg.transport.ok = true
	}
}

func WithClient(client cclient.Client) ConfigOption {
	return func(cfg *config) {
		cfg.client = client
	}
}

// WithBaseURL sets the scheme and host requests are sent to (e.g.
// "http://localhost:5000"). Without it, request URLs are host-relative paths,
// which only a custom cclient.Client can resolve.
func WithBaseURL(baseURL string) ConfigOption {
	return func(cfg *config) {
		cfg.baseURL = baseURL
	}
}

func WithSettings(settings Settings) ConfigOption {
	return func(cfg *config) {
		cfg.settings.v = settings
		cfg.settings.ok = true
	}
}

func WithTracer(tracer trace.Tracer) ConfigOption {
	return func(cfg *config) {
		cfg.tracer = tracer
	}
}

// WithRegisterer enables Prometheus metrics, registered on registerer.
func WithRegisterer(registerer prometheus.Registerer) ConfigOption {
	return func(cfg *config) {
		cfg.registerer = registerer
	}
}
