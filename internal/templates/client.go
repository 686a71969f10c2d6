// Package templates implements the remote template catalog client. Failures
// (network, timeout, non-2xx, malformed payload) surface as typed
// *domain.ExternalServiceError values — never a partially populated spec.
package templates

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/macizomedia/editorBot/internal/logging"
	"github.com/macizomedia/editorBot/pkg/domain"
)

const serviceName = "template_catalog"

// DefaultBaseURL is overridable through the TEMPLATE_API_URL environment
// variable, matching the deployment convention.
func DefaultBaseURL() string {
	if url := os.Getenv("TEMPLATE_API_URL"); url != "" {
		return url
	}
	return "https://templates.editorbot.dev"
}

// Client implements ports.TemplateCatalog over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout (default 10s).
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a catalog client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type listResponse struct {
	Templates []domain.TemplateSummary `json:"templates"`
}

type getResponse struct {
	Success  bool                 `json:"success"`
	Template *domain.TemplateSpec `json:"template"`
}

// ListTemplates fetches template summaries.
func (c *Client) ListTemplates(ctx context.Context) ([]domain.TemplateSummary, error) {
	var body listResponse
	if err := c.getJSON(ctx, "/templates", &body); err != nil {
		return nil, &domain.ExternalServiceError{Service: serviceName, Op: "list_templates", Err: err}
	}

	c.logger.Info("fetched template summaries", "count", len(body.Templates))
	return body.Templates, nil
}

// GetTemplate fetches a full template specification.
func (c *Client) GetTemplate(ctx context.Context, id string) (*domain.TemplateSpec, error) {
	fail := func(err error) (*domain.TemplateSpec, error) {
		return nil, &domain.ExternalServiceError{Service: serviceName, Op: "get_template", Err: err}
	}

	var body getResponse
	if err := c.getJSON(ctx, "/templates/"+id, &body); err != nil {
		return fail(err)
	}

	if !body.Success || body.Template == nil {
		return fail(fmt.Errorf("catalog returned no template for %q", id))
	}
	if body.Template.ID == "" {
		return fail(fmt.Errorf("malformed template payload for %q: missing id", id))
	}

	c.logger.Info("fetched template", "template_id", body.Template.ID)
	return body.Template, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("malformed payload from %s: %w", path, err)
	}
	return nil
}
