// Package client holds the HTTP clients for the two external
// collaborators: the catalog document host and the completion service.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/s1lver0/cinemax-chat-go/internal/domain"
	"github.com/s1lver0/cinemax-chat-go/internal/infra/resilience"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("infra/client")

// CatalogClient fetches the catalog JSON document from a remote URL.
// The circuit breaker protects against the host being down; retry with
// backoff covers transient failures. Caching and refresh policy live in
// CachedCatalogProvider, not here.
type CatalogClient struct {
	httpClient *http.Client
	url        string
	cb         *gobreaker.CircuitBreaker
	cfg        resilience.Config
}

// NewCatalogClient creates the client. url is the full document URL.
func NewCatalogClient(httpClient *http.Client, url string, cb *gobreaker.CircuitBreaker, cfg resilience.Config) *CatalogClient {
	return &CatalogClient{
		httpClient: httpClient,
		url:        url,
		cb:         cb,
		cfg:        cfg,
	}
}

// Fetch downloads and decodes the catalog document.
func (c *CatalogClient) Fetch(ctx context.Context) (*domain.Catalog, error) {
	ctx, span := tracer.Start(ctx, "CatalogClient.Fetch")
	defer span.End()
	span.SetAttributes(attribute.String("catalog.url", c.url))

	var cat domain.Catalog

	_, err := c.cb.Execute(func() (any, error) {
		innerErr := resilience.RetryWithBackoff(ctx, c.cfg, func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
			if err != nil {
				return fmt.Errorf("create catalog request: %w", err)
			}

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return fmt.Errorf("http call to catalog host: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("catalog host returned status %d", resp.StatusCode)
			}

			cat = domain.Catalog{}
			if err := json.NewDecoder(resp.Body).Decode(&cat); err != nil {
				return fmt.Errorf("decode catalog document: %w", err)
			}
			return nil
		})
		if innerErr != nil {
			return nil, innerErr
		}
		return &cat, nil
	})
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "catalog", Err: err}
	}

	return &cat, nil
}
