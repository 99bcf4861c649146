// Package catalog implements the client for the remote product catalog
// service. The catalog is the price and existence oracle consulted when
// orders are created through the intake façade.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"pedidos/internal/core/ports"
	"pedidos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const defaultTimeout = 5 * time.Second

// Client resolves products against the remote catalog over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog client for the given base URL.
// A non-positive timeout falls back to the default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// productResponse mirrors the catalog service payload. The price arrives as a
// JSON number; it is kept textual so no float conversion touches the value.
type productResponse struct {
	Success bool `json:"success"`
	Data    struct {
		ID     string      `json:"id"`
		Nombre string      `json:"nombre"`
		Precio json.Number `json:"precio"`
	} `json:"data"`
}

// GetProduct resolves a product id against the catalog.
// Unknown products are reported as ObjectNotFoundError; transport failures,
// non-2xx answers and unusable payloads as DependencyFailureError.
func (c *Client) GetProduct(ctx context.Context, id string) (ports.CatalogProduct, error) {
	if id == "" {
		return ports.CatalogProduct{}, errs.NewValueIsRequiredError("id")
	}

	url := fmt.Sprintf("%s/productos/%s", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.CatalogProduct{}, errs.NewDependencyFailureError("catalog", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.CatalogProduct{}, errs.NewDependencyFailureError("catalog", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ports.CatalogProduct{}, errs.NewObjectNotFoundError("product", id)
	}
	if resp.StatusCode != http.StatusOK {
		return ports.CatalogProduct{}, errs.NewDependencyFailureError(
			"catalog", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var payload productResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ports.CatalogProduct{}, errs.NewDependencyFailureError("catalog", err)
	}
	if !payload.Success {
		return ports.CatalogProduct{}, errs.NewObjectNotFoundError("product", id)
	}

	price, err := decimal.NewFromString(payload.Data.Precio.String())
	if err != nil {
		return ports.CatalogProduct{}, errs.NewDependencyFailureError(
			"catalog", fmt.Errorf("unusable price %q: %w", payload.Data.Precio, err))
	}

	name := payload.Data.Nombre
	if name == "" {
		name = id
	}

	return ports.CatalogProduct{
		ID:    id,
		Name:  name,
		Price: price,
	}, nil
}
