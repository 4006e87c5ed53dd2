// Package api implements the storefront HTTP collaborators: the client
// the orchestrator fetches the catalog from and submits orders to, and
// a stub backend for local development and tests.
package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/nickovin/weblarek-go/pkg/codec"
	"github.com/nickovin/weblarek-go/pkg/shop"
)

const (
	productPath = "/api/weblarek/product"
	orderPath   = "/api/weblarek/order"

	defaultTimeout = 10 * time.Second
)

// Client talks to the storefront backend. It does no retries and no
// request deduplication; concurrent submissions proceed independently.
type Client struct {
	// HTTPClient may be replaced before first use, e.g. with a custom
	// Dial for in-memory tests.
	HTTPClient *fasthttp.Client

	apiOrigin string
	cdnOrigin string
	timeout   time.Duration
}

// NewClient creates a client for the given API origin. Catalog image
// paths are rewritten against cdnOrigin.
func NewClient(apiOrigin, cdnOrigin string) *Client {
	return &Client{
		HTTPClient: &fasthttp.Client{},
		apiOrigin:  strings.TrimRight(apiOrigin, "/"),
		cdnOrigin:  strings.TrimRight(cdnOrigin, "/"),
		timeout:    defaultTimeout,
	}
}

type catalogResponse struct {
	Total int            `json:"total"`
	Items []shop.Product `json:"items"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *Client) do(method, path string, body []byte) ([]byte, int, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.apiOrigin + path)
	req.Header.SetMethod(method)
	if body != nil {
		req.Header.SetContentType("application/json")
		req.SetBody(body)
	}

	if err := c.HTTPClient.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, 0, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	return append([]byte(nil), resp.Body()...), resp.StatusCode(), nil
}

func apiError(body []byte, status int) error {
	var er errorResponse
	if err := codec.Unmarshal(body, &er); err == nil && er.Error != "" {
		return fmt.Errorf("api: server rejected request (%d): %s", status, er.Error)
	}
	return fmt.Errorf("api: unexpected status %d", status)
}

// FetchCatalog loads the full product list. Image references come back
// absolute against the CDN origin.
func (c *Client) FetchCatalog() ([]shop.Product, error) {
	body, status, err := c.do(fasthttp.MethodGet, productPath, nil)
	if err != nil {
		return nil, err
	}
	if status != fasthttp.StatusOK {
		return nil, apiError(body, status)
	}

	var cr catalogResponse
	if err := codec.Unmarshal(body, &cr); err != nil {
		return nil, fmt.Errorf("api: catalog payload: %w", err)
	}
	items := cr.Items
	for i := range items {
		items[i].Image = c.cdnOrigin + items[i].Image
	}
	return items, nil
}

// SubmitOrder posts the order projection and returns the confirmation.
func (c *Client) SubmitOrder(order shop.Order) (shop.OrderResult, error) {
	payload, err := codec.Marshal(order)
	if err != nil {
		return shop.OrderResult{}, err
	}

	body, status, err := c.do(fasthttp.MethodPost, orderPath, payload)
	if err != nil {
		return shop.OrderResult{}, err
	}
	if status != fasthttp.StatusOK {
		return shop.OrderResult{}, apiError(body, status)
	}

	var res shop.OrderResult
	if err := codec.Unmarshal(body, &res); err != nil {
		return shop.OrderResult{}, fmt.Errorf("api: order payload: %w", err)
	}
	return res, nil
}
