package api

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/nickovin/weblarek-go/pkg/codec"
	"github.com/nickovin/weblarek-go/pkg/logging"
	"github.com/nickovin/weblarek-go/pkg/shop"
)

// StubServer is a self-contained storefront backend: it serves a fixed
// catalog and accepts orders, answering with a generated order id. It
// backs local development and the client tests; it persists nothing.
type StubServer struct {
	items  []shop.Product
	logger logging.Logger
}

// NewStubServer creates a stub backend over the given catalog.
func NewStubServer(items []shop.Product, logger logging.Logger) *StubServer {
	return &StubServer{items: items, logger: logger}
}

// Handler routes the two storefront endpoints.
func (s *StubServer) Handler(ctx *fasthttp.RequestCtx) {
	switch {
	case string(ctx.Path()) == productPath && ctx.IsGet():
		s.handleCatalog(ctx)
	case string(ctx.Path()) == orderPath && ctx.IsPost():
		s.handleOrder(ctx)
	default:
		s.reject(ctx, fasthttp.StatusNotFound, "unknown endpoint")
	}
}

func (s *StubServer) writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := codec.Marshal(v)
	if err != nil {
		s.logger.Errorf("stub: encode response: %v", err)
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func (s *StubServer) reject(ctx *fasthttp.RequestCtx, status int, reason string) {
	s.writeJSON(ctx, status, errorResponse{Error: reason})
}

func (s *StubServer) handleCatalog(ctx *fasthttp.RequestCtx) {
	s.writeJSON(ctx, fasthttp.StatusOK, catalogResponse{Total: len(s.items), Items: s.items})
}

func (s *StubServer) product(id string) (shop.Product, bool) {
	for _, p := range s.items {
		if p.ID == id {
			return p, true
		}
	}
	return shop.Product{}, false
}

func (s *StubServer) handleOrder(ctx *fasthttp.RequestCtx) {
	var order shop.Order
	if err := codec.Unmarshal(ctx.PostBody(), &order); err != nil {
		s.reject(ctx, fasthttp.StatusBadRequest, "malformed order")
		return
	}
	if len(order.Items) == 0 {
		s.reject(ctx, fasthttp.StatusBadRequest, "order has no items")
		return
	}

	sum := 0
	for _, id := range order.Items {
		p, ok := s.product(id)
		if !ok {
			s.reject(ctx, fasthttp.StatusBadRequest, fmt.Sprintf("unknown product %s", id))
			return
		}
		if p.Priceless() {
			s.reject(ctx, fasthttp.StatusBadRequest, fmt.Sprintf("product %s cannot be purchased", id))
			return
		}
		sum += *p.Price
	}
	if sum != order.Total {
		s.reject(ctx, fasthttp.StatusBadRequest, "total does not match items")
		return
	}

	res := shop.OrderResult{ID: uuid.NewString(), Total: order.Total}
	s.logger.Infof("stub: accepted order %s, total %d", res.ID, res.Total)
	s.writeJSON(ctx, fasthttp.StatusOK, res)
}

// Listen serves the stub on addr and blocks.
func (s *StubServer) Listen(addr string) error {
	s.logger.Infof("stub: listening on %s", addr)
	return fasthttp.ListenAndServe(addr, s.Handler)
}
