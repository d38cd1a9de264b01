package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tirupurthreads/storefront-backend/api/middleware"
	cartsvc "github.com/tirupurthreads/storefront-backend/internal/cart"
	pkgerrors "github.com/tirupurthreads/storefront-backend/pkg/errors"
)

type stubCartService struct {
	view *cartsvc.View
	err  error

	lastOp     string
	lastItemID uuid.UUID
}

func (s *stubCartService) Add(ctx context.Context, userID uuid.UUID, req cartsvc.AddItemRequest) (*cartsvc.View, error) {
	s.lastOp = "add"
	return s.view, s.err
}

func (s *stubCartService) Increase(ctx context.Context, userID, itemID uuid.UUID) (*cartsvc.View, error) {
	s.lastOp = "increase"
	s.lastItemID = itemID
	return s.view, s.err
}

func (s *stubCartService) Decrease(ctx context.Context, userID, itemID uuid.UUID) (*cartsvc.View, error) {
	s.lastOp = "decrease"
	s.lastItemID = itemID
	return s.view, s.err
}

func (s *stubCartService) Remove(ctx context.Context, userID, itemID uuid.UUID) (*cartsvc.View, error) {
	s.lastOp = "remove"
	s.lastItemID = itemID
	return s.view, s.err
}

func (s *stubCartService) Get(ctx context.Context, userID uuid.UUID) (*cartsvc.View, error) {
	s.lastOp = "get"
	return s.view, s.err
}

func authedRequest(method, target string, body string, userID uuid.UUID) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	return req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func sampleCartView() *cartsvc.View {
	return &cartsvc.View{
		Items: []cartsvc.ItemView{
			{ID: uuid.New(), ProductID: uuid.New(), Name: "Crew Tee", Size: "M", Quantity: 2, Price: 500, LineTotal: 1000},
		},
		Totals: cartsvc.Totals{Subtotal: 1000, Tax: 180, Total: 1180},
	}
}

func TestCartGetSuccess(t *testing.T) {
	svc := &stubCartService{view: sampleCartView()}
	handler := CartGet(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodGet, "/api/v1/cart", "", uuid.New()))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data cartsvc.View `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Totals.Total != 1180 {
		t.Fatalf("unexpected total: %d", envelope.Data.Totals.Total)
	}
}

func TestCartGetMissingUserContext(t *testing.T) {
	handler := CartGet(&stubCartService{}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestCartAddCreated(t *testing.T) {
	svc := &stubCartService{view: sampleCartView()}
	handler := CartAdd(svc, nil)

	body := `{"product_id":"` + uuid.NewString() + `","size":"M","quantity":2}`
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodPost, "/api/v1/cart/items", body, uuid.New()))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	if svc.lastOp != "add" {
		t.Fatalf("expected add call, got %q", svc.lastOp)
	}
}

func TestCartAddRejectsMalformedBody(t *testing.T) {
	handler := CartAdd(&stubCartService{view: sampleCartView()}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodPost, "/api/v1/cart/items", `{"size":"M"}`, uuid.New()))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartQuantityEndpointsDispatch(t *testing.T) {
	cases := []struct {
		name    string
		build   func(svc cartsvc.Service) http.HandlerFunc
		op      string
		method  string
	}{
		{name: "increase", build: func(svc cartsvc.Service) http.HandlerFunc { return CartIncrease(svc, nil) }, op: "increase", method: http.MethodPost},
		{name: "decrease", build: func(svc cartsvc.Service) http.HandlerFunc { return CartDecrease(svc, nil) }, op: "decrease", method: http.MethodPost},
		{name: "remove", build: func(svc cartsvc.Service) http.HandlerFunc { return CartRemove(svc, nil) }, op: "remove", method: http.MethodDelete},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubCartService{view: sampleCartView()}
			itemID := uuid.New()

			req := authedRequest(tc.method, "/api/v1/cart/items/"+itemID.String(), "", uuid.New())
			req = withURLParam(req, "itemID", itemID.String())

			resp := httptest.NewRecorder()
			tc.build(svc).ServeHTTP(resp, req)

			if resp.Code != http.StatusOK {
				t.Fatalf("expected 200 got %d", resp.Code)
			}
			if svc.lastOp != tc.op {
				t.Fatalf("expected %q call, got %q", tc.op, svc.lastOp)
			}
			if svc.lastItemID != itemID {
				t.Fatalf("unexpected item id: %s", svc.lastItemID)
			}
		})
	}
}

func TestCartQuantityRejectsBadItemID(t *testing.T) {
	handler := CartIncrease(&stubCartService{view: sampleCartView()}, nil)

	req := authedRequest(http.MethodPost, "/api/v1/cart/items/nope/increase", "", uuid.New())
	req = withURLParam(req, "itemID", "nope")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartRemoveNotFound(t *testing.T) {
	svc := &stubCartService{err: pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")}
	handler := CartRemove(svc, nil)

	itemID := uuid.New()
	req := authedRequest(http.MethodDelete, "/api/v1/cart/items/"+itemID.String(), "", uuid.New())
	req = withURLParam(req, "itemID", itemID.String())

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
