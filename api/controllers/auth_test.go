package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tirupurthreads/storefront-backend/api/middleware"
	authsvc "github.com/tirupurthreads/storefront-backend/internal/auth"
	"github.com/tirupurthreads/storefront-backend/internal/users"
	pkgerrors "github.com/tirupurthreads/storefront-backend/pkg/errors"
)

type stubAuthService struct {
	resp *authsvc.AuthResponse
	err  error

	loggedOut []string
}

func (s *stubAuthService) Register(ctx context.Context, req authsvc.RegisterRequest) (*authsvc.AuthResponse, error) {
	return s.resp, s.err
}

func (s *stubAuthService) Login(ctx context.Context, req authsvc.LoginRequest) (*authsvc.AuthResponse, error) {
	return s.resp, s.err
}

func (s *stubAuthService) Refresh(ctx context.Context, req authsvc.RefreshRequest) (*authsvc.AuthResponse, error) {
	return s.resp, s.err
}

func (s *stubAuthService) Logout(ctx context.Context, accessID string) error {
	s.loggedOut = append(s.loggedOut, accessID)
	return s.err
}

func sampleAuthResponse() *authsvc.AuthResponse {
	return &authsvc.AuthResponse{
		AccessToken:  "access",
		RefreshToken: "refresh",
		User:         users.Profile{Email: "arun@example.com"},
	}
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRegisterCreated(t *testing.T) {
	handler := Register(&stubAuthService{resp: sampleAuthResponse()}, nil)

	body := `{"email":"arun@example.com","password":"correct-horse","first_name":"Arun","last_name":"Kumar"}`
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, jsonRequest(http.MethodPost, "/api/v1/auth/register", body))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}

	var envelope struct {
		Data authsvc.AuthResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.AccessToken != "access" {
		t.Fatalf("unexpected access token: %q", envelope.Data.AccessToken)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	handler := Register(&stubAuthService{resp: sampleAuthResponse()}, nil)

	body := `{"email":"arun@example.com","password":"short","first_name":"Arun","last_name":"Kumar"}`
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, jsonRequest(http.MethodPost, "/api/v1/auth/register", body))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestRegisterConflict(t *testing.T) {
	handler := Register(&stubAuthService{err: pkgerrors.New(pkgerrors.CodeConflict, "email already registered")}, nil)

	body := `{"email":"arun@example.com","password":"correct-horse","first_name":"Arun","last_name":"Kumar"}`
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, jsonRequest(http.MethodPost, "/api/v1/auth/register", body))

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.Code)
	}
}

func TestLoginSuccessResponse(t *testing.T) {
	handler := Login(&stubAuthService{resp: sampleAuthResponse()}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, jsonRequest(http.MethodPost, "/api/v1/auth/login", `{"email":"arun@example.com","password":"correct-horse"}`))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestLoginUnauthorized(t *testing.T) {
	handler := Login(&stubAuthService{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, jsonRequest(http.MethodPost, "/api/v1/auth/login", `{"email":"arun@example.com","password":"wrong"}`))

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestRefreshRequiresBothTokens(t *testing.T) {
	handler := Refresh(&stubAuthService{resp: sampleAuthResponse()}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, jsonRequest(http.MethodPost, "/api/v1/auth/refresh", `{"access_token":"only-one"}`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestLogoutUsesSessionFromContext(t *testing.T) {
	svc := &stubAuthService{}
	handler := Logout(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req = req.WithContext(middleware.WithAccessID(req.Context(), "session-jti"))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if len(svc.loggedOut) != 1 || svc.loggedOut[0] != "session-jti" {
		t.Fatalf("unexpected logout calls: %v", svc.loggedOut)
	}
}
