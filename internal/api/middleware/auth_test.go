package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tradeconnect/marketplace-api/internal/core/domain"
	"github.com/tradeconnect/marketplace-api/internal/core/service"
)

type stubPrincipalStore struct {
	typ   domain.PrincipalType
	creds map[string]*domain.Credentials
}

func newStubPrincipalStore(typ domain.PrincipalType) *stubPrincipalStore {
	return &stubPrincipalStore{typ: typ, creds: make(map[string]*domain.Credentials)}
}

func (s *stubPrincipalStore) Type() domain.PrincipalType { return s.typ }

func (s *stubPrincipalStore) FindCredentialsByID(_ context.Context, id string) (*domain.Credentials, error) {
	creds, ok := s.creds[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return creds, nil
}

func issueToken(t *testing.T, tokens *service.TokenService, id, email string) string {
	t.Helper()
	token, err := tokens.Issue(id, email)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func TestGuard_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)
	store := newStubPrincipalStore(domain.PrincipalCompany)
	store.creds["c1"] = &domain.Credentials{ID: "c1", Email: "acme@example.com"}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, "c1", "acme@example.com"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Guard(GuardConfig{Tokens: tokens, Store: store})(func(c echo.Context) error {
		called = true
		if c.Get(CtxPrincipalID) != "c1" {
			t.Fatalf("principal id not set")
		}
		if c.Get(CtxPrincipalEmail) != "acme@example.com" {
			t.Fatalf("principal email not set")
		}
		if c.Get(CtxPrincipalType) != "company" {
			t.Fatalf("principal type not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestGuard_MissingToken(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)
	store := newStubPrincipalStore(domain.PrincipalCompany)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Guard(GuardConfig{Tokens: tokens, Store: store})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

// The company variant rejects a bad token with 401, the customer variant with 403.
func TestGuard_InvalidTokenStatus(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)

	cases := []struct {
		name string
		cfg  GuardConfig
		want int
	}{
		{
			name: "company default 401",
			cfg:  GuardConfig{Tokens: tokens, Store: newStubPrincipalStore(domain.PrincipalCompany)},
			want: http.StatusUnauthorized,
		},
		{
			name: "customer configured 403",
			cfg: GuardConfig{
				Tokens:             tokens,
				Store:              newStubPrincipalStore(domain.PrincipalCustomer),
				InvalidTokenStatus: http.StatusForbidden,
			},
			want: http.StatusForbidden,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer not-a-token")
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := Guard(tc.cfg)(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			err := handler(c)
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != tc.want {
				t.Fatalf("expected %d, got %v", tc.want, err)
			}
		})
	}
}

func TestGuard_DeletedPrincipal(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)
	store := newStubPrincipalStore(domain.PrincipalCompany)

	// valid token but no matching account in the store
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, "ghost", "ghost@example.com"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Guard(GuardConfig{Tokens: tokens, Store: store})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

// A customer token never resolves through the company guard: the lookup runs
// against the company store only.
func TestGuard_CrossTypeRejection(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)
	companyStore := newStubPrincipalStore(domain.PrincipalCompany)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, "customer-1", "bob@example.com"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Guard(GuardConfig{Tokens: tokens, Store: companyStore})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestGuard_QueryToken(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)
	token := issueToken(t, tokens, "u1", "bob@example.com")

	store := newStubPrincipalStore(domain.PrincipalCustomer)
	store.creds["u1"] = &domain.Credentials{ID: "u1", Email: "bob@example.com"}

	t.Run("accepted when enabled", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?token="+url.QueryEscape(token), nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		called := false
		handler := Guard(GuardConfig{Tokens: tokens, Store: store, AllowQueryToken: true})(func(c echo.Context) error {
			called = true
			return c.NoContent(http.StatusOK)
		})
		if err := handler(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if !called {
			t.Fatalf("next not called")
		}
	})

	t.Run("form field accepted when enabled", func(t *testing.T) {
		form := url.Values{"token": {token}}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		called := false
		handler := Guard(GuardConfig{Tokens: tokens, Store: store, AllowQueryToken: true})(func(c echo.Context) error {
			called = true
			return c.NoContent(http.StatusOK)
		})
		if err := handler(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if !called {
			t.Fatalf("next not called")
		}
	})

	t.Run("rejected when disabled", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?token="+url.QueryEscape(token), nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := Guard(GuardConfig{Tokens: tokens, Store: store})(func(c echo.Context) error {
			t.Fatalf("should not reach next")
			return nil
		})

		err := handler(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %v", err)
		}
	})
}
