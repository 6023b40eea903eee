package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"commerce_2checkout/internal/adapter/http/handlers"
	"commerce_2checkout/internal/adapter/persistence/repository"
	"commerce_2checkout/internal/domain/entities"
	"commerce_2checkout/internal/infrastructure/payments"
	"commerce_2checkout/internal/infrastructure/security"
	"commerce_2checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newTestRouter(t *testing.T) (*gin.Engine, *repository.CorrelationMemoryRepository, entities.GatewayConfiguration) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg, err := entities.NewGatewayConfiguration(entities.GatewaySettings{
		MerchantCode: "1303908",
		SecretWord:   "tango",
		Language:     "en",
		DemoMode:     false,
		Logging:      "notification",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo := repository.NewCorrelationMemoryRepository()
	uc := usecase.NewCheckoutUseCase(
		cfg,
		usecase.NewRequestBuilder(entities.EnvironmentSandbox, entities.RoundHalfUp),
		usecase.NewCorrelationTracker(security.NewRandomTokenGenerator()),
		repo,
		payments.NewTwoCheckoutReturnKeyVerifier(),
	)
	return NewRouter(handlers.NewCheckoutHandler(uc)), repo, cfg
}

func TestPing(t *testing.T) {
	r, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "pong") {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}
	if _, err := uuid.Parse(w.Header().Get(HeaderRequestID)); err != nil {
		t.Fatalf("expected generated request id, got %q", w.Header().Get(HeaderRequestID))
	}
}

func TestRequestID(t *testing.T) {
	r, _, _ := newTestRouter(t)

	t.Run("valid id is kept", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
		req.Header.Set(HeaderRequestID, id)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(HeaderRequestID); got != id {
			t.Fatalf("expected %s, got %s", id, got)
		}
	})

	t.Run("invalid id is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
		req.Header.Set(HeaderRequestID, "not a uuid")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		got := w.Header().Get(HeaderRequestID)
		if got == "not a uuid" {
			t.Fatalf("expected a new request id")
		}
		if _, err := uuid.Parse(got); err != nil {
			t.Fatalf("expected uuid, got %q", got)
		}
	})
}

func TestCheckoutFlow(t *testing.T) {
	r, repo, cfg := newTestRouter(t)

	body := `{
		"order": {
			"order_id": 1001,
			"currency_code": "USD",
			"billing_address": {"given_name": "Ann", "family_name": "Lee", "country_code": "US"},
			"line_items": [{"title": "Widget", "quantity": 1, "unit_price": "9.995"}]
		},
		"return_url": "https://shop.example/return"
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/checkout/redirect", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var redirect struct {
		TargetURL  string            `json:"target_url"`
		Parameters map[string]string `json:"parameters"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &redirect); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if redirect.TargetURL != entities.SandboxPurchaseURL || redirect.Parameters["li_0_price"] != "10.00" {
		t.Fatalf("unexpected redirect: %+v", redirect)
	}
	if _, ok := redirect.Parameters["demo"]; ok {
		t.Fatalf("demo must be absent: %+v", redirect.Parameters)
	}

	record, _ := repo.GetByOrderID(req.Context(), 1001)
	if !record.Exists() {
		t.Fatalf("expected stored correlation record")
	}

	form := url.Values{}
	form.Set("token", record.Token)
	form.Set("order_number", "4550")
	form.Set("total", "10.00")
	form.Set("key", payments.ReturnKey(cfg, "4550", "10.00"))
	form.Set("merchant_order_id", "1001")

	verify := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/1001/return", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	if w := verify(); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w := verify(); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on replay, got %d: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/checkout/1001/correlation", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"payer_reference":"4550"`) {
		t.Fatalf("unexpected correlation %d: %s", w.Code, w.Body.String())
	}
}
