package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/skyporter/luggage-tracking/internal/core/domain"
	"github.com/skyporter/luggage-tracking/internal/core/ports"
)

type stubProgressService struct {
	result  *ports.ProgressResult
	err     error
	gotTN   string
	gotMode bool
}

func (s *stubProgressService) Snapshot(_ context.Context, tn string, routed bool) (*ports.ProgressResult, error) {
	s.gotTN = tn
	s.gotMode = routed
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newProgressContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/contracts/:tracking_number/progress")
	c.SetParamNames("tracking_number")
	c.SetParamValues("LG-1234ABCD")
	return c, rec
}

func TestProgressHandlerGet(t *testing.T) {
	remaining := 4.2
	eta := 8.4
	svc := &stubProgressService{
		result: &ports.ProgressResult{
			TrackingNumber: "LG-1234ABCD",
			Status:         string(domain.StatusInTransit),
			Progress:       domain.ProgressSnapshot{RemainingKm: &remaining, EtaMin: &eta, Ratio: 0.5},
			ETA:            "8 min",
			EstimateSource: ports.EstimateSourceRouted,
		},
	}
	h := NewProgressHandler(svc)

	c, rec := newProgressContext(t, "/v1/contracts/LG-1234ABCD/progress")
	if err := h.Get(c); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if svc.gotTN != "LG-1234ABCD" {
		t.Errorf("tracking number passed = %q", svc.gotTN)
	}
	if !svc.gotMode {
		t.Error("routed estimation should be the default")
	}

	var body progressResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Progress.Ratio != 0.5 {
		t.Errorf("ratio = %v, want 0.5", body.Progress.Ratio)
	}
	if body.ETA != "8 min" {
		t.Errorf("eta = %q, want %q", body.ETA, "8 min")
	}
	if body.EstimateSource != ports.EstimateSourceRouted {
		t.Errorf("estimate_source = %q", body.EstimateSource)
	}
}

func TestProgressHandlerGetHaversineMode(t *testing.T) {
	svc := &stubProgressService{
		result: &ports.ProgressResult{TrackingNumber: "LG-1234ABCD", Status: string(domain.StatusPending)},
	}
	h := NewProgressHandler(svc)

	c, _ := newProgressContext(t, "/v1/contracts/LG-1234ABCD/progress?mode=haversine")
	if err := h.Get(c); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if svc.gotMode {
		t.Error("mode=haversine should disable routed estimation")
	}
}

func TestProgressHandlerGetNotFound(t *testing.T) {
	svc := &stubProgressService{err: domain.ErrContractNotFound}
	h := NewProgressHandler(svc)

	c, _ := newProgressContext(t, "/v1/contracts/LG-1234ABCD/progress")
	err := h.Get(c)
	if err == nil {
		t.Fatal("expected error for unknown contract")
	}
}
