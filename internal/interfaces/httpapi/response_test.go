package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/VillePajala/matchops-sync/internal/domain/game"
	"github.com/VillePajala/matchops-sync/internal/domain/roster"
	"github.com/VillePajala/matchops-sync/internal/domain/season"
	"github.com/VillePajala/matchops-sync/internal/usecase"
	"github.com/VillePajala/matchops-sync/internal/validate"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestMapError_ValidationAs400(t *testing.T) {
	err := validate.Errorf("event.scorerId", nil, "goal events require a scorer")
	mapped := mapError(err)

	if mapped.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400 for validation error, got %d", mapped.HTTPStatus)
	}
	if mapped.Reason != "invalidData" {
		t.Fatalf("unexpected reason: %s", mapped.Reason)
	}
}

func TestMapError_NotFoundAs404(t *testing.T) {
	for _, err := range []error{
		fmt.Errorf("%w: game x", usecase.ErrNotFound),
		fmt.Errorf("archive game x: %w", game.ErrNotFound),
	} {
		mapped := mapError(err)
		if mapped.HTTPStatus != http.StatusNotFound {
			t.Fatalf("expected 404 for %v, got %d", err, mapped.HTTPStatus)
		}
	}
}

func TestMapError_IDConflictAs409(t *testing.T) {
	for _, err := range []error{
		fmt.Errorf("save game x: %w", game.ErrIDConflict),
		fmt.Errorf("upsert player p: %w", roster.ErrIDConflict),
		fmt.Errorf("upsert season s: %w", season.ErrIDConflict),
	} {
		mapped := mapError(err)
		if mapped.HTTPStatus != http.StatusConflict {
			t.Fatalf("expected 409 for %v, got %d", err, mapped.HTTPStatus)
		}
		if mapped.Status != "ALREADY_EXISTS" {
			t.Fatalf("unexpected status %s for %v", mapped.Status, err)
		}
	}
}
