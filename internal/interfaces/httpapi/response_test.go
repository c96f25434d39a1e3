package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/joaquinrs/poker-league/internal/usecase"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	return env
}

func TestWriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}

	env := decodeEnvelope(t, rec)
	if env.APIVersion != "2.0" {
		t.Fatalf("apiVersion = %q, want 2.0", env.APIVersion)
	}
	if env.Data == nil {
		t.Fatal("expected data in success envelope")
	}
	if env.Error != nil {
		t.Fatalf("unexpected error in success envelope: %+v", env.Error)
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	if env.Error == nil {
		t.Fatal("expected error in envelope")
	}
	if env.Error.Status != "INVALID_ARGUMENT" {
		t.Fatalf("error status = %q, want INVALID_ARGUMENT", env.Error.Status)
	}
	if len(env.Error.Errors) != 1 || env.Error.Errors[0].Domain != errorDomain {
		t.Fatalf("unexpected error details: %+v", env.Error.Errors)
	}
	if env.Error.Errors[0].Reason != "invalidInput" {
		t.Fatalf("error reason = %q, want invalidInput", env.Error.Errors[0].Reason)
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{"invalid input", fmt.Errorf("%w: bad id", usecase.ErrInvalidInput), http.StatusBadRequest, "invalidInput"},
		{"not found", fmt.Errorf("%w: tournament missing", usecase.ErrNotFound), http.StatusNotFound, "notFound"},
		{"data integrity", fmt.Errorf("%w: duplicate record", usecase.ErrDataIntegrity), http.StatusUnprocessableEntity, "dataIntegrity"},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, "internalError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _, reason := classifyError(tt.err)
			if status != tt.wantStatus {
				t.Fatalf("status = %d, want %d", status, tt.wantStatus)
			}
			if reason != tt.wantReason {
				t.Fatalf("reason = %q, want %q", reason, tt.wantReason)
			}
		})
	}
}
