package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/joaquinrs/poker-league/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	apiVersion  = "2.0"
	errorDomain = "poker-league"
)

// Responses follow the Google JSON envelope: exactly one of data or
// error is present.
type envelope struct {
	APIVersion string        `json:"apiVersion"`
	Data       any           `json:"data,omitempty"`
	Error      *errorPayload `json:"error,omitempty"`
}

type errorPayload struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Status  string        `json:"status"`
	Errors  []errorDetail `json:"errors,omitempty"`
}

type errorDetail struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	w.Header().Set("Content-Type", "application/json")
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, status, envelope{APIVersion: apiVersion, Data: data})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	status, grpcStatus, reason := classifyError(err)
	writeErrorPayload(ctx, w, status, grpcStatus, reason, err.Error())
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeErrorPayload(ctx, w, http.StatusInternalServerError, "INTERNAL", "internalError", "internal server error")
}

func writeErrorPayload(ctx context.Context, w http.ResponseWriter, httpStatus int, status, reason, message string) {
	writeJSON(ctx, w, httpStatus, envelope{
		APIVersion: apiVersion,
		Error: &errorPayload{
			Code:    httpStatus,
			Message: message,
			Status:  status,
			Errors: []errorDetail{{
				Domain:  errorDomain,
				Reason:  reason,
				Message: message,
			}},
		},
	})
}

// classifyError folds the service sentinels into an HTTP status, a
// gRPC-style status string and a client-facing reason. Anything the
// taxonomy does not recognize is an internal error.
func classifyError(err error) (httpStatus int, status, reason string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_ARGUMENT", "invalidInput"
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "notFound"
	case errors.Is(err, usecase.ErrDataIntegrity):
		return http.StatusUnprocessableEntity, "FAILED_PRECONDITION", "dataIntegrity"
	default:
		return http.StatusInternalServerError, "INTERNAL", "internalError"
	}
}
