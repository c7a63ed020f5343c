package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/cricket-league/internal/platform/logging"
	"github.com/riskibarqy/cricket-league/internal/usecase"
)

const internalErrorMessage = "internal server error"

type errorResponse struct {
	Status     string `json:"status"`
	StatusCode int    `json:"status_code"`
	Reason     string `json:"reason"`
	Message    string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

// writeJSON encodes payload into a pooled buffer first so an encoding
// failure can still be reported as a 500.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		logging.Default().ErrorContext(ctx, "encode response failed", "error", err)
		buf.Reset()
		_ = sonic.ConfigDefault.NewEncoder(buf).Encode(internalErrorResponse())
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(err)
	if mapped.HTTPStatus >= http.StatusInternalServerError {
		writeJSON(ctx, w, mapped.HTTPStatus, errorResponse{
			Status:     mapped.Status,
			StatusCode: mapped.HTTPStatus,
			Reason:     mapped.Reason,
			Message:    internalErrorMessage,
		})
		return
	}

	writeJSON(ctx, w, mapped.HTTPStatus, errorResponse{
		Status:     mapped.Status,
		StatusCode: mapped.HTTPStatus,
		Reason:     mapped.Reason,
		Message:    err.Error(),
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError, internalErrorResponse())
}

func internalErrorResponse() errorResponse {
	return errorResponse{
		Status:     "INTERNAL",
		StatusCode: http.StatusInternalServerError,
		Reason:     "internalError",
		Message:    internalErrorMessage,
	}
}

func mapError(err error) mappedError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "invalidInput",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, usecase.ErrConflict):
		// Duplicate accounts have always been reported as 400 to clients.
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "alreadyExists",
			Status:     "ALREADY_EXISTS",
		}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Reason:     "notFound",
			Status:     "NOT_FOUND",
		}
	case errors.Is(err, usecase.ErrUnauthorized):
		return mappedError{
			HTTPStatus: http.StatusUnauthorized,
			Reason:     "unauthorized",
			Status:     "UNAUTHENTICATED",
		}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{
			HTTPStatus: http.StatusServiceUnavailable,
			Reason:     "dependencyUnavailable",
			Status:     "UNAVAILABLE",
		}
	default:
		return mappedError{
			HTTPStatus: http.StatusInternalServerError,
			Reason:     "internalError",
			Status:     "INTERNAL",
		}
	}
}
