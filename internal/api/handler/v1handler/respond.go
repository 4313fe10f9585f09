package v1handler

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"orgdash/pkg/logger"
	"orgdash/pkg/serrors"
)

// errorBody is the wire shape of every error response.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(ctx, "could not encode response", zap.Error(err))
	}
}

// writeError maps an error onto the wire format. Errors without a semantic
// kind are reported as opaque internal failures and logged; everything else
// carries its kind name as the code so clients can match uniformly.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	k := serrors.KindOf(err)
	if k == nil {
		logger.Error(ctx, "unhandled error", zap.Error(err))
		writeJSON(ctx, w, http.StatusInternalServerError, errorBody{
			Error: errorDetail{Code: serrors.ErrInternal.Error(), Message: "internal error"},
		})

		return
	}

	writeJSON(ctx, w, statusFromKind(k), errorBody{
		Error: errorDetail{Code: k.Error(), Message: err.Error()},
	})
}

// statusFromKind is the inverse of the remote client's status mapping.
func statusFromKind(k serrors.Kind) int {
	switch k {
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrUnauthorized:
		return http.StatusUnauthorized
	case serrors.ErrForbidden:
		return http.StatusForbidden
	case serrors.ErrValidation:
		return http.StatusUnprocessableEntity
	case serrors.ErrConflict:
		return http.StatusConflict
	case serrors.ErrTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
