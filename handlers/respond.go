package handlers

import (
	// Go Internal Packages
	"encoding/json"
	"net/http"

	// Local Packages
	errors "fraud-dash/errors"

	// External Packages
	"go.uber.org/zap"
)

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
	}
	writeJSON(w, logger, status, errorBody{Error: err.Error(), Kind: errors.KindOf(err).String()})
}
