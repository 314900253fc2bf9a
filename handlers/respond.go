package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/senandung-senja/kasir/backend"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logrus.WithError(err).Error("failed to encode response")
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// respondBackendError maps a backend client error onto the gateway's own
// response. Transport failures become a generic 502; backend rejections keep
// their status and, when present, the backend's own message.
func respondBackendError(w http.ResponseWriter, err error) {
	if errors.Is(err, backend.ErrUnavailable) {
		logrus.WithError(err).Warn("backend unreachable")
		respondError(w, http.StatusBadGateway, "backend_unavailable", "action failed, please try again")
		return
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized:
			respondError(w, http.StatusUnauthorized, "unauthorized", "session expired, please log in again")
		case http.StatusForbidden:
			respondError(w, http.StatusForbidden, "forbidden", "access to this resource is restricted")
		default:
			msg := apiErr.Message
			if msg == "" {
				msg = "request rejected"
			}
			status := apiErr.StatusCode
			if status >= http.StatusInternalServerError {
				status = http.StatusBadGateway
				msg = "action failed, please try again"
			}
			respondError(w, status, "backend_error", msg)
		}
		return
	}

	logrus.WithError(err).Error("unexpected backend error")
	respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}
