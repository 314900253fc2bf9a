package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/senandung-senja/kasir/middlewares"
	"github.com/senandung-senja/kasir/utils"
	"github.com/sirupsen/logrus"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid request")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "email and password required")
		return
	}

	result, err := h.Backend.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondBackendError(w, err)
		return
	}

	role := result.User.Role
	if !role.IsValid() {
		logrus.WithField("role", role).Error("backend returned unknown role")
		respondError(w, http.StatusBadGateway, "invalid_role", "login response carried an unknown role")
		return
	}

	token, sessionID, err := utils.GenerateSessionToken(result.User.Name, role, result.Token)
	if err != nil {
		logrus.WithError(err).Error("failed to mint session token")
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to create session")
		return
	}

	logrus.WithFields(logrus.Fields{
		"session": sessionID,
		"role":    role,
	}).Info("operator logged in")

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user": map[string]interface{}{
			"name":  result.User.Name,
			"email": result.User.Email,
			"role":  role,
		},
	})
}

// Logout drops the session's cart and pending payments. The token itself is
// stateless; the client discards it.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	h.Carts.Clear(claims.SessionID)
	h.Payments.ClearSession(claims.SessionID)

	logrus.WithField("session", claims.SessionID).Info("operator logged out")
	respondJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}
