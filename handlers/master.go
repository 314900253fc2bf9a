package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/senandung-senja/kasir/backend"
	"github.com/senandung-senja/kasir/middlewares"
	"github.com/senandung-senja/kasir/models"
)

// Master-data screens: menu catalog and staff accounts, admin only (gated in
// the route table). The gateway validates the form, the backend persists.

func (h *Handler) AdminListMenus(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	menus, err := h.Backend.AdminMenus(r.Context(), claims.BackendToken)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	if menus == nil {
		menus = []models.MenuItem{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"data": menus})
}

func (h *Handler) AdminCreateMenu(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	var in backend.MenuInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid request")
		return
	}
	if msg := validateMenuInput(in); msg != "" {
		respondError(w, http.StatusBadRequest, "invalid_request", msg)
		return
	}

	menu, err := h.Backend.CreateMenu(r.Context(), claims.BackendToken, in)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, menu)
}

func (h *Handler) AdminUpdateMenu(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in backend.MenuInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid request")
		return
	}
	if msg := validateMenuInput(in); msg != "" {
		respondError(w, http.StatusBadRequest, "invalid_request", msg)
		return
	}

	menu, err := h.Backend.UpdateMenu(r.Context(), claims.BackendToken, id, in)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, menu)
}

func (h *Handler) AdminToggleMenu(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Backend.ToggleMenu(r.Context(), claims.BackendToken, id); err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "menu availability toggled"})
}

func (h *Handler) AdminDeleteMenu(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Backend.DeleteMenu(r.Context(), claims.BackendToken, id); err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "menu deleted"})
}

func (h *Handler) AdminListCategories(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	categories, err := h.Backend.Categories(r.Context(), claims.BackendToken)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"data": categories})
}

func (h *Handler) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	users, err := h.Backend.Users(r.Context(), claims.BackendToken)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"data": users})
}

func (h *Handler) AdminCreateUser(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	var in backend.UserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid request")
		return
	}
	if in.Name == "" || in.Email == "" || in.Password == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "name, email and password are required")
		return
	}

	user, err := h.Backend.CreateUser(r.Context(), claims.BackendToken, in)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

func (h *Handler) AdminUpdateUser(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in backend.UserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid request")
		return
	}
	if in.Name == "" || in.Email == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "name and email are required")
		return
	}

	user, err := h.Backend.UpdateUser(r.Context(), claims.BackendToken, id, in)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *Handler) AdminToggleUser(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Backend.ToggleUser(r.Context(), claims.BackendToken, id); err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "user status toggled"})
}

func (h *Handler) AdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Backend.DeleteUser(r.Context(), claims.BackendToken, id); err != nil {
		respondBackendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "user deleted"})
}

func validateMenuInput(in backend.MenuInput) string {
	switch {
	case in.Name == "":
		return "name is required"
	case in.CategoryID <= 0:
		return "category_id is required"
	case in.Price <= 0:
		return "price must be positive"
	}
	return ""
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_id", "invalid id")
		return 0, false
	}
	return id, true
}
