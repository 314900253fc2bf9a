package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/senandung-senja/kasir/middlewares"
	"github.com/senandung-senja/kasir/models"
)

const defaultPerPage = 5

// ListMenus serves the transaction screen's catalog panel. Search and
// pagination happen here, over the full catalog; they are display concerns
// and never touch cart state.
func (h *Handler) ListMenus(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	result, err := h.Catalog.Fetch(r.Context(), claims.BackendToken)
	if err != nil {
		respondBackendError(w, err)
		return
	}

	filtered := filterMenus(result.Items, r.URL.Query().Get("q"))

	page, perPage := 1, defaultPerPage
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("per_page")); err == nil && v > 0 {
		perPage = v
	}

	totalPages := (len(filtered) + perPage - 1) / perPage
	start := (page - 1) * perPage
	end := start + perPage
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"data": filtered[start:end],
		"meta": map[string]interface{}{
			"total":       len(filtered),
			"page":        page,
			"per_page":    perPage,
			"total_pages": totalPages,
			"stale":       result.Stale,
		},
	})
}

func filterMenus(items []models.MenuItem, query string) []models.MenuItem {
	if query == "" {
		return items
	}
	query = strings.ToLower(query)

	filtered := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), query) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
