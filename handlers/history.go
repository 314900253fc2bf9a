package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/senandung-senja/kasir/middlewares"
	"github.com/senandung-senja/kasir/models"
	"github.com/sirupsen/logrus"
)

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	history, err := h.Backend.History(r.Context(), claims.BackendToken)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	if history == nil {
		history = []models.Transaction{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"data": history})
}

// CancelTransaction voids a sale with a mandatory reason. Admin only; the
// backend enforces the same rule authoritatively.
func (h *Handler) CancelTransaction(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_transaction_id", "invalid transaction id")
		return
	}

	type request struct {
		CancelReason string `json:"cancel_reason"`
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid request")
		return
	}
	if req.CancelReason == "" {
		respondError(w, http.StatusBadRequest, "missing_reason", "cancel reason is required")
		return
	}

	if err := h.Backend.CancelTransaction(r.Context(), claims.BackendToken, id, req.CancelReason); err != nil {
		respondBackendError(w, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"session":        claims.SessionID,
		"transaction_id": id,
	}).Info("transaction cancelled")

	respondJSON(w, http.StatusOK, map[string]string{"message": "transaction cancelled"})
}

// TransactionReceipt streams the backend-rendered PDF for one transaction.
func (h *Handler) TransactionReceipt(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_transaction_id", "invalid transaction id")
		return
	}

	pdf, contentType, err := h.Backend.TransactionPDF(r.Context(), claims.BackendToken, id)
	if err != nil {
		respondBackendError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="transaksi-%d.pdf"`, id))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		logrus.WithError(err).Error("failed to write receipt")
	}
}

// DailyReportPDF streams the daily sales report. Date defaults to today.
func (h *Handler) DailyReportPDF(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD")
		return
	}

	pdf, contentType, err := h.Backend.DailyReportPDF(r.Context(), claims.BackendToken, date)
	if err != nil {
		respondBackendError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="laporan-harian-%s.pdf"`, date))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		logrus.WithError(err).Error("failed to write report")
	}
}
