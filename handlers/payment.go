package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/senandung-senja/kasir/middlewares"
	"github.com/senandung-senja/kasir/models"
)

// Settlement account shown on the transfer confirmation screen.
const transferAccount = "BCA 123456789"

func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	transactionID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || transactionID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_transaction_id", "invalid transaction id")
		return
	}

	pending, ok := h.Payments.Get(claims.SessionID, transactionID)
	if !ok {
		respondError(w, http.StatusNotFound, "payment_not_found", "no pending payment for this transaction")
		return
	}

	resp := map[string]interface{}{
		"transaction_id": pending.TransactionID,
		"total":          pending.Total,
		"payment_method": pending.Method,
	}
	if pending.Method == models.PaymentTransfer {
		resp["transfer_account"] = transferAccount
	}
	respondJSON(w, http.StatusOK, resp)
}

// CompletePayment settles the confirmation step. Cash requires enough
// tender and reports the change; transfer just acknowledges.
func (h *Handler) CompletePayment(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	transactionID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || transactionID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_transaction_id", "invalid transaction id")
		return
	}

	pending, ok := h.Payments.Get(claims.SessionID, transactionID)
	if !ok {
		respondError(w, http.StatusNotFound, "payment_not_found", "no pending payment for this transaction")
		return
	}

	type request struct {
		CashReceived float64 `json:"cash_received"`
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid request")
		return
	}

	var change float64
	if pending.Method == models.PaymentCash {
		if req.CashReceived < pending.Total {
			respondError(w, http.StatusUnprocessableEntity, "insufficient_cash", "cash received is less than the total")
			return
		}
		change = req.CashReceived - pending.Total
	}

	h.Payments.Remove(claims.SessionID, transactionID)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"transaction_id": pending.TransactionID,
		"total":          pending.Total,
		"payment_method": pending.Method,
		"change":         change,
	})
}
