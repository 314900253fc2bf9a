package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/senandung-senja/kasir/backend"
	"github.com/senandung-senja/kasir/cart"
	"github.com/senandung-senja/kasir/middlewares"
	"github.com/senandung-senja/kasir/models"
	"github.com/sirupsen/logrus"
)

type cartResponse struct {
	Lines         []cart.Line          `json:"lines"`
	Total         float64              `json:"total"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
}

func toCartResponse(s cart.Session) cartResponse {
	lines := s.Lines
	if lines == nil {
		lines = []cart.Line{}
	}
	return cartResponse{
		Lines:         lines,
		Total:         s.Total(),
		PaymentMethod: s.Method,
	}
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	respondJSON(w, http.StatusOK, toCartResponse(h.Carts.Get(claims.SessionID)))
}

// AddCartItem snapshots the item's current name and price from the catalog
// and bumps its quantity. Works from the cached catalog when the backend is
// down, as long as the item was seen before.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	type request struct {
		MenuID int `json:"menu_id"`
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid request")
		return
	}
	if req.MenuID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_menu_id", "menu_id must be positive")
		return
	}

	item, found, err := h.Catalog.Lookup(r.Context(), claims.BackendToken, req.MenuID)
	if err != nil {
		respondBackendError(w, err)
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, "menu_not_found", "menu item not found")
		return
	}

	session := h.Carts.Update(claims.SessionID, func(s cart.Session) cart.Session {
		return s.AddItem(item)
	})
	respondJSON(w, http.StatusOK, toCartResponse(session))
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	menuID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || menuID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_menu_id", "invalid menu id")
		return
	}

	session := h.Carts.Update(claims.SessionID, func(s cart.Session) cart.Session {
		return s.RemoveItem(menuID)
	})
	respondJSON(w, http.StatusOK, toCartResponse(session))
}

func (h *Handler) SetPaymentMethod(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	type request struct {
		PaymentMethod models.PaymentMethod `json:"payment_method"`
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid request")
		return
	}
	if !req.PaymentMethod.IsValid() {
		respondError(w, http.StatusBadRequest, "invalid_payment_method", "payment method must be cash or transfer")
		return
	}

	session := h.Carts.Update(claims.SessionID, func(s cart.Session) cart.Session {
		return s.WithPaymentMethod(req.PaymentMethod)
	})
	respondJSON(w, http.StatusOK, toCartResponse(session))
}

// ClearCart discards the in-progress order, matching leaving the
// transaction screen.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	h.Carts.Clear(claims.SessionID)
	respondJSON(w, http.StatusOK, toCartResponse(cart.NewSession()))
}

// Checkout submits the cart as one transaction. An empty cart is rejected
// before any network traffic; on failure the cart is left untouched so the
// operator can retry without re-entering items.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	claims, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	session := h.Carts.Get(claims.SessionID)
	if session.IsEmpty() {
		respondError(w, http.StatusUnprocessableEntity, "empty_cart", "cart is empty")
		return
	}

	lines := make([]backend.TransactionLine, 0, len(session.Lines))
	for _, line := range session.Lines {
		lines = append(lines, backend.TransactionLine{MenuID: line.MenuID, Qty: line.Qty})
	}

	trx, err := h.Backend.CreateTransaction(r.Context(), claims.BackendToken, lines, session.Method)
	if err != nil {
		respondBackendError(w, err)
		return
	}

	pending := cart.PendingPayment{
		TransactionID: trx.ID,
		Total:         session.Total(),
		Method:        session.Method,
	}
	h.Payments.Put(claims.SessionID, pending)
	h.Carts.Clear(claims.SessionID)

	logrus.WithFields(logrus.Fields{
		"session":        claims.SessionID,
		"transaction_id": trx.ID,
		"total":          pending.Total,
		"payment_method": pending.Method,
	}).Info("transaction submitted")

	respondJSON(w, http.StatusCreated, pending)
}
