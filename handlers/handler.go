package handlers

import (
	"github.com/senandung-senja/kasir/backend"
	"github.com/senandung-senja/kasir/cart"
)

// Handler wires every screen's endpoints to the backend client and the
// in-memory session state.
type Handler struct {
	Backend  *backend.Client
	Catalog  *backend.Catalog
	Carts    *cart.Store
	Payments *cart.PaymentStore
}

func New(client *backend.Client) *Handler {
	return &Handler{
		Backend:  client,
		Catalog:  backend.NewCatalog(client),
		Carts:    cart.NewStore(),
		Payments: cart.NewPaymentStore(),
	}
}
