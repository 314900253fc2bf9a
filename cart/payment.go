package cart

import (
	"sync"

	"github.com/google/uuid"
	"github.com/senandung-senja/kasir/models"
)

// PendingPayment carries the committed total and payment method from
// checkout to the payment confirmation screen. Read-only once created; the
// backend's transaction record is the authoritative copy.
type PendingPayment struct {
	TransactionID int                  `json:"transaction_id"`
	Total         float64              `json:"total"`
	Method        models.PaymentMethod `json:"payment_method"`
}

type paymentKey struct {
	session       uuid.UUID
	transactionID int
}

// PaymentStore keeps pending payments per session until the payment screen
// completes them.
type PaymentStore struct {
	mu      sync.Mutex
	pending map[paymentKey]PendingPayment
}

func NewPaymentStore() *PaymentStore {
	return &PaymentStore{pending: make(map[paymentKey]PendingPayment)}
}

func (ps *PaymentStore) Put(session uuid.UUID, p PendingPayment) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.pending[paymentKey{session, p.TransactionID}] = p
}

func (ps *PaymentStore) Get(session uuid.UUID, transactionID int) (PendingPayment, bool) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	p, ok := ps.pending[paymentKey{session, transactionID}]
	return p, ok
}

func (ps *PaymentStore) Remove(session uuid.UUID, transactionID int) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	delete(ps.pending, paymentKey{session, transactionID})
}

// ClearSession drops every pending payment for a session, used at logout.
func (ps *PaymentStore) ClearSession(session uuid.UUID) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	for key := range ps.pending {
		if key.session == session {
			delete(ps.pending, key)
		}
	}
}
