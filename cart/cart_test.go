package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/senandung-senja/kasir/models"
)

var (
	kopiSusu = models.MenuItem{ID: 1, Name: "Kopi Susu", Price: 15000}
	esTeh    = models.MenuItem{ID: 2, Name: "Es Teh", Price: 20000}
)

func TestAddItem_NewLine(t *testing.T) {
	s := NewSession().AddItem(kopiSusu)

	if len(s.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(s.Lines))
	}
	if s.Lines[0].Qty != 1 {
		t.Errorf("expected qty 1, got %d", s.Lines[0].Qty)
	}
	if s.Lines[0].Name != "Kopi Susu" || s.Lines[0].UnitPrice != 15000 {
		t.Errorf("snapshot not taken: %+v", s.Lines[0])
	}
}

func TestAddItem_SameItemMergesLine(t *testing.T) {
	s := NewSession().AddItem(kopiSusu).AddItem(kopiSusu)

	if len(s.Lines) != 1 {
		t.Fatalf("expected 1 line after adding same item twice, got %d", len(s.Lines))
	}
	if s.Lines[0].Qty != 2 {
		t.Errorf("expected qty 2, got %d", s.Lines[0].Qty)
	}
}

func TestRemoveItem_DecrementsAndDeletes(t *testing.T) {
	s := NewSession().AddItem(kopiSusu).AddItem(kopiSusu)

	s = s.RemoveItem(kopiSusu.ID)
	if got := s.QuantityOf(kopiSusu.ID); got != 1 {
		t.Errorf("expected qty 1 after one remove, got %d", got)
	}

	s = s.RemoveItem(kopiSusu.ID)
	if got := s.QuantityOf(kopiSusu.ID); got != 0 {
		t.Errorf("expected qty 0, got %d", got)
	}
	if len(s.Lines) != 0 {
		t.Errorf("line with qty 0 must be deleted, got %d lines", len(s.Lines))
	}
}

func TestRemoveItem_AbsentIsNoop(t *testing.T) {
	s := NewSession().AddItem(kopiSusu)

	s = s.RemoveItem(999)
	if len(s.Lines) != 1 || s.QuantityOf(kopiSusu.ID) != 1 {
		t.Errorf("removing absent item must not change the cart: %+v", s.Lines)
	}

	// repeated removes past zero never go negative
	s = s.RemoveItem(kopiSusu.ID).RemoveItem(kopiSusu.ID).RemoveItem(kopiSusu.ID)
	if got := s.QuantityOf(kopiSusu.ID); got != 0 {
		t.Errorf("quantity must never go negative, got %d", got)
	}
}

func TestTotal_MixedItems(t *testing.T) {
	// one kopi susu + two es teh = 15000 + 40000
	s := NewSession().AddItem(kopiSusu).AddItem(esTeh).AddItem(esTeh)

	if got := s.Total(); got != 55000 {
		t.Errorf("expected total 55000, got %v", got)
	}
}

func TestTotal_AfterAddAddRemove(t *testing.T) {
	// add twice, remove once -> qty 1, total = unit price
	s := NewSession().AddItem(kopiSusu).AddItem(kopiSusu).RemoveItem(kopiSusu.ID)

	if got := s.QuantityOf(kopiSusu.ID); got != 1 {
		t.Errorf("expected qty 1, got %d", got)
	}
	if got := s.Total(); got != 15000 {
		t.Errorf("expected total 15000, got %v", got)
	}
}

func TestTotal_DerivedUnderInterleaving(t *testing.T) {
	ops := []struct {
		add    bool
		item   models.MenuItem
		remove int
	}{
		{add: true, item: kopiSusu},
		{add: true, item: esTeh},
		{add: true, item: kopiSusu},
		{remove: esTeh.ID},
		{add: true, item: esTeh},
		{remove: kopiSusu.ID},
		{add: true, item: esTeh},
	}

	s := NewSession()
	for _, op := range ops {
		if op.add {
			s = s.AddItem(op.item)
		} else {
			s = s.RemoveItem(op.remove)
		}

		var want float64
		for _, line := range s.Lines {
			want += line.UnitPrice * float64(line.Qty)
			if line.Qty < 1 {
				t.Fatalf("line with qty < 1 retained: %+v", line)
			}
		}
		if got := s.Total(); got != want {
			t.Errorf("total drifted from lines: got %v want %v", got, want)
		}
	}
}

func TestTransitionsArePure(t *testing.T) {
	before := NewSession().AddItem(kopiSusu)
	_ = before.AddItem(esTeh)
	_ = before.RemoveItem(kopiSusu.ID)

	if len(before.Lines) != 1 || before.Lines[0].Qty != 1 {
		t.Errorf("transition mutated the receiver: %+v", before.Lines)
	}
}

func TestWithPaymentMethod(t *testing.T) {
	s := NewSession()
	if s.Method != models.PaymentCash {
		t.Errorf("default method must be cash, got %s", s.Method)
	}

	s = s.WithPaymentMethod(models.PaymentTransfer)
	if s.Method != models.PaymentTransfer {
		t.Errorf("expected transfer, got %s", s.Method)
	}
}

func TestStore_IsolatesSessions(t *testing.T) {
	store := NewStore()
	a, b := uuid.New(), uuid.New()

	store.Update(a, func(s Session) Session { return s.AddItem(kopiSusu) })

	if got := store.Get(b); !got.IsEmpty() {
		t.Errorf("session b must start empty, got %+v", got.Lines)
	}
	if got := store.Get(a); got.QuantityOf(kopiSusu.ID) != 1 {
		t.Errorf("session a lost its cart: %+v", got.Lines)
	}

	store.Clear(a)
	if got := store.Get(a); !got.IsEmpty() {
		t.Errorf("cleared session must be empty, got %+v", got.Lines)
	}
}

func TestPaymentStore(t *testing.T) {
	store := NewPaymentStore()
	session := uuid.New()

	store.Put(session, PendingPayment{TransactionID: 42, Total: 55000, Method: models.PaymentCash})

	p, ok := store.Get(session, 42)
	if !ok {
		t.Fatal("expected pending payment")
	}
	if p.Total != 55000 || p.Method != models.PaymentCash {
		t.Errorf("unexpected pending payment: %+v", p)
	}

	if _, ok := store.Get(uuid.New(), 42); ok {
		t.Error("pending payment leaked across sessions")
	}

	store.Remove(session, 42)
	if _, ok := store.Get(session, 42); ok {
		t.Error("expected payment removed")
	}
}
