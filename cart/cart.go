package cart

import (
	"github.com/senandung-senja/kasir/models"
)

// Line is one menu item in the cart. Name and UnitPrice are snapshotted at
// add time; the backend reprices the transaction at submit, so the snapshot
// only drives the advisory total the operator sees.
type Line struct {
	MenuID    int     `json:"menu_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Qty       int     `json:"qty"`
}

// Session is the in-progress order for one operator: the cart lines in
// insertion order plus the chosen payment method. It is a value type; the
// transition methods return a new Session and never mutate the receiver.
// At most one line exists per menu ID and every line has qty >= 1.
type Session struct {
	Lines  []Line               `json:"lines"`
	Method models.PaymentMethod `json:"payment_method"`
}

func NewSession() Session {
	return Session{Method: models.PaymentCash}
}

// AddItem increments the matching line's quantity, or appends a new line
// with qty 1 snapshotting the item's current name and price.
func (s Session) AddItem(item models.MenuItem) Session {
	lines := make([]Line, len(s.Lines))
	copy(lines, s.Lines)

	for i := range lines {
		if lines[i].MenuID == item.ID {
			lines[i].Qty++
			s.Lines = lines
			return s
		}
	}

	s.Lines = append(lines, Line{
		MenuID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.Price,
		Qty:       1,
	})
	return s
}

// RemoveItem decrements the matching line's quantity, dropping the line when
// it reaches zero. Removing an absent item is a no-op.
func (s Session) RemoveItem(menuID int) Session {
	lines := make([]Line, 0, len(s.Lines))
	for _, line := range s.Lines {
		if line.MenuID == menuID {
			line.Qty--
			if line.Qty <= 0 {
				continue
			}
		}
		lines = append(lines, line)
	}
	s.Lines = lines
	return s
}

func (s Session) QuantityOf(menuID int) int {
	for _, line := range s.Lines {
		if line.MenuID == menuID {
			return line.Qty
		}
	}
	return 0
}

// Total is always derived from the lines, never stored.
func (s Session) Total() float64 {
	var total float64
	for _, line := range s.Lines {
		total += line.UnitPrice * float64(line.Qty)
	}
	return total
}

func (s Session) IsEmpty() bool {
	return len(s.Lines) == 0
}

func (s Session) WithPaymentMethod(m models.PaymentMethod) Session {
	s.Method = m
	return s
}
