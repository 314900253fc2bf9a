package models

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleOwner   Role = "owner"
	RoleCashier Role = "cashier"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleOwner, RoleCashier:
		return true
	}
	return false
}

// CanViewTopItems reports whether the role sees the popular-items panel on
// the dashboard. Cashiers get the trimmed dashboard.
func (r Role) CanViewTopItems() bool {
	switch r {
	case RoleAdmin, RoleOwner:
		return true
	case RoleCashier:
		return false
	}
	return false
}

type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	IsActive bool   `json:"is_active"`
}
