package model

// User owns transactions and budgets.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	ID    int64  `json:"id"`
}

// Budget is a monthly spending target for one category.
type Budget struct {
	Category string  `json:"category"`
	ID       int64   `json:"id,omitempty"`
	UserID   int64   `json:"user_id"`
	Amount   float64 `json:"amount"`
}
