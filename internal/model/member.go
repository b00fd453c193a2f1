package model

import (
	"github.com/shopspring/decimal"
)

type Member struct {
	ID        int64           `db:"m_id"`
	FirstName string          `db:"f_name"`
	LastName  string          `db:"l_name"`
	Email     string          `db:"email"`
	Password  string          `db:"password"`
	Height    *int64          `db:"height"` // Nullable until the member fills in their profile
	Weight    *int64          `db:"weight"`
	Gender    *string         `db:"gender"`
	Balance   decimal.Decimal `db:"acc_balance"`
}

func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}
