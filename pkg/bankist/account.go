// Package bankist holds the account model, the derived-value calculator and
// the session actions of the Bankist mock bank.
package bankist

import (
	"github.com/shopspring/decimal"
)

// Account is one bank customer. Balance is never stored on it; use Balance.
type Account struct {
	ID           string            `json:"id"`
	Owner        string            `json:"owner"`
	Username     string            `json:"username"`
	Movements    []decimal.Decimal `json:"movements"`
	InterestRate decimal.Decimal   `json:"interest_rate"`
	Pin          int               `json:"-"`
}

// NewAccount builds an account from plain numbers. Username and ID are
// assigned by NewStore.
func NewAccount(owner string, movements []float64, interestRate float64, pin int) *Account {
	movs := make([]decimal.Decimal, len(movements))
	for i, m := range movements {
		movs[i] = decimal.NewFromFloat(m)
	}
	return &Account{
		Owner:        owner,
		Movements:    movs,
		InterestRate: decimal.NewFromFloat(interestRate),
		Pin:          pin,
	}
}

// clone returns a copy that shares no slice with a.
func (a *Account) clone() Account {
	cp := *a
	cp.Movements = make([]decimal.Decimal, len(a.Movements))
	copy(cp.Movements, a.Movements)
	return cp
}

func (a *Account) push(amount decimal.Decimal) {
	a.Movements = append(a.Movements, amount)
}
