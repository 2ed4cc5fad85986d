package bankist

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// MovementKind tags a movement row by sign.
type MovementKind string

const (
	Deposit    MovementKind = "deposit"
	Withdrawal MovementKind = "withdrawal"
)

const welcomeLoggedOut = "Log in to get started"

// MovementRow is one rendered movement. Number is its 1-based position in
// render order.
type MovementRow struct {
	Number int             `json:"number"`
	Kind   MovementKind    `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
}

// Display holds every fact a renderer needs. It is rebuilt from the account
// on each action and never cached on it.
type Display struct {
	LoggedIn bool            `json:"logged_in"`
	Welcome  string          `json:"welcome"`
	Balance  decimal.Decimal `json:"balance"`
	Income   decimal.Decimal `json:"income"`
	Expense  decimal.Decimal `json:"expense"`
	Interest decimal.Decimal `json:"interest"`
	Sorted   bool            `json:"sorted"`
	// Movements is in render order: chronological, or ascending by amount
	// when Sorted. Renderers put each row on top of the previous one.
	Movements []MovementRow `json:"movements"`
}

func loggedOutDisplay() Display {
	return Display{Welcome: welcomeLoggedOut, Movements: []MovementRow{}}
}

func buildDisplay(a *Account, sorted bool) Display {
	return Display{
		LoggedIn:  true,
		Welcome:   "Welcome back, " + firstName(a.Owner) + "!",
		Balance:   Balance(a),
		Income:    Income(a),
		Expense:   Expense(a),
		Interest:  Interest(a),
		Sorted:    sorted,
		Movements: movementRows(a.Movements, sorted),
	}
}

func movementRows(movements []decimal.Decimal, sorted bool) []MovementRow {
	movs := movements
	if sorted {
		movs = slices.Clone(movements)
		slices.SortStableFunc(movs, func(a, b decimal.Decimal) int {
			return a.Cmp(b)
		})
	}
	rows := make([]MovementRow, len(movs))
	for i, m := range movs {
		kind := Withdrawal
		if m.IsPositive() {
			kind = Deposit
		}
		rows[i] = MovementRow{Number: i + 1, Kind: kind, Amount: m}
	}
	return rows
}

func firstName(owner string) string {
	if f := strings.Fields(owner); len(f) > 0 {
		return f[0]
	}
	return owner
}
