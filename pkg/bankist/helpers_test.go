package bankist

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func amounts(rows []MovementRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Amount.String()
	}
	return out
}

func movementStrings(a Account) []string {
	out := make([]string, len(a.Movements))
	for i, m := range a.Movements {
		out[i] = m.String()
	}
	return out
}

func demoStore() *Store {
	return NewStore(DefaultAccounts())
}

func mustNumber(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := parseNumber(s)
	if err != nil {
		t.Fatalf("parseNumber(%q): %v", s, err)
	}
	return d
}
