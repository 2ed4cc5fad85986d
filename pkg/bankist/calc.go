package bankist

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
	// interest contributions below this are dropped entirely
	minInterest = decimal.NewFromInt(1)
	// a loan needs one movement of at least this share of the amount
	loanCoverage = decimal.RequireFromString("0.1")
)

// Balance is the sum of all movements. An empty history yields zero.
func Balance(a *Account) decimal.Decimal {
	return decimal.Sum(decimal.Zero, a.Movements...)
}

// Income is the sum of all deposits.
func Income(a *Account) decimal.Decimal {
	total := decimal.Zero
	for _, m := range a.Movements {
		if m.IsPositive() {
			total = total.Add(m)
		}
	}
	return total
}

// Expense is the sum of the absolute values of all withdrawals.
func Expense(a *Account) decimal.Decimal {
	total := decimal.Zero
	for _, m := range a.Movements {
		if m.IsNegative() {
			total = total.Add(m.Abs())
		}
	}
	return total
}

// Interest pays InterestRate percent on every deposit, skipping any single
// deposit whose interest is below 1.
func Interest(a *Account) decimal.Decimal {
	total := decimal.Zero
	for _, m := range a.Movements {
		if !m.IsPositive() {
			continue
		}
		i := m.Mul(a.InterestRate).Div(hundred)
		if i.LessThan(minInterest) {
			continue
		}
		total = total.Add(i)
	}
	return total
}

// TotalBalance sums every movement of every account.
func TotalBalance(accounts []*Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(Balance(a))
	}
	return total
}

// qualifiesForLoan reports whether some movement covers 10% of amount.
func qualifiesForLoan(a *Account, amount decimal.Decimal) bool {
	need := amount.Mul(loanCoverage)
	for _, m := range a.Movements {
		if m.GreaterThanOrEqual(need) {
			return true
		}
	}
	return false
}
