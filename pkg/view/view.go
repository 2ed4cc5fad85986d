// Package view renders bankist display facts. Renderers know nothing about
// business rules; they only lay out what a Display already holds.
package view

import (
	"slices"

	"github.com/shopspring/decimal"

	"bankist.dev/bankist/pkg/bankist"
)

// Euro formats an amount the way every label shows it.
func Euro(d decimal.Decimal) string {
	return d.String() + "€"
}

// screenOrder returns rows top to bottom as they appear on screen. Each row
// is inserted above the previous one, so the last render-order row is first.
func screenOrder(rows []bankist.MovementRow) []bankist.MovementRow {
	out := slices.Clone(rows)
	slices.Reverse(out)
	return out
}
