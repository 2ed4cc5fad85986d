package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bankist.dev/bankist/pkg/bankist"
)

type styles struct {
	welcome    lipgloss.Style
	balance    lipgloss.Style
	deposit    lipgloss.Style
	withdrawal lipgloss.Style
	summary    lipgloss.Style
	muted      lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		welcome:    r.NewStyle().Bold(true),
		balance:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#39b385")),
		deposit:    r.NewStyle().Foreground(lipgloss.Color("#39b385")),
		withdrawal: r.NewStyle().Foreground(lipgloss.Color("#e52a5a")),
		summary:    r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		muted:      r.NewStyle().Foreground(lipgloss.Color("#828282")),
	}
}

// Text writes a console screen for d. Colours follow what w supports.
func Text(w io.Writer, d bankist.Display) error {
	st := newStyles(lipgloss.NewRenderer(w))

	if !d.LoggedIn {
		_, err := fmt.Fprintln(w, st.welcome.Render(d.Welcome))
		return err
	}

	var movs strings.Builder
	for _, row := range screenOrder(d.Movements) {
		kind := st.deposit
		if row.Kind == bankist.Withdrawal {
			kind = st.withdrawal
		}
		fmt.Fprintf(&movs, "%3d %s %12s\n", row.Number, kind.Render(fmt.Sprintf("%-10s", row.Kind)), Euro(row.Amount))
	}
	if len(d.Movements) == 0 {
		movs.WriteString(st.muted.Render("no movements") + "\n")
	}

	order := "chronological"
	if d.Sorted {
		order = "sorted"
	}

	summary := st.summary.Render(fmt.Sprintf("In %s   Out %s   Interest %s",
		st.deposit.Render(Euro(d.Income)),
		st.withdrawal.Render(Euro(d.Expense)),
		st.deposit.Render(Euro(d.Interest)),
	))

	screen := lipgloss.JoinVertical(lipgloss.Left,
		st.welcome.Render(d.Welcome),
		"Current balance "+st.balance.Render(Euro(d.Balance)),
		st.muted.Render("movements ("+order+")"),
		strings.TrimSuffix(movs.String(), "\n"),
		summary,
	)
	_, err := fmt.Fprintln(w, screen)
	return err
}
