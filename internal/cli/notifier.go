package cli

import (
	"fmt"
	"io"

	"github.com/yunz06/quan-li-chi-tieu/internal/model"
)

// TerminalNotifier renders core notifications on a terminal. It implements
// service.Notifier.
type TerminalNotifier struct {
	out io.Writer
}

// NewTerminalNotifier creates a notifier writing to out.
func NewTerminalNotifier(out io.Writer) *TerminalNotifier {
	return &TerminalNotifier{out: out}
}

// Confirm prints a completed-action confirmation.
func (n *TerminalNotifier) Confirm(message string) {
	fmt.Fprintln(n.out, FormatSuccess(message))
}

// BudgetWarning prints a budget-exceeded warning.
func (n *TerminalNotifier) BudgetWarning(alert model.BudgetAlert) {
	fmt.Fprintln(n.out, FormatWarning(fmt.Sprintf(
		"Spending for %s is at %.0f%% of income (spent %.2f of %.2f)",
		alert.Month, alert.Percent(), alert.Total, alert.Income)))
}
