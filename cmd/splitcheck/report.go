package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/split"
)

// report renders a session as plain text.
type report struct {
	s *split.Session
	p *message.Printer
}

func newReport(s *split.Session, tag language.Tag) *report {
	return &report{s: s, p: message.NewPrinter(tag)}
}

// money formats d with the printer's digit grouping and decimal separator.
// The digits come from the decimal itself, never from a float.
func (r *report) money(d decimal.Decimal) string {
	return r.s.Currency() + formatAmount(r.p, d)
}

func formatAmount(p *message.Printer, d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	whole, frac, _ := strings.Cut(d.StringFixed(2), ".")
	if w := d.Truncate(0); w.BigInt().IsInt64() {
		whole = p.Sprintf("%d", w.IntPart())
	}
	sep := strings.TrimSuffix(strings.TrimPrefix(p.Sprintf("%.1f", 0.5), "0"), "5")
	if sep == "" {
		sep = "."
	}
	return sign + whole + sep + frac
}

func (r *report) write(w io.Writer, payerID string) error {
	bill := r.s.Bill()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "Subtotal:\t"+r.money(bill.Subtotal))
	fmt.Fprintln(tw, "Taxes and extra fees:\t"+r.money(bill.TaxAmount))
	fmt.Fprintf(tw, "Tip:\t%s (%s%%)\n", r.money(bill.TipAmount), r.s.TipPercentage().StringFixed(0))
	if !bill.DiscountAmount.IsZero() {
		fmt.Fprintln(tw, "Discount:\t-"+r.money(bill.DiscountAmount))
	}
	fmt.Fprintln(tw, "Total:\t"+r.money(r.s.Total()))
	if check := r.s.TotalCheck(); !check.Scanned.IsZero() && !check.Matches() {
		fmt.Fprintf(tw, "Receipt says:\t%s (off by %s)\n", r.money(check.Scanned), r.money(check.Difference.Abs()))
	}
	fmt.Fprintln(tw)

	names := map[string]string{}
	for _, p := range r.s.People() {
		names[p.ID] = p.Name
	}

	allocations := r.s.Allocations()
	if len(allocations) == 0 {
		fmt.Fprintln(tw, "No one to split with yet.")
	}
	for _, a := range allocations {
		color, _ := r.s.Color(a.PersonID)
		fmt.Fprintf(tw, "%s\t%s\t(%s%%)\t%s\n", a.Name, r.money(a.PersonTotal), a.DisplayPercentage(), color)
		for _, item := range a.Items {
			fmt.Fprintf(tw, "  %s\t%s\t\t\n", item.Name, r.money(item.Share))
		}
	}

	if unassigned := r.s.UnassignedItems(); len(unassigned) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "Unassigned items:")
		for _, item := range unassigned {
			fmt.Fprintf(tw, "  %s\t%s\n", item.Name, r.money(item.LineTotal()))
		}
		fmt.Fprintf(tw, "Not covered by anyone:\t%s\n", r.money(r.s.Unallocated()))
	}

	if payerID != "" {
		fmt.Fprintln(tw)
		writeTransfers(tw, r, names, r.s.SettleWith(payerID))
	}

	return tw.Flush()
}

func writeTransfers(w io.Writer, r *report, names map[string]string, transfers []models.Transfer) {
	if len(transfers) == 0 {
		fmt.Fprintln(w, "Everyone is square.")
		return
	}
	for _, t := range transfers {
		fmt.Fprintf(w, "%s pays %s\t%s\n", names[t.From], names[t.To], r.money(t.Amount))
	}
}
