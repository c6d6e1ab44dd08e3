// Command splitcheck splits a scanned bill from the command line.
//
//	splitcheck -people Alice,Bob -assign "Chicken Tenders=Alice" \
//	    -assign "Bacon Burger Meal=Alice,Bob" -tip-percent 15 -payer Alice bill.json
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/billsplit/internal/config"
	"github.com/mmynk/billsplit/internal/ingest"
	"github.com/mmynk/billsplit/internal/metrics"
	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/split"
	"github.com/mmynk/billsplit/pkg/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("splitcheck failed", "error", err)
		os.Exit(1)
	}
}

// assignments collects repeated -assign "item=person,person" flags.
type assignments []string

func (a *assignments) String() string { return strings.Join(*a, "; ") }

func (a *assignments) Set(v string) error {
	if !strings.Contains(v, "=") {
		return fmt.Errorf("want item=person[,person...], got %q", v)
	}
	*a = append(*a, v)
	return nil
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("splitcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	people := fs.String("people", "", "comma-separated names to add to the roster")
	tipPercent := fs.String("tip-percent", "", "set the tip as a percentage of the subtotal")
	tip := fs.String("tip", "", "set the tip as a fixed amount")
	payer := fs.String("payer", "", "name of the person who paid the whole bill")
	var assign assignments
	fs.Var(&assign, "assign", `assign an item to people: "item name or id=Alice,Bob" (repeatable)`)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("expected exactly one bill document")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := logging.ParseLevel(cfg.LogLevel)
	logger := logging.Setup(stderr, level)

	reg := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(reg)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("failed to open bill: %w", err)
	}
	defer f.Close()
	doc, err := ingest.Decode(f)
	if err != nil {
		return err
	}

	s := ingest.Load(doc,
		split.WithLogger(logger),
		split.WithRecorder(recorder),
		split.WithPalette(cfg.Palette),
		split.WithCurrency(cfg.Currency),
	)
	logger.Info("Bill loaded", "items", len(doc.Items), "file", fs.Arg(0))

	if *people != "" {
		for _, name := range strings.Split(*people, ",") {
			if _, ok := findPerson(s, name); !ok {
				s.AddPerson(name)
			}
		}
	}
	for _, a := range assign {
		applyAssignment(s, logger, a)
	}
	if *tip != "" && !s.SetTipAmountText(*tip) {
		logger.Warn("Ignoring tip", "tip", *tip)
	}
	if *tipPercent != "" && !s.SetTipPercentText(*tipPercent) {
		logger.Warn("Ignoring tip percentage", "tip_percent", *tipPercent)
	}

	var payerID string
	if *payer != "" {
		p, ok := findPerson(s, *payer)
		if !ok {
			return fmt.Errorf("payer %q is not on the roster", *payer)
		}
		payerID = p.ID
	}

	if err := newReport(s, cfg.Language()).write(stdout, payerID); err != nil {
		return err
	}

	rejected, err := metrics.Rejected(reg)
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for op, n := range rejected {
		logger.Debug("Rejected edits", "op", op, "count", n)
	}
	return nil
}

// applyAssignment handles one "item=person,person" flag value. People not on
// the roster are added first.
func applyAssignment(s *split.Session, logger *slog.Logger, a string) {
	itemRef, names, _ := strings.Cut(a, "=")
	itemRef = strings.TrimSpace(itemRef)

	var itemID string
	for _, item := range s.Items() {
		if item.ID == itemRef || strings.EqualFold(item.Name, itemRef) {
			itemID = item.ID
			break
		}
	}
	if itemID == "" {
		logger.Warn("Unknown item in assignment", "item", itemRef)
		return
	}

	for _, name := range strings.Split(names, ",") {
		p, ok := findPerson(s, name)
		if !ok {
			if p, ok = s.AddPerson(name); !ok {
				continue
			}
		}
		if !slices.Contains(s.AssignedTo(itemID), p.ID) {
			s.Toggle(itemID, p.ID)
		}
	}
}

// findPerson looks a person up by name, ignoring case and surrounding space.
func findPerson(s *split.Session, name string) (models.Person, bool) {
	name = strings.TrimSpace(name)
	for _, p := range s.People() {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return models.Person{}, false
}
