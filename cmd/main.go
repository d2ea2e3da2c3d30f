package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"

	"github.com/luca-patrignani/hand-sampler/domain/poker"
	"github.com/luca-patrignani/hand-sampler/sampling"
)

func main() {
	_ = godotenv.Load()

	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Getenv, os.Stdout, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Error("hand-sampler failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, getenv func(string) string, out io.Writer, logger *slog.Logger) error {
	if len(args) > 0 && args[0] == "inspect" {
		return inspect(strings.Join(args[1:], " "), out)
	}

	opts, err := parseOptions(args, getenv, out)
	if err != nil {
		return err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.verbose {
		pterm.DefaultLogger.Level = pterm.LogLevelDebug
	}

	runner, err := sampling.NewRunner(opts.cfg, logger)
	if err != nil {
		return err
	}

	printHeader()
	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Dealing %d hands of %d cards ...", opts.cfg.Samples, opts.cfg.HandSize))
	res, err := runner.Run(ctx)
	if err != nil {
		spinner.Fail()
		return err
	}
	spinner.Success()

	if err := printResult(res); err != nil {
		return err
	}

	if opts.report != "" {
		if err := writeRunReportJSON(opts.report, buildRunReport(opts.cfg, res)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logger.Info("report written", "path", opts.report)
	}
	return nil
}

// inspect classifies one hand given on the command line.
func inspect(cards string, out io.Writer) error {
	cs, err := poker.ParseCards(cards)
	if err != nil {
		return err
	}
	if len(cs) < poker.MinHandSize {
		return fmt.Errorf("inspect needs at least %d cards, got %d", poker.MinHandSize, len(cs))
	}
	h := poker.HandOf(cs...)
	matches := poker.Matches(h)

	var set poker.CategorySet
	for _, m := range matches {
		set = set.Add(m.Category)
	}
	summary := fmt.Sprintf("Hand: %s\nCategories: %s", h, set)
	if best, ok := poker.Best(set); ok {
		summary += "\nBest: " + best.String()
	}
	if len(cs) == 7 {
		desc, err := poker.Describe(cs)
		if err != nil {
			return err
		}
		summary += "\nEvaluator: " + desc
	}
	fmt.Fprintln(out, pterm.DefaultBox.WithTitle(pterm.LightCyan("|INSPECT|")).WithTitleTopCenter().Sprint(summary))

	if len(matches) == 0 {
		return nil
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(matchTableData(matches)).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, table)
	return nil
}
