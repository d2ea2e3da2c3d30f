package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/luca-patrignani/hand-sampler/domain/poker"
	"github.com/luca-patrignani/hand-sampler/sampling"
)

// options is the resolved command line: flags win over the environment,
// which wins over sampling.DefaultConfig.
type options struct {
	cfg     sampling.Config
	report  string
	verbose bool
}

func parseOptions(args []string, getenv func(string) string, out io.Writer) (options, error) {
	opts := options{cfg: sampling.DefaultConfig()}
	if err := applyEnv(&opts, getenv); err != nil {
		return options{}, err
	}

	mode := string(opts.cfg.Mode)
	target := ""
	if opts.cfg.Target != 0 {
		target = opts.cfg.Target.Key()
	}

	fs := flag.NewFlagSet("hand-sampler", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVar(&opts.cfg.Samples, "samples", opts.cfg.Samples, "number of hands to deal")
	fs.IntVar(&opts.cfg.HandSize, "size", opts.cfg.HandSize, "cards per hand")
	fs.IntVar(&opts.cfg.Workers, "workers", opts.cfg.Workers, "goroutines sharing the trials")
	fs.Int64Var(&opts.cfg.Seed, "seed", opts.cfg.Seed, "seed for reproducible runs, 0 shuffles with crypto randomness")
	fs.StringVar(&mode, "mode", mode, "what a hand counts for: all, best or single")
	fs.StringVar(&target, "target", target, "category measured in single mode, e.g. straight (implies -mode single)")
	fs.StringVar(&opts.report, "report", opts.report, "write a JSON report to this path")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	m, err := sampling.ParseMode(mode)
	if err != nil {
		return options{}, err
	}
	opts.cfg.Mode = m
	if target != "" {
		c, ok := poker.ParseCategory(target)
		if !ok {
			return options{}, fmt.Errorf("%w: unknown category %q", sampling.ErrInvalidConfig, target)
		}
		opts.cfg.Target = c
		opts.cfg.Mode = sampling.ModeSingle
	}
	return opts, opts.cfg.Validate()
}

func applyEnv(opts *options, getenv func(string) string) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"HAND_SAMPLES", &opts.cfg.Samples},
		{"HAND_SIZE", &opts.cfg.HandSize},
		{"HAND_WORKERS", &opts.cfg.Workers},
	}
	for _, e := range ints {
		v := strings.TrimSpace(getenv(e.key))
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", e.key, err)
		}
		*e.dst = n
	}
	if v := strings.TrimSpace(getenv("HAND_SEED")); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("HAND_SEED: %w", err)
		}
		opts.cfg.Seed = seed
	}
	if v := strings.TrimSpace(getenv("HAND_MODE")); v != "" {
		opts.cfg.Mode = sampling.Mode(v)
	}
	if v := strings.TrimSpace(getenv("HAND_TARGET")); v != "" {
		c, ok := poker.ParseCategory(v)
		if !ok {
			return fmt.Errorf("HAND_TARGET: unknown category %q", v)
		}
		opts.cfg.Target = c
	}
	opts.report = strings.TrimSpace(getenv("HAND_REPORT"))
	return nil
}
