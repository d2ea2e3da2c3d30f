package sampling

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/luca-patrignani/hand-sampler/domain/deck"
	"github.com/luca-patrignani/hand-sampler/domain/poker"
)

// Runner deals and classifies random hands.
type Runner struct {
	cfg    Config
	logger *slog.Logger
	// supplierFor returns the card supply owned by one worker.
	supplierFor func(worker int) deck.Supplier
}

// NewRunner validates cfg and returns a Runner. A nil logger discards
// output. By default every worker deals from its own deck, shuffled with
// crypto randomness or, when cfg.Seed is set, with the seed plus the
// worker index.
func NewRunner(cfg Config, logger *slog.Logger, opts ...runnerOption) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := Runner{cfg: cfg, logger: logger, supplierFor: defaultSuppliers(cfg.Seed)}
	for _, opt := range opts {
		r = opt(r)
	}
	return &r, nil
}

func defaultSuppliers(seed int64) func(worker int) deck.Supplier {
	return func(worker int) deck.Supplier {
		if seed == 0 {
			return deck.NewSupplier(deck.NewCryptoShuffler())
		}
		return deck.NewSupplier(deck.NewSeededShuffler(seed + int64(worker)))
	}
}

// Run executes Config.Samples trials. Trials are split over the workers
// up front; each worker owns its supply and tally, and tallies are
// merged once every worker is done. A cancelled ctx stops the run
// between trials and its error is returned.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	workers := min(r.cfg.Workers, r.cfg.Samples)
	r.logger.Info("sampling started",
		"samples", r.cfg.Samples,
		"hand_size", r.cfg.HandSize,
		"workers", workers,
		"mode", r.cfg.Mode,
		"seeded", r.cfg.Seed != 0,
	)

	tallies := make([]tally, workers)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		trials := share(r.cfg.Samples, workers, i)
		g.Go(func() error {
			t, err := r.work(ctx, r.supplierFor(i), trials)
			if err != nil {
				return fmt.Errorf("worker %d: %w", i, err)
			}
			tallies[i] = t
			r.logger.Debug("worker done", "worker", i, "trials", trials)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		r.logger.Error("sampling failed", "error", err)
		return Result{}, err
	}

	var total tally
	for _, t := range tallies {
		total.merge(t)
	}
	res := Result{
		Samples:  total.trials,
		HandSize: r.cfg.HandSize,
		Mode:     r.cfg.Mode,
		Target:   r.cfg.Target,
		Counts:   make(map[poker.Category]int),
		Empty:    total.empty,
		Elapsed:  time.Since(start),
	}
	for _, c := range poker.Categories() {
		if n := total.hits[c]; n > 0 {
			res.Counts[c] = n
		}
	}
	r.logger.Info("sampling complete", "samples", res.Samples, "elapsed", res.Elapsed)
	return res, nil
}

func (r *Runner) work(ctx context.Context, s deck.Supplier, trials int) (tally, error) {
	var t tally
	for n := 0; n < trials; n++ {
		if err := ctx.Err(); err != nil {
			return t, err
		}
		h := poker.NewHand(r.cfg.HandSize)
		if err := deck.Fill(s, &h); err != nil {
			return t, err
		}
		t.record(r.count(h))
	}
	return t, nil
}

// count returns the categories a single trial adds to.
func (r *Runner) count(h poker.Hand) []poker.Category {
	switch r.cfg.Mode {
	case ModeBest:
		if c, ok := poker.Best(poker.Classify(h)); ok {
			return []poker.Category{c}
		}
		return nil
	case ModeSingle:
		if _, ok := poker.Detect(h, r.cfg.Target); ok {
			return []poker.Category{r.cfg.Target}
		}
		return nil
	default:
		return poker.Classify(h).Categories()
	}
}

func (t *tally) record(hits []poker.Category) {
	t.trials++
	if len(hits) == 0 {
		t.empty++
		return
	}
	for _, c := range hits {
		t.hits[c]++
	}
}

// share returns how many of total trials worker i runs when they are
// split as evenly as possible over n workers.
func share(total, n, i int) int {
	s := total / n
	if i < total%n {
		s++
	}
	return s
}
