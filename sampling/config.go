package sampling

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/luca-patrignani/hand-sampler/domain/deck"
	"github.com/luca-patrignani/hand-sampler/domain/poker"
)

// ErrInvalidConfig wraps every configuration error.
var ErrInvalidConfig = errors.New("invalid sampling config")

// Mode selects what a trial counts.
type Mode string

const (
	// ModeAll counts every category present in the hand.
	ModeAll Mode = "all"
	// ModeBest counts only the strongest category of the hand.
	ModeBest Mode = "best"
	// ModeSingle runs the detector of Config.Target alone.
	ModeSingle Mode = "single"
)

// ParseMode accepts "all", "best" and "single".
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeAll, ModeBest, ModeSingle:
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, s)
}

// Config describes a sampling run.
type Config struct {
	// Samples is the number of trials.
	Samples int
	// HandSize is the number of cards dealt per trial.
	HandSize int
	// Workers is the number of goroutines sharing the trials.
	Workers int
	// Seed makes a run reproducible for a fixed Workers. Zero deals
	// from the cryptographic shuffler.
	Seed int64
	Mode Mode
	// Target is the category measured in ModeSingle.
	Target poker.Category
}

// DefaultConfig returns 100000 trials of eight-card hands counting every
// category, spread over GOMAXPROCS workers.
func DefaultConfig() Config {
	return Config{
		Samples:  100_000,
		HandSize: 8,
		Workers:  runtime.GOMAXPROCS(0),
		Mode:     ModeAll,
	}
}

// Validate checks the config before a run.
func (c Config) Validate() error {
	if c.Samples < 1 {
		return fmt.Errorf("%w: samples must be at least 1, got %d", ErrInvalidConfig, c.Samples)
	}
	if c.HandSize < poker.MinHandSize || c.HandSize > deck.Size {
		return fmt.Errorf("%w: hand size must be between %d and %d, got %d", ErrInvalidConfig, poker.MinHandSize, deck.Size, c.HandSize)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if c.Mode == ModeSingle {
		if _, ok := poker.ParseCategory(c.Target.Key()); !ok {
			return fmt.Errorf("%w: single mode needs a target category", ErrInvalidConfig)
		}
	}
	return nil
}
