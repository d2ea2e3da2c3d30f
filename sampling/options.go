package sampling

import "github.com/luca-patrignani/hand-sampler/domain/deck"

type runnerOption func(Runner) Runner

// WithSuppliers replaces the card supply of every worker. newSupplier is
// called once per worker with its index and must not share state
// between workers.
func WithSuppliers(newSupplier func(worker int) deck.Supplier) runnerOption {
	return func(r Runner) Runner {
		r.supplierFor = newSupplier
		return r
	}
}
