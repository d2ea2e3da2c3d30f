package sampling

import (
	"time"

	"github.com/luca-patrignani/hand-sampler/domain/poker"
)

// Result is the merged tally of a run.
type Result struct {
	Samples  int
	HandSize int
	Mode     Mode
	Target   poker.Category
	// Counts holds the hits per category. A trial can add to several
	// categories in ModeAll.
	Counts map[poker.Category]int
	// Empty is the number of trials that matched nothing counted.
	Empty   int
	Elapsed time.Duration
}

// Row is one line of a report.
type Row struct {
	Category poker.Category
	Hits     int
	Percent  float64
}

// Percent returns the share of trials that hit c, as a percentage.
func (r Result) Percent(c poker.Category) float64 {
	if r.Samples == 0 {
		return 0
	}
	return float64(r.Counts[c]) / float64(r.Samples) * 100
}

// Rows lists the measured categories strongest first, including those
// that were never hit.
func (r Result) Rows() []Row {
	cats := poker.Categories()
	if r.Mode == ModeSingle {
		cats = []poker.Category{r.Target}
	}
	rows := make([]Row, 0, len(cats))
	for i := len(cats) - 1; i >= 0; i-- {
		c := cats[i]
		rows = append(rows, Row{Category: c, Hits: r.Counts[c], Percent: r.Percent(c)})
	}
	return rows
}

// tally is the private count of one worker.
type tally struct {
	hits   [poker.StraightFlush + 1]int
	empty  int
	trials int
}

func (t *tally) merge(o tally) {
	for i := range t.hits {
		t.hits[i] += o.hits[i]
	}
	t.empty += o.empty
	t.trials += o.trials
}
