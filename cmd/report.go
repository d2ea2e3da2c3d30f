package main

import (
	"encoding/json"
	"os"

	"github.com/luca-patrignani/hand-sampler/sampling"
)

type runReport struct {
	Samples    int         `json:"samples"`
	HandSize   int         `json:"hand_size"`
	Workers    int         `json:"workers"`
	Seed       int64       `json:"seed,omitempty"`
	Mode       string      `json:"mode"`
	Target     string      `json:"target,omitempty"`
	Empty      int         `json:"empty"`
	ElapsedMS  int64       `json:"elapsed_ms"`
	Categories []reportRow `json:"categories"`
}

type reportRow struct {
	Category string  `json:"category"`
	Hits     int     `json:"hits"`
	Percent  float64 `json:"percent"`
}

func buildRunReport(cfg sampling.Config, res sampling.Result) runReport {
	report := runReport{
		Samples:   res.Samples,
		HandSize:  res.HandSize,
		Workers:   cfg.Workers,
		Seed:      cfg.Seed,
		Mode:      string(res.Mode),
		Empty:     res.Empty,
		ElapsedMS: res.Elapsed.Milliseconds(),
	}
	if res.Mode == sampling.ModeSingle {
		report.Target = res.Target.Key()
	}
	rows := res.Rows()
	report.Categories = make([]reportRow, 0, len(rows))
	for _, row := range rows {
		report.Categories = append(report.Categories, reportRow{
			Category: row.Category.Key(),
			Hits:     row.Hits,
			Percent:  row.Percent,
		})
	}
	return report
}

func writeRunReportJSON(path string, report runReport) error {
	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}
