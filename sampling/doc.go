// Package sampling estimates how often each poker category shows up in
// random hands.
//
// A run deals Config.Samples hands of Config.HandSize cards and
// classifies each one. Trials are independent: every worker owns its
// deck and its counts, and counts are only merged once all workers are
// done. What a trial adds to depends on the Mode:
//
//   - ModeAll: every category the hand holds, so percentages do not sum
//     to 100.
//   - ModeBest: the strongest category only.
//   - ModeSingle: one category, found by its own detector.
package sampling
