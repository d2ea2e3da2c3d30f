// Package poker classifies a hand of playing cards against the poker
// categories: pair, two pair, three of a kind, straight, flush, full
// house, four of a kind and straight flush.
//
// # Core Types
//
// Card: An immutable suit and rank with an Ace-high value (2-14) and an
// Ace-low alternate value (Ace = 1).
//
// Hand: An ordered collection of cards with derived views (frequency
// map, suit buckets, run-length tuples) that every detector queries.
//
// Match: A positive detector result carrying the evidence cards.
//
// # Detection
//
// Each category has a detector, a pure function of the hand that never
// mutates it. Composite categories are derived from value counts and
// suit buckets rather than by removing cards: a full house is a value
// held three times plus a different value held twice, a straight flush
// is a straight found inside a single suit bucket.
//
// Detectors panic on hands smaller than MinHandSize: that is a broken
// card supply, not a recoverable condition. Finding nothing is the
// common case and is reported as (Match{}, false).
//
// # Classification
//
// Classify runs every detector against the same untouched hand and
// returns a membership set, so one hand can hold a pair and a flush at
// once. Best reduces such a set to the single strongest category.
package poker
