package poker

// StraightRun scans the hand for five cards of consecutive values.
//
// A working copy is sorted by value descending and every repeated value
// is set aside, so 3,3,4 is read as 3,4. The run-length tuples of what
// remains are scanned five at a time from the high end; a window matches
// when each tuple is exactly one below the previous. If nothing matches
// and an Ace is held, the scan is repeated with the Ace counted as 1,
// which is the only way 5-4-3-2-A is found.
//
// run is ordered by the value ordering that matched, highest first (the
// wheel comes back as 5,4,3,2,A). leftover holds the duplicates set aside
// by the last pass, whether or not a run was found; they are never part
// of run.
func StraightRun(h Hand) (run, leftover []Card, ok bool) {
	for _, lowAce := range []bool{false, true} {
		if lowAce && !h.HasAce() {
			break
		}
		distinct, dups := h.SplitDuplicates(lowAce)
		leftover = dups.cards

		// distinct holds one card per value, so runs[i] describes distinct.cards[i].
		runs := runsOf(distinct.cards, lowAce)
		for i := 0; i+5 <= len(runs); i++ {
			if consecutive(runs[i : i+5]) {
				return append([]Card(nil), distinct.cards[i:i+5]...), leftover, true
			}
		}
	}
	return nil, leftover, false
}

func consecutive(window []Run) bool {
	for i := 1; i < len(window); i++ {
		if window[i-1].Value-window[i].Value != 1 {
			return false
		}
	}
	return true
}

// DetectStraight reports the highest straight held. Duplicate values
// inside the span do not break it: 2,3,3,4,4,4,5,6 is a straight 6 down
// to 2.
func DetectStraight(h Hand) (Match, bool) {
	mustClassify(h)

	run, _, ok := StraightRun(h)
	if !ok {
		return Match{}, false
	}
	return newMatch(h, Straight, run), true
}

// DetectStraightFlush runs the straight scan inside every suit holding
// at least five cards, in suit order. The first suit with a straight
// wins and its run is the evidence, which is suit-pure by construction.
// Suits with five or more cards but no internal straight are skipped.
func DetectStraightFlush(h Hand) (Match, bool) {
	mustClassify(h)

	buckets := h.SuitBuckets()
	for _, s := range h.SuitsPresent() {
		bucket := buckets[s]
		if bucket.Len() < 5 {
			continue
		}
		if run, _, ok := StraightRun(bucket); ok {
			return newMatch(h, StraightFlush, run), true
		}
	}
	return Match{}, false
}
