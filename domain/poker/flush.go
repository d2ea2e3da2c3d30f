package poker

// DetectFlush looks for a suit holding at least five cards. Suits are
// tried in suit order (Spades, Hearts, Clubs, Diamonds), so when a large
// hand holds two flushes the first suit in that order is reported. The
// evidence is the five highest cards of the suit, Ace high, descending.
func DetectFlush(h Hand) (Match, bool) {
	mustClassify(h)

	buckets := h.SuitBuckets()
	for _, s := range h.SuitsPresent() {
		bucket := buckets[s]
		if bucket.Len() < 5 {
			continue
		}
		bucket.SortByValueDesc()
		return newMatch(h, Flush, bucket.Cards()[:5]), true
	}
	return Match{}, false
}
