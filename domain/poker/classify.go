package poker

import "strings"

// Detector is a category detector: a pure function of the hand.
type Detector func(Hand) (Match, bool)

var detectors = map[Category]Detector{
	Pair:          DetectPair,
	TwoPair:       DetectTwoPair,
	ThreeOfAKind:  DetectThreeOfAKind,
	Straight:      DetectStraight,
	Flush:         DetectFlush,
	FullHouse:     DetectFullHouse,
	FourOfAKind:   DetectFourOfAKind,
	StraightFlush: DetectStraightFlush,
}

// CategorySet is the set of categories present in a hand.
type CategorySet uint16

// Add returns the set with c included.
func (s CategorySet) Add(c Category) CategorySet {
	return s | 1<<c
}

// Has reports whether c is in the set.
func (s CategorySet) Has(c Category) bool {
	return s&(1<<c) != 0
}

// Len returns the number of categories in the set.
func (s CategorySet) Len() int {
	n := 0
	for _, c := range Categories() {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// Categories returns the members, strongest first.
func (s CategorySet) Categories() []Category {
	all := Categories()
	out := make([]Category, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		if s.Has(all[i]) {
			out = append(out, all[i])
		}
	}
	return out
}

func (s CategorySet) String() string {
	members := s.Categories()
	if len(members) == 0 {
		return "{}"
	}
	names := make([]string, 0, len(members))
	for _, c := range members {
		names = append(names, c.String())
	}
	return "{" + strings.Join(names, ", ") + "}"
}

// Detect runs the detector of a single category.
func Detect(h Hand, c Category) (Match, bool) {
	d, ok := detectors[c]
	if !ok {
		return Match{}, false
	}
	return d(h)
}

// Matches runs every detector against its own copy of the untouched
// hand and returns the evidence of every category found, strongest
// first. Detectors do not share or consume cards, so overlapping
// evidence (a pair inside a flush) is expected.
func Matches(h Hand) []Match {
	mustClassify(h)

	var out []Match
	all := Categories()
	for i := len(all) - 1; i >= 0; i-- {
		if m, ok := detectors[all[i]](h.Clone()); ok {
			out = append(out, m)
		}
	}
	return out
}

// Classify returns every category present in the hand. It is a
// membership set, not a best-hand selection: see Best for that.
func Classify(h Hand) CategorySet {
	var set CategorySet
	for _, m := range Matches(h) {
		set = set.Add(m.Category)
	}
	return set
}

// Best returns the strongest category of the set, following the usual
// order straight flush > four of a kind > full house > flush > straight
// > three of a kind > two pair > pair.
func Best(set CategorySet) (Category, bool) {
	members := set.Categories()
	if len(members) == 0 {
		return 0, false
	}
	return members[0], true
}
