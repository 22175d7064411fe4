package poker

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set"
)

// KickerSequence holds the five tie-break values of a hand, most
// significant first. Its construction depends on the category: grouped
// categories flatten the rank groups (count then rank, both descending),
// everything else is the ranks sorted descending. The wheel straight is
// pinned to [5 4 3 2 1] so it sorts below a six-high straight.
type KickerSequence [5]int32

// Compare orders two sequences lexicographically, index 0 most
// significant. Returns -1, 0 or 1.
func (k KickerSequence) Compare(other KickerSequence) int {
	for i := range k {
		if k[i] != other[i] {
			if k[i] > other[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// EvaluationResult is the outcome of evaluating a 2+4 hand. Two results
// with the same category and kickers are an exact tie (split pot) no
// matter which physical cards back them.
type EvaluationResult struct {
	Category HandCategory
	Kickers  KickerSequence
	// BestFive holds the winning 5-card subset in descending significance,
	// matching the kicker order. Every card is one of the 6 input cards.
	BestFive [5]Card
}

// Score packs (category strength, kickers) into a single opaque int64 that
// sorts the same way CompareResults does. The encoding is not part of any
// contract; compare scores only against scores from this same package.
func (r *EvaluationResult) Score() int64 {
	score := int64(r.Category.Strength())
	for _, k := range r.Kickers {
		score = score<<8 | int64(k)
	}
	return score
}

// IsRoyalFlush reports whether the result is the ace-high straight flush.
func (r *EvaluationResult) IsRoyalFlush() bool {
	return r.Category == StraightFlush && r.Kickers[0] == Ace.Value()
}

// DisplayName is the category name, with the royal flush surfaced as its
// conventional label.
func (r *EvaluationResult) DisplayName() string {
	if r.IsRoyalFlush() {
		return "Royal Flush"
	}
	return r.Category.String()
}

func (r *EvaluationResult) String() string {
	return fmt.Sprintf("%s %s", r.DisplayName(), CardsToString(r.BestFive[:]))
}

// fiveCardSubsets enumerates the six 5-card subsets of the input by
// dropping one card at a time, dropped index ascending. The order is fixed
// so that tie-breaking between equal subsets stays deterministic.
func fiveCardSubsets(cards [6]Card) [6][5]Card {
	var subsets [6][5]Card
	for drop := 0; drop < 6; drop++ {
		idx := 0
		for i, card := range cards {
			if i == drop {
				continue
			}
			subsets[drop][idx] = card
			idx++
		}
	}
	return subsets
}

type rankGroup struct {
	value int32
	count int32
}

// classifyFive maps 5 distinct cards to their category, kicker sequence
// and significance-ordered cards. Exactly one category matches any input;
// the switch below checks the strongest patterns first.
func classifyFive(cards [5]Card) (HandCategory, KickerSequence, [5]Card) {
	isFlush := true
	for i := 1; i < len(cards); i++ {
		if cards[i].Suit != cards[0].Suit {
			isFlush = false
			break
		}
	}

	values := make([]int32, len(cards))
	for i, card := range cards {
		values[i] = card.Rank.Value()
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	allDistinct := true
	for i := 1; i < len(values); i++ {
		if values[i] == values[i-1] {
			allDistinct = false
			break
		}
	}

	isStraight := false
	isWheel := false
	if allDistinct {
		if values[4]-values[0] == 4 {
			isStraight = true
		} else if values[0] == 2 && values[1] == 3 && values[2] == 4 &&
			values[3] == 5 && values[4] == Ace.Value() {
			isStraight = true
			isWheel = true
		}
	}

	counts := make(map[int32]int32, len(values))
	for _, v := range values {
		counts[v]++
	}
	groups := make([]rankGroup, 0, len(counts))
	for v, c := range counts {
		groups = append(groups, rankGroup{value: v, count: c})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].value > groups[j].value
	})

	var category HandCategory
	switch {
	case isFlush && isStraight:
		category = StraightFlush
	case groups[0].count == 4:
		category = FourOfAKind
	case groups[0].count == 3 && groups[1].count == 2:
		category = FullHouse
	case isFlush:
		category = Flush
	case isStraight:
		category = Straight
	case groups[0].count == 3:
		category = ThreeOfAKind
	case groups[0].count == 2 && groups[1].count == 2:
		category = TwoPair
	case groups[0].count == 2:
		category = OnePair
	default:
		category = HighCard
	}

	var kickers KickerSequence
	var bestFive [5]Card
	switch category {
	case FourOfAKind, FullHouse, ThreeOfAKind, TwoPair, OnePair:
		idx := 0
		for _, g := range groups {
			for _, card := range cards {
				if card.Rank.Value() == g.value {
					kickers[idx] = g.value
					bestFive[idx] = card
					idx++
				}
			}
		}
	default:
		sorted := cards
		sort.Slice(sorted[:], func(i, j int) bool { return sorted[i].Rank > sorted[j].Rank })
		if isWheel {
			// The ace plays low: 5 4 3 2 A, with the ace valued 1 in the
			// kicker sequence only.
			for i := 0; i < 4; i++ {
				bestFive[i] = sorted[i+1]
				kickers[i] = bestFive[i].Rank.Value()
			}
			bestFive[4] = sorted[0]
			kickers[4] = 1
		} else {
			for i, card := range sorted {
				bestFive[i] = card
				kickers[i] = card.Rank.Value()
			}
		}
	}

	return category, kickers, bestFive
}

// Evaluate6Cards finds the best 5-card hand from 2 hole cards and 4
// community cards. It validates the card counts and pairwise distinctness
// up front and returns a ValidationError before touching the classifier.
// The function is pure; concurrent calls need no coordination.
func Evaluate6Cards(holeCards []Card, communityCards []Card) (*EvaluationResult, error) {
	if len(holeCards) != 2 || len(communityCards) != 4 {
		return nil, newWrongCardCount(len(holeCards), len(communityCards))
	}

	var all [6]Card
	copy(all[:2], holeCards)
	copy(all[2:], communityCards)

	seen := mapset.NewSet()
	for _, card := range all {
		if !seen.Add(card) {
			return nil, newDuplicateCard(card)
		}
	}

	var best *EvaluationResult
	for _, subset := range fiveCardSubsets(all) {
		category, kickers, bestFive := classifyFive(subset)
		candidate := &EvaluationResult{
			Category: category,
			Kickers:  kickers,
			BestFive: bestFive,
		}
		// Strictly-greater keeps the first subset in enumeration order on
		// an exact tie.
		if best == nil || CompareResults(candidate, best) > 0 {
			best = candidate
		}
	}
	return best, nil
}

// CompareResults implements the total order over results: category
// strength first, then kickers lexicographically. Returns -1 if a is the
// weaker hand, 1 if a is the stronger, and 0 for an exact tie (split pot).
func CompareResults(a *EvaluationResult, b *EvaluationResult) int {
	aStrength, bStrength := a.Category.Strength(), b.Category.Strength()
	if aStrength != bStrength {
		if aStrength > bStrength {
			return 1
		}
		return -1
	}
	return a.Kickers.Compare(b.Kickers)
}

// Beats reports whether r strictly beats other.
func (r *EvaluationResult) Beats(other *EvaluationResult) bool {
	return CompareResults(r, other) > 0
}

// Ties reports whether r and other split the pot.
func (r *EvaluationResult) Ties(other *EvaluationResult) bool {
	return CompareResults(r, other) == 0
}
