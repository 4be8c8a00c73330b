// Package scoring computes section and grand totals for a scorecard.
// All functions are pure: they never mutate the card and have no error
// conditions. Malformed values (negative dice totals) are rejected at
// the edit boundary before they can reach a card.
package scoring

import "github.com/mcoot/yahtzeegame-go/internal/model"

const (
	// UpperBonusThreshold is the subtotal at which the upper bonus applies
	UpperBonusThreshold = 63
	// UpperBonus is the flat bonus for reaching the threshold
	UpperBonus = 35
)

// UpperTotal is the upper-section result
type UpperTotal struct {
	Subtotal int
	Bonus    int
	Total    int
}

// Total combines both sections
type Total struct {
	Upper UpperTotal
	Lower int
	Grand int
}

// ScoreUpper totals the six upper categories. Each scored cell holds the
// count of dice showing that face and contributes count times face value;
// empty and scratched cells contribute zero.
func ScoreUpper(card *model.Scorecard) UpperTotal {
	subtotal := 0
	for _, cat := range model.UpperCategories() {
		v := card.Value(cat)
		if v.IsScored() {
			subtotal += v.Number() * cat.FaceValue()
		}
	}

	bonus := 0
	if subtotal >= UpperBonusThreshold {
		bonus = UpperBonus
	}

	return UpperTotal{
		Subtotal: subtotal,
		Bonus:    bonus,
		Total:    subtotal + bonus,
	}
}

// ScoreLower totals the seven lower categories. Achievement-style
// categories pay their fixed amount when achieved; the rest contribute
// their raw dice total. Empty and scratched cells contribute zero.
func ScoreLower(card *model.Scorecard) int {
	total := 0
	for _, cat := range model.LowerCategories() {
		v := card.Value(cat)
		if !v.IsScored() {
			continue
		}
		if payout, ok := cat.FixedPayout(); ok {
			if v.Flag() {
				total += payout
			}
			continue
		}
		total += v.Number()
	}
	return total
}

// ScoreCard computes both sections and the grand total
func ScoreCard(card *model.Scorecard) Total {
	upper := ScoreUpper(card)
	lower := ScoreLower(card)
	return Total{
		Upper: upper,
		Lower: lower,
		Grand: upper.Total + lower,
	}
}
