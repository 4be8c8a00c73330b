package model

import "strings"

// Category identifies one of the thirteen scoring slots on a card.
// The string value is the canonical name used in the persisted
// scratched-categories list.
type Category string

const (
	// Upper section
	CategoryOnes   Category = "ones"
	CategoryTwos   Category = "twos"
	CategoryThrees Category = "threes"
	CategoryFours  Category = "fours"
	CategoryFives  Category = "fives"
	CategorySixes  Category = "sixes"

	// Lower section
	CategoryThreeOfAKind  Category = "threeOfAKind"
	CategoryFourOfAKind   Category = "fourOfAKind"
	CategoryFullHouse     Category = "fullHouse"
	CategorySmallStraight Category = "smallStraight"
	CategoryLargeStraight Category = "largeStraight"
	CategoryYahtzee       Category = "yahtzee"
	CategoryChance        Category = "chance"
)

// Fixed payouts for the achievement-style lower categories
const (
	PayoutFullHouse     = 25
	PayoutSmallStraight = 30
	PayoutLargeStraight = 40
	PayoutYahtzee       = 50
)

var upperCategories = []Category{
	CategoryOnes,
	CategoryTwos,
	CategoryThrees,
	CategoryFours,
	CategoryFives,
	CategorySixes,
}

var lowerCategories = []Category{
	CategoryThreeOfAKind,
	CategoryFourOfAKind,
	CategoryFullHouse,
	CategorySmallStraight,
	CategoryLargeStraight,
	CategoryYahtzee,
	CategoryChance,
}

var allCategories = append(append([]Category{}, upperCategories...), lowerCategories...)

// UpperCategories returns the six upper-section categories in enumeration order
func UpperCategories() []Category {
	return upperCategories
}

// LowerCategories returns the seven lower-section categories in enumeration order
func LowerCategories() []Category {
	return lowerCategories
}

// Categories returns all thirteen categories in enumeration order
// (upper section first, then lower)
func Categories() []Category {
	return allCategories
}

// IsUpper returns true for the six pip-counting categories
func (c Category) IsUpper() bool {
	return c.FaceValue() > 0
}

// FaceValue returns the die face an upper category counts (1-6),
// or 0 for lower-section categories
func (c Category) FaceValue() int {
	for i, cat := range upperCategories {
		if cat == c {
			return i + 1
		}
	}
	return 0
}

// FixedPayout returns the constant payout for achievement-style categories.
// The second return is false for categories scored by their raw dice total
// (the upper section, three/four-of-a-kind and chance).
func (c Category) FixedPayout() (int, bool) {
	switch c {
	case CategoryFullHouse:
		return PayoutFullHouse, true
	case CategorySmallStraight:
		return PayoutSmallStraight, true
	case CategoryLargeStraight:
		return PayoutLargeStraight, true
	case CategoryYahtzee:
		return PayoutYahtzee, true
	default:
		return 0, false
	}
}

// IsFlag returns true for categories recorded as an achieved/missed flag
// rather than a numeric dice total
func (c Category) IsFlag() bool {
	_, ok := c.FixedPayout()
	return ok
}

// ParseCategory resolves a user-supplied category name. Both the canonical
// camelCase names and snake_case spellings are accepted, case-insensitively.
func ParseCategory(name string) (Category, error) {
	normalized := normalizeCategoryName(name)
	for _, cat := range allCategories {
		if normalizeCategoryName(string(cat)) == normalized {
			return cat, nil
		}
	}
	return "", ErrInvalidCategory
}

func normalizeCategoryName(name string) string {
	name = strings.ReplaceAll(name, "_", "")
	name = strings.ReplaceAll(name, "-", "")
	return strings.ToLower(strings.TrimSpace(name))
}
