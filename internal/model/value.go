package model

type valueState int

const (
	valueEmpty valueState = iota
	valueScratched
	valueScored
)

// CategoryValue is the tri-state cell for a single category: empty
// (not yet played), scratched (forfeited, contributes zero), or scored.
// A scored cell carries either a numeric dice total or an achieved flag,
// depending on the category's representation.
//
// The zero value is an empty cell. Values are comparable with ==.
type CategoryValue struct {
	state  valueState
	number int
	flag   bool
}

// Empty returns a not-yet-played cell
func Empty() CategoryValue {
	return CategoryValue{}
}

// Scratched returns a forfeited cell
func Scratched() CategoryValue {
	return CategoryValue{state: valueScratched}
}

// ScoredNumber returns a cell scored with a raw dice total
func ScoredNumber(n int) CategoryValue {
	return CategoryValue{state: valueScored, number: n}
}

// ScoredFlag returns a cell scored as achieved or missed
func ScoredFlag(achieved bool) CategoryValue {
	return CategoryValue{state: valueScored, flag: achieved}
}

// IsEmpty returns true if the cell has not been played
func (v CategoryValue) IsEmpty() bool {
	return v.state == valueEmpty
}

// IsScratched returns true if the cell was forfeited
func (v CategoryValue) IsScratched() bool {
	return v.state == valueScratched
}

// IsScored returns true if the cell holds a score
func (v CategoryValue) IsScored() bool {
	return v.state == valueScored
}

// Number returns the numeric dice total of a scored cell (0 otherwise)
func (v CategoryValue) Number() int {
	return v.number
}

// Flag returns the achieved flag of a scored cell (false otherwise)
func (v CategoryValue) Flag() bool {
	return v.flag
}
