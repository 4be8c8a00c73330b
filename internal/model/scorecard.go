package model

import "time"

// Scorecard holds the complete set of category values for one player
// within one game. Each session keeps one in-memory Scorecard per player
// it is tracking; the persisted copy is the flat score record.
type Scorecard struct {
	GameID     GameID
	PlayerName string

	// Values holds the tri-state cell for each category. Categories
	// absent from the map are empty.
	Values map[Category]CategoryValue

	// YahtzeeBonusCount tracks bonus yahtzees; it is persisted and
	// synced but does not feed the section totals.
	YahtzeeBonusCount int

	UpdatedAt time.Time
}

// NewScorecard creates a blank card with every category empty
func NewScorecard(gameID GameID, playerName string) *Scorecard {
	return &Scorecard{
		GameID:     gameID,
		PlayerName: playerName,
		Values:     make(map[Category]CategoryValue),
	}
}

// Value returns the cell for a category; unset categories are empty
func (c *Scorecard) Value(cat Category) CategoryValue {
	return c.Values[cat]
}

// SetValue replaces the cell for a category
func (c *Scorecard) SetValue(cat Category, v CategoryValue) {
	if c.Values == nil {
		c.Values = make(map[Category]CategoryValue)
	}
	if v.IsEmpty() {
		delete(c.Values, cat)
		return
	}
	c.Values[cat] = v
}

// Clone returns a deep copy of the card
func (c *Scorecard) Clone() *Scorecard {
	clone := &Scorecard{
		GameID:            c.GameID,
		PlayerName:        c.PlayerName,
		Values:            make(map[Category]CategoryValue, len(c.Values)),
		YahtzeeBonusCount: c.YahtzeeBonusCount,
		UpdatedAt:         c.UpdatedAt,
	}
	for cat, v := range c.Values {
		clone.Values[cat] = v
	}
	return clone
}
