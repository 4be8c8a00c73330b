// Package record defines the flat persisted form of a scorecard and the
// translation to and from the domain model. The persisted row has one
// nullable column per category plus an ordered scratched-categories list;
// the tri-state domain cells never appear on the wire.
package record

import (
	"time"

	"github.com/mcoot/yahtzeegame-go/internal/model"
)

// ScoreRecord is the persisted score row for one (game, player) pair.
// Nil category fields mean the category is empty or scratched; the
// scratched-categories list disambiguates.
type ScoreRecord struct {
	GameID     model.GameID `json:"game_id"`
	PlayerName string       `json:"player_name"`

	// Upper section
	Ones   *int `json:"ones"`
	Twos   *int `json:"twos"`
	Threes *int `json:"threes"`
	Fours  *int `json:"fours"`
	Fives  *int `json:"fives"`
	Sixes  *int `json:"sixes"`

	// Lower section
	ThreeOfAKind  *int  `json:"three_of_a_kind"`
	FourOfAKind   *int  `json:"four_of_a_kind"`
	FullHouse     *bool `json:"full_house"`
	SmallStraight *bool `json:"small_straight"`
	LargeStraight *bool `json:"large_straight"`
	Yahtzee       *bool `json:"yahtzee"`
	Chance        *int  `json:"chance"`

	YahtzeeBonusCount   int       `json:"yahtzee_bonus_count"`
	ScratchedCategories []string  `json:"scratched_categories"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// New creates an empty score row for a freshly provisioned player
func New(gameID model.GameID, playerName string, now time.Time) *ScoreRecord {
	return &ScoreRecord{
		GameID:              gameID,
		PlayerName:          playerName,
		ScratchedCategories: []string{},
		UpdatedAt:           now,
	}
}

// categoryField returns the persisted cell for a category, ignoring the
// scratched-categories list. Nil fields decode as empty.
func (r *ScoreRecord) categoryField(cat model.Category) model.CategoryValue {
	if cat.IsFlag() {
		if p := r.flagField(cat); p != nil {
			return model.ScoredFlag(*p)
		}
		return model.Empty()
	}
	if p := r.numberField(cat); p != nil {
		return model.ScoredNumber(*p)
	}
	return model.Empty()
}

// setCategoryField writes a scored cell into the matching persisted field.
// Empty and scratched cells clear the field instead.
func (r *ScoreRecord) setCategoryField(cat model.Category, v model.CategoryValue) {
	if !v.IsScored() {
		r.clearField(cat)
		return
	}
	if cat.IsFlag() {
		flag := v.Flag()
		*r.flagFieldRef(cat) = &flag
		return
	}
	n := v.Number()
	*r.numberFieldRef(cat) = &n
}

func (r *ScoreRecord) clearField(cat model.Category) {
	if cat.IsFlag() {
		*r.flagFieldRef(cat) = nil
		return
	}
	*r.numberFieldRef(cat) = nil
}

func (r *ScoreRecord) numberField(cat model.Category) *int {
	return *r.numberFieldRef(cat)
}

func (r *ScoreRecord) flagField(cat model.Category) *bool {
	return *r.flagFieldRef(cat)
}

func (r *ScoreRecord) numberFieldRef(cat model.Category) **int {
	switch cat {
	case model.CategoryOnes:
		return &r.Ones
	case model.CategoryTwos:
		return &r.Twos
	case model.CategoryThrees:
		return &r.Threes
	case model.CategoryFours:
		return &r.Fours
	case model.CategoryFives:
		return &r.Fives
	case model.CategorySixes:
		return &r.Sixes
	case model.CategoryThreeOfAKind:
		return &r.ThreeOfAKind
	case model.CategoryFourOfAKind:
		return &r.FourOfAKind
	case model.CategoryChance:
		return &r.Chance
	default:
		panic("not a numeric category: " + string(cat))
	}
}

func (r *ScoreRecord) flagFieldRef(cat model.Category) **bool {
	switch cat {
	case model.CategoryFullHouse:
		return &r.FullHouse
	case model.CategorySmallStraight:
		return &r.SmallStraight
	case model.CategoryLargeStraight:
		return &r.LargeStraight
	case model.CategoryYahtzee:
		return &r.Yahtzee
	default:
		panic("not a flag category: " + string(cat))
	}
}
