package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/yahtzeegame-go/internal/model"
)

type TranslateSuite struct {
	suite.Suite
}

func TestTranslateSuite(t *testing.T) {
	suite.Run(t, new(TranslateSuite))
}

func (s *TranslateSuite) buildCard() *model.Scorecard {
	card := model.NewScorecard("GAME1234", "alice")
	card.UpdatedAt = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	card.SetValue(model.CategoryOnes, model.ScoredNumber(3))
	card.SetValue(model.CategoryTwos, model.ScoredNumber(0))
	card.SetValue(model.CategoryThrees, model.Scratched())
	card.SetValue(model.CategoryThreeOfAKind, model.ScoredNumber(24))
	card.SetValue(model.CategoryFullHouse, model.ScoredFlag(true))
	card.SetValue(model.CategoryYahtzee, model.ScoredFlag(false))
	card.SetValue(model.CategoryChance, model.Scratched())
	card.YahtzeeBonusCount = 2
	return card
}

func (s *TranslateSuite) TestEncodeWritesScoredFields() {
	rec := Encode(s.buildCard())

	s.Require().NotNil(rec.Ones)
	s.Equal(3, *rec.Ones)
	s.Require().NotNil(rec.Twos)
	s.Equal(0, *rec.Twos)
	s.Require().NotNil(rec.ThreeOfAKind)
	s.Equal(24, *rec.ThreeOfAKind)
	s.Require().NotNil(rec.FullHouse)
	s.True(*rec.FullHouse)
	s.Require().NotNil(rec.Yahtzee)
	s.False(*rec.Yahtzee)
	s.Equal(2, rec.YahtzeeBonusCount)
}

func (s *TranslateSuite) TestEncodeClearsScratchedFieldsAndListsThemInOrder() {
	rec := Encode(s.buildCard())

	s.Nil(rec.Threes)
	s.Nil(rec.Chance)
	// Enumeration order, not scratch order
	s.Equal([]string{"threes", "chance"}, rec.ScratchedCategories)
}

func (s *TranslateSuite) TestEncodeLeavesEmptyFieldsNull() {
	rec := Encode(s.buildCard())

	s.Nil(rec.Fours)
	s.Nil(rec.Fives)
	s.Nil(rec.Sixes)
	s.Nil(rec.FourOfAKind)
	s.Nil(rec.SmallStraight)
	s.Nil(rec.LargeStraight)
}

func (s *TranslateSuite) TestRoundTrip() {
	card := s.buildCard()
	s.Equal(card, Decode(Encode(card)))
}

func (s *TranslateSuite) TestRoundTripEmptyCard() {
	card := model.NewScorecard("GAME1234", "bob")
	s.Equal(card, Decode(Encode(card)))
}

func (s *TranslateSuite) TestDecodeScratchedSetWinsOverStaleFieldValue() {
	rec := Encode(s.buildCard())
	// Simulate a stale row where the scratched category still holds a value
	stale := 12
	rec.Threes = &stale

	card := Decode(rec)
	s.True(card.Value(model.CategoryThrees).IsScratched())
}

func (s *TranslateSuite) TestDecodeTreatsNullFieldsAsEmpty() {
	rec := New("GAME1234", "carol", time.Now())

	card := Decode(rec)
	for _, cat := range model.Categories() {
		s.True(card.Value(cat).IsEmpty(), "category %s", cat)
	}
}

func (s *TranslateSuite) TestUnscratchRemovesListEntry() {
	card := s.buildCard()
	card.SetValue(model.CategoryThrees, model.Empty())

	rec := Encode(card)
	s.Equal([]string{"chance"}, rec.ScratchedCategories)
}

func (s *TranslateSuite) TestScratchAddsExactlyOneEntry() {
	card := model.NewScorecard("GAME1234", "dave")
	card.SetValue(model.CategoryYahtzee, model.Scratched())

	rec := Encode(card)
	s.Equal([]string{"yahtzee"}, rec.ScratchedCategories)
	s.Nil(rec.Yahtzee)
}
