package record

import "github.com/mcoot/yahtzeegame-go/internal/model"

// Encode converts a domain scorecard to its flat persisted form.
// Scratched categories clear their value field and are listed in
// scratched_categories in category enumeration order; empty categories
// leave their field null. The translation is a lossless round trip with
// Decode for any card with unambiguous per-category state.
func Encode(card *model.Scorecard) *ScoreRecord {
	rec := &ScoreRecord{
		GameID:              card.GameID,
		PlayerName:          card.PlayerName,
		YahtzeeBonusCount:   card.YahtzeeBonusCount,
		ScratchedCategories: []string{},
		UpdatedAt:           card.UpdatedAt,
	}

	for _, cat := range model.Categories() {
		v := card.Value(cat)
		rec.setCategoryField(cat, v)
		if v.IsScratched() {
			rec.ScratchedCategories = append(rec.ScratchedCategories, string(cat))
		}
	}

	return rec
}

// Decode converts a persisted score row back to the domain scorecard.
// Membership in the scratched-categories list is the authoritative
// scratch signal: a scratched category decodes as scratched even if a
// stale value is still stored in its own field.
func Decode(rec *ScoreRecord) *model.Scorecard {
	scratched := make(map[model.Category]bool, len(rec.ScratchedCategories))
	for _, name := range rec.ScratchedCategories {
		scratched[model.Category(name)] = true
	}

	card := model.NewScorecard(rec.GameID, rec.PlayerName)
	card.YahtzeeBonusCount = rec.YahtzeeBonusCount
	card.UpdatedAt = rec.UpdatedAt

	for _, cat := range model.Categories() {
		if scratched[cat] {
			card.SetValue(cat, model.Scratched())
			continue
		}
		card.SetValue(cat, rec.categoryField(cat))
	}

	return card
}
