package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mcoot/yahtzeegame-go/internal/model"
	"github.com/mcoot/yahtzeegame-go/internal/record"
	"github.com/mcoot/yahtzeegame-go/internal/scoring"
	"github.com/mcoot/yahtzeegame-go/internal/services/roster"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

// PrintSession outputs the established session
func (o *Output) PrintSession(sess *model.Session, msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{
			"game_id": string(sess.GameID),
			"player":  sess.PlayerName,
		})
		return
	}
	fmt.Printf("%s: %s\n", msg, sess.GameID)
	fmt.Printf("Playing as: %s\n", sess.PlayerName)
}

// cardTotals is the JSON shape of the computed totals
type cardTotals struct {
	UpperSubtotal int `json:"upper_subtotal"`
	UpperBonus    int `json:"upper_bonus"`
	UpperTotal    int `json:"upper_total"`
	LowerTotal    int `json:"lower_total"`
	GrandTotal    int `json:"grand_total"`
}

func totalsOf(card *model.Scorecard) cardTotals {
	t := scoring.ScoreCard(card)
	return cardTotals{
		UpperSubtotal: t.Upper.Subtotal,
		UpperBonus:    t.Upper.Bonus,
		UpperTotal:    t.Upper.Total,
		LowerTotal:    t.Lower,
		GrandTotal:    t.Grand,
	}
}

// PrintCard outputs one scorecard with its totals
func (o *Output) PrintCard(card *model.Scorecard) {
	if o.format == "json" {
		o.printJSON(map[string]any{
			"card":   record.Encode(card),
			"totals": totalsOf(card),
		})
		return
	}
	o.printCardText(card)
}

// PrintPlayers outputs the full roster with every player's card
func (o *Output) PrintPlayers(gameID model.GameID, entries []*roster.Entry) {
	if o.format == "json" {
		players := make([]map[string]any, 0, len(entries))
		for _, entry := range entries {
			players = append(players, map[string]any{
				"name":   entry.Player.PlayerName,
				"card":   record.Encode(entry.Card),
				"totals": totalsOf(entry.Card),
			})
		}
		o.printJSON(map[string]any{
			"game_id": string(gameID),
			"players": players,
		})
		return
	}

	fmt.Printf("Game: %s (%d players)\n", gameID, len(entries))
	for _, entry := range entries {
		fmt.Println()
		o.printCardText(entry.Card)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printCardText(card *model.Scorecard) {
	totals := scoring.ScoreCard(card)

	fmt.Printf("%s\n", card.PlayerName)

	fmt.Println("  Upper section")
	for _, cat := range model.UpperCategories() {
		fmt.Printf("    %-16s %s\n", cat, cellText(cat, card.Value(cat)))
	}
	fmt.Printf("    %-16s %d\n", "subtotal", totals.Upper.Subtotal)
	fmt.Printf("    %-16s %d\n", "bonus", totals.Upper.Bonus)

	fmt.Println("  Lower section")
	for _, cat := range model.LowerCategories() {
		fmt.Printf("    %-16s %s\n", cat, cellText(cat, card.Value(cat)))
	}

	if card.YahtzeeBonusCount > 0 {
		fmt.Printf("  Bonus yahtzees: %d\n", card.YahtzeeBonusCount)
	}
	fmt.Printf("  Grand total: %d\n", totals.Grand)
}

// cellText renders one cell: "-" unplayed, "scratched" forfeited,
// otherwise the dice total or yes/no for achievement categories
func cellText(cat model.Category, v model.CategoryValue) string {
	switch {
	case v.IsEmpty():
		return "-"
	case v.IsScratched():
		return "scratched"
	case cat.IsFlag():
		if v.Flag() {
			return "yes"
		}
		return "no"
	default:
		return fmt.Sprintf("%d", v.Number())
	}
}
