package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CLISuite drives the command tree in-process against a sqlite database,
// the way successive shell invocations would share one
type CLISuite struct {
	suite.Suite

	dbPath      string
	sessionFile string
}

func (s *CLISuite) SetupTest() {
	dir := s.T().TempDir()
	s.dbPath = filepath.Join(dir, "yahtzee.db")
	s.sessionFile = filepath.Join(dir, "session.json")
}

// run executes one CLI invocation and captures stdout
func (s *CLISuite) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--storage", "sqlite",
		"--db", s.dbPath,
		"--session-file", s.sessionFile,
		"--output", "json",
	}, args...)

	old := os.Stdout
	r, w, err := os.Pipe()
	s.Require().NoError(err)
	os.Stdout = w

	root := NewRootCmd()
	root.SetArgs(fullArgs)
	runErr := root.Execute()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String(), runErr
}

func (s *CLISuite) mustRun(args ...string) string {
	out, err := s.run(args...)
	s.Require().NoError(err, "command %v failed: %s", args, out)
	return out
}

func (s *CLISuite) TestCreateSetCard() {
	out := s.mustRun("create", "--name", "alice")

	var created struct {
		GameID string `json:"game_id"`
		Player string `json:"player"`
	}
	s.Require().NoError(json.Unmarshal([]byte(out), &created))
	s.Require().Len(created.GameID, 8)
	s.Require().Equal("alice", created.Player)

	s.mustRun("set", "threes", "9")
	s.mustRun("set", "yahtzee", "true")
	s.mustRun("scratch", "chance")
	out = s.mustRun("card")

	var card struct {
		Card struct {
			Threes              *int     `json:"threes"`
			Yahtzee             *bool    `json:"yahtzee"`
			ScratchedCategories []string `json:"scratched_categories"`
		} `json:"card"`
		Totals struct {
			GrandTotal int `json:"grand_total"`
		} `json:"totals"`
	}
	s.Require().NoError(json.Unmarshal([]byte(out), &card))
	s.Require().NotNil(card.Card.Threes)
	s.Require().Equal(9, *card.Card.Threes)
	s.Require().NotNil(card.Card.Yahtzee)
	s.Require().True(*card.Card.Yahtzee)
	s.Require().Equal([]string{"chance"}, card.Card.ScratchedCategories)
	s.Require().Equal(59, card.Totals.GrandTotal)
}

func (s *CLISuite) TestJoinSeesOtherPlayers() {
	out := s.mustRun("create", "--name", "alice")
	var created struct {
		GameID string `json:"game_id"`
	}
	s.Require().NoError(json.Unmarshal([]byte(out), &created))
	s.mustRun("set", "ones", "3")

	// Second player joins from a different session file
	s.sessionFile = filepath.Join(s.T().TempDir(), "session.json")
	s.mustRun("join", created.GameID, "--name", "bob")
	out = s.mustRun("players")

	var roster struct {
		Players []struct {
			Name string `json:"name"`
		} `json:"players"`
	}
	s.Require().NoError(json.Unmarshal([]byte(out), &roster))
	s.Require().Len(roster.Players, 2)
	s.Require().Equal("alice", roster.Players[0].Name)
	s.Require().Equal("bob", roster.Players[1].Name)
}

func (s *CLISuite) TestResetAndRejoinKeepsScores() {
	out := s.mustRun("create", "--name", "alice")
	var created struct {
		GameID string `json:"game_id"`
	}
	s.Require().NoError(json.Unmarshal([]byte(out), &created))
	s.mustRun("set", "fours", "12")
	s.mustRun("reset")

	// No session, so no card to show
	_, err := s.run("card")
	s.Require().Error(err)

	// Rejoining under the same name picks the saved scores back up
	s.mustRun("join", created.GameID, "--name", "alice")
	out = s.mustRun("card")

	var card struct {
		Card struct {
			Fours *int `json:"fours"`
		} `json:"card"`
	}
	s.Require().NoError(json.Unmarshal([]byte(out), &card))
	s.Require().NotNil(card.Card.Fours)
	s.Require().Equal(12, *card.Card.Fours)
}

func (s *CLISuite) TestJoinUnknownGame() {
	_, err := s.run("join", "NOPE1234", "--name", "bob")
	s.Require().Error(err)
}

func (s *CLISuite) TestHealth() {
	out := s.mustRun("health")
	s.Require().Contains(out, "Storage OK")
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}
