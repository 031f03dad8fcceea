package tournament

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeScore = errors.New("scores must be non-negative")
	ErrTiedScore     = errors.New("equal scores are not allowed, a match needs a winner")
)

// DecideWinner validates an entered score pair and returns the winning slot,
// 1 or 2. Equal scores are rejected as invalid input; there is no tie-break.
func DecideWinner(score1, score2 int) (int, error) {
	if score1 < 0 || score2 < 0 {
		return 0, ErrNegativeScore
	}
	if score1 == score2 {
		return 0, ErrTiedScore
	}
	if score1 > score2 {
		return 1, nil
	}
	return 2, nil
}

// WinnerSlot is the team slot the winner advances into, decided by the
// parity of the downstream round: odd rounds fill slot 1, even rounds
// slot 2. This parity keeps bracket seeding symmetric.
func WinnerSlot(downstreamRound int) int {
	if downstreamRound%2 == 1 {
		return 1
	}
	return 2
}

// FindDownstream returns the match the completed match's winner link points
// at, or nil when the match is the final or the link target is not in the
// set. The loser link is an extension point for double elimination and is
// never followed here.
func FindDownstream(completed *Match, matches []Match) *Match {
	if completed.NextMatchWinnerID == nil {
		return nil
	}
	for i := range matches {
		if matches[i].ID == *completed.NextMatchWinnerID {
			return &matches[i]
		}
	}
	return nil
}

// MaxWinnerRound is the final's round number, the highest round among
// winner-bracket matches. Zero when the bracket is empty.
func MaxWinnerRound(matches []Match) int {
	max := 0
	for _, m := range matches {
		if m.Bracket == BracketWinner && m.Round > max {
			max = m.Round
		}
	}
	return max
}

// RoundLabel names a round for display: the last round is the Final, the
// one before it the Semi-final, everything earlier Round N.
func RoundLabel(round, maxRound int) string {
	switch {
	case round == maxRound:
		return "Final"
	case round == maxRound-1:
		return "Semi-final"
	default:
		return fmt.Sprintf("Round %d", round)
	}
}

// Labeled attaches display labels to a bracket in place and returns it.
func Labeled(matches []Match) []Match {
	maxRound := MaxWinnerRound(matches)
	for i := range matches {
		matches[i].Label = RoundLabel(matches[i].Round, maxRound)
	}
	return matches
}
