package tournament

import "time"

// Tournament is one row of campeonatos. Registration is open on every civil
// date from StartDate through EndDate, both inclusive.
type Tournament struct {
	ID            string    `db:"id" json:"id"`
	Name          string    `db:"nome" json:"name"`
	ArenaID       string    `db:"arena_id" json:"arena_id"`
	OwnerID       string    `db:"owner_id" json:"owner_id"`
	StartDate     string    `db:"data_inicio" json:"start_date"`
	EndDate       string    `db:"data_fim" json:"end_date"`
	Status        string    `db:"status" json:"status"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	// RegistrationOpen is derived at read time, never stored.
	RegistrationOpen bool `db:"-" json:"registration_open"`
}

// Category is one row of categorias_campeonatos; it caps team slots and owns
// a bracket once the draw has run.
type Category struct {
	ID           string `db:"id" json:"id"`
	TournamentID string `db:"campeonato_id" json:"tournament_id"`
	Name         string `db:"nome" json:"name"`
	MaxTeams     int    `db:"max_duplas" json:"max_teams"`
	DrawDone     bool   `db:"sorteio_realizado" json:"draw_done"`
}

// Match statuses.
const (
	MatchPending   = "pending"
	MatchCompleted = "completed"
)

// Bracket sides. The loser side is carried by the schema for double
// elimination; nothing here populates it yet.
const (
	BracketWinner = "winner"
	BracketLoser  = "loser"
)

// Match is one row of tournament_matches, team names joined in by the
// listing procedure. Slots and scores stay nil until populated; the forward
// links say where the winner and, optionally, the loser advance to.
type Match struct {
	ID                string  `db:"id" json:"id"`
	CategoryID        string  `db:"categoria_id" json:"category_id"`
	Round             int     `db:"round" json:"round"`
	MatchNumber       int     `db:"match_number" json:"match_number"`
	Bracket           string  `db:"bracket" json:"bracket"`
	Team1ID           *string `db:"team1_id" json:"team1_id,omitempty"`
	Team2ID           *string `db:"team2_id" json:"team2_id,omitempty"`
	Team1Name         *string `db:"team1_name" json:"team1_name,omitempty"`
	Team2Name         *string `db:"team2_name" json:"team2_name,omitempty"`
	Score1            *int    `db:"score1" json:"score1,omitempty"`
	Score2            *int    `db:"score2" json:"score2,omitempty"`
	WinnerID          *string `db:"winner_id" json:"winner_id,omitempty"`
	Status            string  `db:"status" json:"status"`
	NextMatchWinnerID *string `db:"next_match_winner_id" json:"next_match_winner_id,omitempty"`
	NextMatchLoserID  *string `db:"next_match_loser_id" json:"next_match_loser_id,omitempty"`
	Label             string  `db:"-" json:"label"`
}

type EnterScoreRequest struct {
	Score1 *int `json:"score1" binding:"required"`
	Score2 *int `json:"score2" binding:"required"`
}
