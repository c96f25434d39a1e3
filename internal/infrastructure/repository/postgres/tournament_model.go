package postgres

import (
	"database/sql"
	"time"
)

type tournamentTableModel struct {
	ID             int64      `db:"id"`
	PublicID       string     `db:"public_id"`
	Name           string     `db:"name"`
	Number         int        `db:"number"`
	TotalDates     int        `db:"total_dates"`
	CompletedDates int        `db:"completed_dates"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

type playerTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	Name      string     `db:"name"`
	Alias     string     `db:"alias"`
	PhotoURL  string     `db:"photo_url"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type registrationTableModel struct {
	ID                 int64     `db:"id"`
	TournamentPublicID string    `db:"tournament_public_id"`
	PlayerPublicID     string    `db:"player_public_id"`
	DateNumber         int       `db:"date_number"`
	CreatedAt          time.Time `db:"created_at"`
}

type eliminationTableModel struct {
	ID                 int64          `db:"id"`
	TournamentPublicID string         `db:"tournament_public_id"`
	PlayerPublicID     string         `db:"player_public_id"`
	DateNumber         int            `db:"date_number"`
	Position           int            `db:"position"`
	Points             int            `db:"points"`
	EliminatedBy       sql.NullString `db:"eliminated_by"`
	CreatedAt          time.Time      `db:"created_at"`
}
