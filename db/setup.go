package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id SERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		team_id TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE TABLE IF NOT EXISTS teams (
		team_id TEXT PRIMARY KEY,
		user_id INT NOT NULL UNIQUE REFERENCES users (user_id),
		name TEXT NOT NULL,
		budget BIGINT NOT NULL CHECK (budget >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE TABLE IF NOT EXISTS players (
		player_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		position TEXT NOT NULL CHECK (position IN ('Goalkeeper', 'Defender', 'Midfielder', 'Attacker')),
		team_id TEXT NOT NULL REFERENCES teams (team_id),
		value BIGINT NOT NULL CHECK (value >= 0),
		is_on_transfer_list BOOLEAN NOT NULL DEFAULT FALSE,
		asking_price BIGINT CHECK (asking_price >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_players_team ON players (team_id);`,
	// Partial index keeps transfer-market price scans off unlisted players.
	`CREATE INDEX IF NOT EXISTS idx_players_transfer_list ON players (asking_price) WHERE is_on_transfer_list;`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id SERIAL PRIMARY KEY,
		user_id INT NOT NULL REFERENCES users (user_id),
		description TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'unseen',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
}

func Open(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

// Setup creates the schema. Every statement is idempotent so it runs on
// every startup.
func Setup(gdb *gorm.DB) error {
	for _, stmt := range schema {
		if err := gdb.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
