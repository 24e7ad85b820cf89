// Bootstrap tool for the Postgres reference schema: league teams, rosters,
// and the betting-line history the scraper appends to. Safe to rerun.
package main

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/lib/pq"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS teams (
		id    SERIAL PRIMARY KEY,
		name  TEXT NOT NULL UNIQUE,
		abbr  TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS players (
		id        SERIAL PRIMARY KEY,
		name      TEXT NOT NULL UNIQUE,
		team_id   INTEGER REFERENCES teams(id)
	)`,
	`CREATE TABLE IF NOT EXISTS prop_line_history (
		id         BIGSERIAL PRIMARY KEY,
		player     TEXT NOT NULL,
		team_abbr  TEXT NOT NULL,
		scope      TEXT NOT NULL,
		line       DOUBLE PRECISION NOT NULL,
		scraped_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_prop_line_history_player
		ON prop_line_history (player, scraped_at DESC)`,
}

func main() {
	url := os.Getenv("POSTGRES_URL")
	if url == "" {
		log.Fatal("POSTGRES_URL is required")
	}

	db, err := sql.Open("postgres", url)
	if err != nil {
		log.Fatalf("open: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ping: %v", err)
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("exec failed: %v\nstatement: %s", err, stmt)
		}
	}
	log.Println("reference schema ready")
}
