package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/models"
)

// PgPool defines the interface for the PostgreSQL connection pool.
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ReferenceStore serves league reference data (teams and abbreviations)
// from Postgres. The team list backs the dense cross-product in the team
// summary table, so teams with no games yet still appear.
type ReferenceStore struct {
	pg PgPool
}

func NewReferenceStore(pg PgPool) *ReferenceStore {
	return &ReferenceStore{pg: pg}
}

func (s *ReferenceStore) ListTeams(ctx context.Context) ([]models.Team, error) {
	rows, err := s.pg.Query(ctx, "SELECT name, abbr FROM teams ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("teams query failed: %w", err)
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.Name, &t.Abbr); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("team row iteration failed: %w", err)
	}
	return teams, nil
}

// ResolveAbbr maps a team abbreviation to the full team name.
func (s *ReferenceStore) ResolveAbbr(ctx context.Context, abbr string) (string, error) {
	var name string
	err := s.pg.QueryRow(ctx, "SELECT name FROM teams WHERE abbr = $1", abbr).Scan(&name)
	if err != nil {
		return "", fmt.Errorf("team not found by abbreviation %q: %w", abbr, err)
	}
	return name, nil
}
