package store

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/models"
)

// linesKey is the Redis hash the PrizePicks scraper maintains. Fields are
// "<player>|<scope>", values "<team_abbr>|<line>".
const linesKey = "prizepicks:current_lines"

// RedisClient defines the interface for the Redis client.
type RedisClient interface {
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

// LineStore reads the current betting-line snapshot written by the
// external scraper. The snapshot is treated as read-only input; line
// plausibility is not validated here, only shape.
type LineStore struct {
	rdb RedisClient
}

func NewLineStore(rdb RedisClient) *LineStore {
	return &LineStore{rdb: rdb}
}

func (s *LineStore) Snapshot(ctx context.Context) ([]models.PropLine, error) {
	fields, err := s.rdb.HGetAll(ctx, linesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("lines snapshot failed: %w", err)
	}

	lines := make([]models.PropLine, 0, len(fields))
	for field, value := range fields {
		line, err := parseLine(field, value)
		if err != nil {
			return nil, fmt.Errorf("malformed line entry %q: %w", field, err)
		}
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Player != lines[j].Player {
			return lines[i].Player < lines[j].Player
		}
		return lines[i].Scope < lines[j].Scope
	})
	return lines, nil
}

func parseLine(field, value string) (models.PropLine, error) {
	name, scope, ok := strings.Cut(field, "|")
	if !ok {
		return models.PropLine{}, fmt.Errorf("field is not player|scope")
	}
	abbr, raw, ok := strings.Cut(value, "|")
	if !ok {
		return models.PropLine{}, fmt.Errorf("value is not team_abbr|line")
	}
	line, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.PropLine{}, fmt.Errorf("bad line value %q: %w", raw, err)
	}
	return models.PropLine{
		Player:   name,
		TeamAbbr: abbr,
		Scope:    scope,
		Line:     line,
	}, nil
}
