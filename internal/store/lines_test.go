package store

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
)

type mockRedis struct {
	fields map[string]string
	err    error
}

func (m *mockRedis) HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd {
	cmd := redis.NewMapStringStringCmd(ctx, "hgetall", key)
	if m.err != nil {
		cmd.SetErr(m.err)
		return cmd
	}
	cmd.SetVal(m.fields)
	return cmd
}

func TestLineStoreSnapshot(t *testing.T) {
	s := NewLineStore(&mockRedis{fields: map[string]string{
		"Simp|Maps 1-3 Kills":  "ATL|64.5",
		"Kenny|Maps 1-3 Kills": "LAT|58.5",
		"Kenny|Map 1 Kills":    "LAT|21.5",
	}})

	lines, err := s.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}

	// Sorted by player, then scope.
	first := lines[0]
	if first.Player != "Kenny" || first.Scope != "Map 1 Kills" {
		t.Errorf("first line = %s / %s, want Kenny / Map 1 Kills", first.Player, first.Scope)
	}
	if first.TeamAbbr != "LAT" || first.Line != 21.5 {
		t.Errorf("first line = %s %v, want LAT 21.5", first.TeamAbbr, first.Line)
	}
	if lines[2].Player != "Simp" || lines[2].Line != 64.5 {
		t.Errorf("last line = %s %v, want Simp 64.5", lines[2].Player, lines[2].Line)
	}
}

func TestLineStoreSnapshotEmpty(t *testing.T) {
	s := NewLineStore(&mockRedis{fields: map[string]string{}})
	lines, err := s.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("lines = %d, want 0", len(lines))
	}
}

func TestLineStoreSnapshotErrors(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		err    error
	}{
		{"redis failure", nil, errors.New("connection refused")},
		{"field missing separator", map[string]string{"Kenny": "LAT|21.5"}, nil},
		{"value missing separator", map[string]string{"Kenny|Map 1 Kills": "21.5"}, nil},
		{"non-numeric line", map[string]string{"Kenny|Map 1 Kills": "LAT|lots"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewLineStore(&mockRedis{fields: tt.fields, err: tt.err})
			if _, err := s.Snapshot(context.Background()); err == nil {
				t.Error("Snapshot() succeeded, want error")
			}
		})
	}
}
