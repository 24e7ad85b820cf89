package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/logic"
	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/models"
)

func testHandler() *Handler {
	return &Handler{
		logger:    zap.NewNop().Sugar(),
		validator: validator.New(),
	}
}

func TestGetTeamSummaries(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		mockFunc       func(ctx context.Context, team string, mode models.Gamemode) ([]models.TeamSummary, error)
		expectedStatus int
	}{
		{
			name:  "Success",
			query: "",
			mockFunc: func(ctx context.Context, team string, mode models.Gamemode) ([]models.TeamSummary, error) {
				return []models.TeamSummary{{Team: "LA Thieves", Gamemode: models.Hardpoint, MapName: "Karachi"}}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "Filters Forwarded",
			query: "?team=LA+Thieves&mode=Hardpoint",
			mockFunc: func(ctx context.Context, team string, mode models.Gamemode) ([]models.TeamSummary, error) {
				if team != "LA Thieves" || mode != models.Hardpoint {
					return nil, context.Canceled
				}
				return nil, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown Mode",
			query:          "?mode=Domination",
			mockFunc:       nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "No Snapshot Yet",
			query: "",
			mockFunc: func(ctx context.Context, team string, mode models.Gamemode) ([]models.TeamSummary, error) {
				return nil, logic.ErrNoSnapshot
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testHandler()
			h.teamStats = &MockTeamStatsService{SummariesFunc: tt.mockFunc}

			req := httptest.NewRequest("GET", "/api/v1/teams/summaries"+tt.query, nil)
			w := httptest.NewRecorder()
			h.GetTeamSummaries(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %v, want %v", w.Code, tt.expectedStatus)
			}
		})
	}
}

func TestGetHeadToHead(t *testing.T) {
	tests := []struct {
		name           string
		query          url.Values
		expectedStatus int
		wantRecord     string
	}{
		{
			name: "Map Level Default",
			query: url.Values{
				"team":     {"LA Thieves"},
				"opponent": {"Atlanta FaZe"},
			},
			expectedStatus: http.StatusOK,
			wantRecord:     "3 - 1",
		},
		{
			name: "Series Level",
			query: url.Values{
				"team":     {"LA Thieves"},
				"opponent": {"Atlanta FaZe"},
				"level":    {"series"},
			},
			expectedStatus: http.StatusOK,
			wantRecord:     "2 - 0",
		},
		{
			name: "Missing Opponent",
			query: url.Values{
				"team": {"LA Thieves"},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Bad Level",
			query: url.Values{
				"team":     {"LA Thieves"},
				"opponent": {"Atlanta FaZe"},
				"level":    {"career"},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Map Without Mode",
			query: url.Values{
				"team":     {"LA Thieves"},
				"opponent": {"Atlanta FaZe"},
				"map":      {"Karachi"},
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testHandler()
			h.teamStats = &MockTeamStatsService{
				MapRecordFunc: func(ctx context.Context, team, opponent string, mode models.Gamemode, mapName string) (string, error) {
					return "3 - 1", nil
				},
				SeriesRecordFunc: func(ctx context.Context, team, opponent string) (string, error) {
					return "2 - 0", nil
				},
			}

			req := httptest.NewRequest("GET", "/api/v1/teams/h2h?"+tt.query.Encode(), nil)
			w := httptest.NewRecorder()
			h.GetHeadToHead(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("status = %v, want %v (body %s)", w.Code, tt.expectedStatus, w.Body.String())
			}
			if tt.wantRecord == "" {
				return
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("bad response body: %v", err)
			}
			if body["record"] != tt.wantRecord {
				t.Errorf("record = %q, want %q", body["record"], tt.wantRecord)
			}
		})
	}
}

func TestGetTeamStreak(t *testing.T) {
	h := testHandler()
	h.streaks = &MockStreakService{
		TeamStreakFunc: func(ctx context.Context, team string, mode models.Gamemode, mapName string) (int, error) {
			if team != "LA Thieves" {
				t.Errorf("team = %q, want LA Thieves", team)
			}
			return -2, nil
		},
	}

	r := chi.NewRouter()
	r.Get("/api/v1/teams/{team}/streak", h.GetTeamStreak)

	req := httptest.NewRequest("GET", "/api/v1/teams/LA%20Thieves/streak", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %v, want 200", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body["streak"] != float64(-2) {
		t.Errorf("streak = %v, want -2", body["streak"])
	}
}
