package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/logic"
	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/models"
)

func TestHealth(t *testing.T) {
	h := testHandler()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	h.Health(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %v, want 200", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %v, want ok", body["status"])
	}
}

func TestTriggerRefresh(t *testing.T) {
	tests := []struct {
		name           string
		refreshErr     error
		expectedStatus int
	}{
		{"Success", nil, http.StatusOK},
		{"Load Failure", errors.New("clickhouse unreachable"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testHandler()
			h.refresher = &MockRefresher{
				RefreshFunc: func(ctx context.Context) error { return tt.refreshErr },
				SnapshotFunc: func() *models.Snapshot {
					return &models.Snapshot{ID: "snap-1", LoadedAt: time.Now()}
				},
			}

			req := httptest.NewRequest("POST", "/api/v1/refresh", nil)
			w := httptest.NewRecorder()
			h.TriggerRefresh(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("status = %v, want %v", w.Code, tt.expectedStatus)
			}
			if tt.expectedStatus == http.StatusOK {
				var body map[string]string
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
					t.Fatalf("bad response body: %v", err)
				}
				if body["snapshot"] != "snap-1" {
					t.Errorf("snapshot = %q, want snap-1", body["snapshot"])
				}
			}
		})
	}
}

func TestServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"Warming Up", logic.ErrNoSnapshot, http.StatusServiceUnavailable},
		{"Wrapped Warming Up", errors.Join(errors.New("ctx"), logic.ErrNoSnapshot), http.StatusServiceUnavailable},
		{"Data Integrity", &logic.DataIntegrityError{MatchID: 7, Detail: "boom"}, http.StatusInternalServerError},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testHandler()
			w := httptest.NewRecorder()
			h.serviceError(w, tt.err)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %v, want %v", w.Code, tt.expectedStatus)
			}
		})
	}
}

func TestModeParams(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantMode models.Gamemode
		wantMap  string
		wantErr  bool
	}{
		{"Empty", "", "", "", false},
		{"Mode Only", "?mode=Control", models.Control, "", false},
		{"Mode And Map", "?mode=Hardpoint&map=Karachi", models.Hardpoint, "Karachi", false},
		{"Map Without Mode", "?map=Karachi", "", "", true},
		{"Map Outside Pool", "?mode=Control&map=Vista", "", "", true},
		{"Overall Not Playable", "?mode=Hardpoint&map=Overall", "", "", true},
		{"Unknown Mode", "?mode=Domination", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/x"+tt.query, nil)
			mode, mapName, err := modeParams(req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("modeParams() error = %v, wantErr %v", err, tt.wantErr)
			}
			if mode != tt.wantMode || mapName != tt.wantMap {
				t.Errorf("modeParams() = %q, %q, want %q, %q", mode, mapName, tt.wantMode, tt.wantMap)
			}
		})
	}
}
