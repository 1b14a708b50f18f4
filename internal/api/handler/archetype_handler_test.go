package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/smartfit/fitness-api/internal/domain"
)

func TestClassify_Success(t *testing.T) {
	h := NewArchetypeHandler(&mockArchetypeService{})

	body := `{
		"age": 30, "weight_kg": 70, "height_m": 1.75, "max_bpm": 160,
		"duration_minutes": 45, "weekly_frequency": 4,
		"experience": "Intermediate", "intensity": "Medium"
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/profiles/classify", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Classify(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var got domain.ClassifyResult
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.ArchetypeID != domain.ArchetypeEnthusiast {
		t.Errorf("archetype_id = %v, want %v", got.ArchetypeID, domain.ArchetypeEnthusiast)
	}
	if got.Profile.Name == "" {
		t.Error("expected embedded profile in response")
	}
}

func TestClassify_UnknownExperienceRejected(t *testing.T) {
	h := NewArchetypeHandler(&mockArchetypeService{})

	body := `{
		"age": 30, "weight_kg": 70, "height_m": 1.75, "max_bpm": 160,
		"duration_minutes": 45, "weekly_frequency": 4,
		"experience": "Legendary", "intensity": "Medium"
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/profiles/classify", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Classify(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", w.Code)
	}
}

func TestArchetypes_List(t *testing.T) {
	h := NewArchetypeHandler(&mockArchetypeService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/archetypes", nil)
	w := httptest.NewRecorder()

	h.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var got []domain.ArchetypeProfile
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != domain.ArchetypeCount {
		t.Errorf("got %d profiles, want %d", len(got), domain.ArchetypeCount)
	}
}

func TestArchetypes_GetByID(t *testing.T) {
	h := NewArchetypeHandler(&mockArchetypeService{})

	r := chi.NewRouter()
	r.Get("/v1/archetypes/{archetypeId}", h.GetByID)

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"known ID", "/v1/archetypes/0", http.StatusOK},
		{"out of range", "/v1/archetypes/9", http.StatusNotFound},
		{"not a number", "/v1/archetypes/elite", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}
