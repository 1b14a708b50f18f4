package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/smartfit/fitness-api/internal/domain"
)

func newEstimateHandlerForTest() *EstimateHandler {
	return NewEstimateHandler(&mockCalorieService{}, &mockBodyService{}, &mockProjectionService{})
}

func TestEstimateCalories_Success(t *testing.T) {
	h := newEstimateHandlerForTest()

	body := `{"duration_minutes": 45, "intensity": "Medium", "weight_kg": 70, "age": 30, "gender": "Male", "workout_type": "Cardio"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/estimates/calories", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.EstimateCalories(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var got domain.CalorieEstimate
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.Calories != 87.32 {
		t.Errorf("calories = %v, want 87.32", got.Calories)
	}
}

func TestEstimateCalories_InvalidJSON(t *testing.T) {
	h := newEstimateHandlerForTest()

	req := httptest.NewRequest(http.MethodPost, "/v1/estimates/calories", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	h.EstimateCalories(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
}

func TestEstimateCalories_ValidationErrors(t *testing.T) {
	h := newEstimateHandlerForTest()

	tests := []struct {
		name string
		body string
	}{
		{"missing fields", `{}`},
		{"age below minimum", `{"duration_minutes": 45, "intensity": "Medium", "weight_kg": 70, "age": 12, "gender": "Male", "workout_type": "Cardio"}`},
		{"unknown intensity", `{"duration_minutes": 45, "intensity": "Insane", "weight_kg": 70, "age": 30, "gender": "Male", "workout_type": "Cardio"}`},
		{"unknown gender", `{"duration_minutes": 45, "intensity": "Medium", "weight_kg": 70, "age": 30, "gender": "Other", "workout_type": "Cardio"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/estimates/calories", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h.EstimateCalories(w, req)

			if w.Code != http.StatusUnprocessableEntity {
				t.Errorf("expected status 422, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestEstimateCalories_MultiWordEnumAccepted(t *testing.T) {
	h := newEstimateHandlerForTest()

	body := `{"duration_minutes": 45, "intensity": "Very High", "weight_kg": 70, "age": 30, "gender": "Male", "workout_type": "HIIT"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/estimates/calories", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.EstimateCalories(w, req)

	if w.Code != http.StatusOK {
		t.Errorf(`expected "Very High" to validate, got %d: %s`, w.Code, w.Body.String())
	}
}

func TestEstimateBodyComposition_Success(t *testing.T) {
	h := newEstimateHandlerForTest()

	body := `{"weight_kg": 70, "height_m": 1.75, "age": 30, "gender": "Male"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/estimates/body-composition", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.EstimateBodyComposition(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var got domain.BodyComposition
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.Category != domain.BMINormal {
		t.Errorf("category = %v, want %v", got.Category, domain.BMINormal)
	}
}

func TestProjectWeight_Success(t *testing.T) {
	h := newEstimateHandlerForTest()

	body := `{"current_weight_kg": 75, "weekly_workouts": 4, "avg_duration_minutes": 45, "goal": "Weight Loss", "weeks": 12}`
	req := httptest.NewRequest(http.MethodPost, "/v1/estimates/weight-projection", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.ProjectWeight(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var got domain.WeightProjection
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got.Series) == 0 {
		t.Error("expected a non-empty projection series")
	}
}

func TestProjectWeight_RejectsOutOfRangeWeeks(t *testing.T) {
	h := newEstimateHandlerForTest()

	body := `{"current_weight_kg": 75, "weekly_workouts": 4, "avg_duration_minutes": 45, "goal": "Weight Loss", "weeks": 100}`
	req := httptest.NewRequest(http.MethodPost, "/v1/estimates/weight-projection", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.ProjectWeight(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", w.Code)
	}
}
