package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/smartfit/fitness-api/internal/domain"
	"github.com/smartfit/fitness-api/internal/llm"
	"go.opentelemetry.io/otel/trace"
)

const coachRequestBody = `{
	"age": 30, "weight_kg": 70, "height_m": 1.75, "gender": "Male",
	"max_bpm": 160, "duration_minutes": 45, "weekly_frequency": 4,
	"experience": "Intermediate", "intensity": "Medium",
	"workout_type": "Cardio", "goal": "Weight Loss"
}`

func TestCoach_Success(t *testing.T) {
	h := NewInsightsHandler(&mockCoachService{}, &mockLangfuseClient{})

	req := httptest.NewRequest(http.MethodPost, "/v1/insights/coach", strings.NewReader(coachRequestBody))
	w := httptest.NewRecorder()

	h.Coach(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var got domain.CoachResult
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.Insights.Summary == "" {
		t.Error("expected LLM summary in response")
	}
}

func TestCoach_IncludesTraceID(t *testing.T) {
	h := NewInsightsHandler(&mockCoachService{}, &mockLangfuseClient{enabled: true})

	// Seed the request context with a valid span context so the handler
	// can surface its trace ID.
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{0x4b, 0xf9, 0x2f, 0x35, 0x77, 0xb3, 0x4d, 0xa6, 0xa3, 0xce, 0x92, 0x9d, 0x0e, 0x0e, 0x47, 0x36},
		SpanID:  trace.SpanID{0x00, 0xf0, 0x67, 0xaa, 0x0b, 0xa9, 0x02, 0xb7},
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	req := httptest.NewRequest(http.MethodPost, "/v1/insights/coach", strings.NewReader(coachRequestBody)).WithContext(ctx)
	w := httptest.NewRecorder()

	h.Coach(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var got domain.CoachResult
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.TraceID != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace_id = %q, want the span's trace ID", got.TraceID)
	}
}

func TestCoach_NoTraceIDWithoutSpan(t *testing.T) {
	h := NewInsightsHandler(&mockCoachService{}, &mockLangfuseClient{})

	req := httptest.NewRequest(http.MethodPost, "/v1/insights/coach", strings.NewReader(coachRequestBody))
	w := httptest.NewRecorder()

	h.Coach(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), `"trace_id"`) {
		t.Error("expected trace_id to be omitted without a span in context")
	}
}

func TestCoach_LLMStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unavailable", llm.ErrOpenAIUnavailable, http.StatusServiceUnavailable},
		{"request failed", llm.ErrOpenAIRequest, http.StatusBadGateway},
		{"bad response", llm.ErrOpenAIResponse, http.StatusBadGateway},
		{"other error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockCoachService{
				generateFunc: func(ctx context.Context, req *domain.CoachRequest) (*domain.CoachResult, error) {
					return nil, tt.err
				},
			}
			h := NewInsightsHandler(mock, &mockLangfuseClient{})

			req := httptest.NewRequest(http.MethodPost, "/v1/insights/coach", strings.NewReader(coachRequestBody))
			w := httptest.NewRecorder()

			h.Coach(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestCoach_ValidationError(t *testing.T) {
	h := NewInsightsHandler(&mockCoachService{}, &mockLangfuseClient{})

	req := httptest.NewRequest(http.MethodPost, "/v1/insights/coach", strings.NewReader(`{"age": 30}`))
	w := httptest.NewRecorder()

	h.Coach(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", w.Code)
	}
}

func TestFeedback_Success(t *testing.T) {
	mockLangfuse := &mockLangfuseClient{enabled: true}
	h := NewInsightsHandler(&mockCoachService{}, mockLangfuse)

	body := `{"trace_id": "4bf92f3577b34da6a3ce929d0e0e4736", "score": 4, "comment": "Helpful!"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/insights/feedback", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Feedback(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d: %s", w.Code, w.Body.String())
	}
	if mockLangfuse.scoreCalls != 1 {
		t.Errorf("CreateScore calls = %d, want 1", mockLangfuse.scoreCalls)
	}
	if mockLangfuse.lastScore.Name != "user_rating" || mockLangfuse.lastScore.Value != 4 {
		t.Errorf("score = %+v, want user_rating/4", mockLangfuse.lastScore)
	}
}

func TestFeedback_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing trace_id", `{"score": 4}`},
		{"score too low", `{"trace_id": "abc", "score": 0}`},
		{"score too high", `{"trace_id": "abc", "score": 6}`},
		{"invalid JSON", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLangfuse := &mockLangfuseClient{enabled: true}
			h := NewInsightsHandler(&mockCoachService{}, mockLangfuse)

			req := httptest.NewRequest(http.MethodPost, "/v1/insights/feedback", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h.Feedback(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
			if mockLangfuse.scoreCalls != 0 {
				t.Errorf("CreateScore calls = %d, want 0", mockLangfuse.scoreCalls)
			}
		})
	}
}
