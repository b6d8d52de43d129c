package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wellnest/internal/app"
	"wellnest/internal/domain"
	"wellnest/internal/infra/memory"
	"wellnest/internal/llm"
	"wellnest/internal/quizgen"
)

const questionReply = `[
  {
    "question": "How often do you feel stressed?",
    "options": [
      {"text": "Never", "points": 3},
      {"text": "Sometimes", "points": 2},
      {"text": "Often", "points": 0},
      {"text": "Always", "points": 0}
    ]
  }
]`

type stubTips struct {
	tips []string
}

func (s stubTips) Generate(context.Context, []domain.Answer) []string { return s.tips }

func newTestMux(responses ...llm.MockResponse) *http.ServeMux {
	service := app.NewAssessmentService(
		quizgen.NewGenerator(llm.NewMockProvider(responses...)),
		memory.NewQuestionStore(time.Minute),
		memory.NewResultStore(),
	)
	handler := NewHandler(service, stubTips{tips: []string{"Drink more water."}})

	mux := http.NewServeMux()
	handler.Register(mux)
	return mux
}

func TestHealthz(t *testing.T) {
	mux := newTestMux()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGenerateQuestions(t *testing.T) {
	mux := newTestMux(llm.MockResponse{Text: questionReply})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/questions?category=stress&count=1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}

	var body struct {
		Questions []domain.Question `json:"questions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Questions) != 1 || len(body.Questions[0].Options) != 4 {
		t.Fatalf("unexpected questions: %+v", body.Questions)
	}
}

func TestGenerateQuestionsProviderFailure(t *testing.T) {
	mux := newTestMux(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/questions", nil))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestStartTestRequiresUser(t *testing.T) {
	mux := newTestMux(llm.MockResponse{Text: questionReply})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tests", strings.NewReader(`{"category":"stress"}`)))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestStartTestReturnsSession(t *testing.T) {
	mux := newTestMux(llm.MockResponse{Text: questionReply})

	req := httptest.NewRequest(http.MethodPost, "/api/tests", strings.NewReader(`{"category":"stress","count":1}`))
	req.Header.Set("X-User-ID", "u1")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
	}

	var body struct {
		SessionID string            `json:"sessionId"`
		Questions []domain.Question `json:"questions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.SessionID == "" || len(body.Questions) != 1 {
		t.Fatalf("unexpected session payload: %+v", body)
	}
}

func TestSubmitAndFetchResult(t *testing.T) {
	mux := newTestMux()

	payload := `{
	  "userId": "u1",
	  "category": "stress",
	  "answers": [
	    {"quizId": "q1", "question": "How often do you feel stressed?", "selectedAnswer": "Never", "points": 3},
	    {"quizId": "q2", "question": "How many hours do you sleep?", "selectedAnswer": "5-6 hours", "points": 2}
	  ]
	}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/results", strings.NewReader(payload)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
	}

	var result domain.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.TotalPoints != 5 || result.MaxPoints != 6 || result.ScoreOutOf10 != 8 {
		t.Fatalf("unexpected scoring: %+v", result)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/results/"+result.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on fetch, got %d", rec.Code)
	}
}

func TestSubmitResultValidationError(t *testing.T) {
	mux := newTestMux()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/results", strings.NewReader(`{"userId":"u1","category":"stress"}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing answers, got %d: %s", rec.Code, rec.Body)
	}
}

func TestSubmitResultUserFromHeader(t *testing.T) {
	mux := newTestMux()

	req := httptest.NewRequest(http.MethodPost, "/api/results", strings.NewReader(`{"category":"stress","answers":[]}`))
	req.Header.Set("X-User-ID", "u1")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 with header identity, got %d: %s", rec.Code, rec.Body)
	}
}

func TestGetResultNotFound(t *testing.T) {
	mux := newTestMux()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/results/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGenerateTips(t *testing.T) {
	mux := newTestMux()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tips", strings.NewReader(`{"answers":[{"quizId":"q1","selectedAnswer":"Never","points":3}]}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}

	var body struct {
		Tips []string `json:"tips"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode tips: %v", err)
	}
	if len(body.Tips) != 1 || body.Tips[0] != "Drink more water." {
		t.Fatalf("unexpected tips: %v", body.Tips)
	}
}

func TestGenerateTipsRequiresAnswers(t *testing.T) {
	mux := newTestMux()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tips", strings.NewReader(`{}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
