package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"wellnest/internal/app"
	"wellnest/internal/domain"
)

// TipGenerator produces improvement tips from submitted answers.
type TipGenerator interface {
	Generate(ctx context.Context, answers []domain.Answer) []string
}

// Handler exposes the assessment use cases over REST.
type Handler struct {
	service *app.AssessmentService
	tips    TipGenerator
}

func NewHandler(service *app.AssessmentService, tips TipGenerator) *Handler {
	return &Handler{service: service, tips: tips}
}

// Register mounts all REST routes on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.health)
	mux.HandleFunc("GET /api/questions", h.generateQuestions)
	mux.HandleFunc("POST /api/tests", h.startTest)
	mux.HandleFunc("POST /api/results", h.submitResult)
	mux.HandleFunc("GET /api/results/{id}", h.getResult)
	mux.HandleFunc("POST /api/tips", h.generateTips)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"service": "wellnest",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) generateQuestions(w http.ResponseWriter, r *http.Request) {
	req := generateRequestFromQuery(r)

	questions, err := h.service.GenerateQuestions(r.Context(), req)
	if err != nil {
		log.Printf("generate questions: %v", err)
		writeError(w, http.StatusBadGateway, "AI generation failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"questions": questions})
}

func (h *Handler) startTest(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-ID")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user identity")
		return
	}

	var req domain.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.service.StartTest(r.Context(), userID, req)
	if err != nil {
		log.Printf("start test: %v", err)
		writeError(w, http.StatusBadGateway, "AI generation failed")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"sessionId": session.ID,
		"questions": session.Questions,
	})
}

func (h *Handler) submitResult(w http.ResponseWriter, r *http.Request) {
	var sub app.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if sub.UserID == "" {
		sub.UserID = r.Header.Get("X-User-ID")
	}

	result, err := h.service.SubmitResult(r.Context(), sub)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		log.Printf("submit result: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to save result")
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) getResult(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetResult(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrResultNotFound) {
			writeError(w, http.StatusNotFound, "result not found")
			return
		}
		log.Printf("get result: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch result")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) generateTips(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Answers []domain.Answer `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Answers == nil {
		writeError(w, http.StatusBadRequest, "answers must be an array")
		return
	}

	tips := h.tips.Generate(r.Context(), body.Answers)
	writeJSON(w, http.StatusOK, map[string]any{"tips": tips})
}

func generateRequestFromQuery(r *http.Request) domain.GenerateRequest {
	q := r.URL.Query()
	count, _ := strconv.Atoi(q.Get("count"))
	return domain.GenerateRequest{
		Category: q.Get("category"),
		Count:    count,
		Target:   q.Get("target"),
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
