package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wellnest/internal/domain"
	"wellnest/internal/quizgen"
	"wellnest/internal/scoring"
)

// SessionStore abstracts how in-flight test questions are retained
// (in-memory, Redis).
type SessionStore interface {
	Save(ctx context.Context, session domain.TestSession) error
	Get(ctx context.Context, id string) (domain.TestSession, error)
	Delete(ctx context.Context, id string) error
}

// ResultStore persists finished results (insert-by-id, find-by-id).
type ResultStore interface {
	Insert(ctx context.Context, result domain.Result) error
	Find(ctx context.Context, id string) (domain.Result, error)
}

// Submission is a submit request optionally tied to a stored test
// session. When SessionID is set, answers that omit points get them
// copied from the matching stored option before aggregation.
type Submission struct {
	SessionID string          `json:"sessionId"`
	UserID    string          `json:"userId"`
	Category  string          `json:"category"`
	Answers   []domain.Answer `json:"answers"`
}

// AssessmentService contains the assessment use cases: generating
// questions, starting tests, and scoring submissions.
type AssessmentService struct {
	generator *quizgen.Generator
	sessions  SessionStore
	results   ResultStore
	now       func() time.Time
}

func NewAssessmentService(generator *quizgen.Generator, sessions SessionStore, results ResultStore) *AssessmentService {
	return &AssessmentService{
		generator: generator,
		sessions:  sessions,
		results:   results,
		now:       time.Now,
	}
}

// GenerateQuestions produces a transient question list; nothing is
// retained. Two concurrent identical requests both hit the providers.
func (s *AssessmentService) GenerateQuestions(ctx context.Context, req domain.GenerateRequest) ([]domain.Question, error) {
	return s.generator.Generate(ctx, req)
}

// StartTest generates questions and retains them under a fresh session
// id for the duration of the test.
func (s *AssessmentService) StartTest(ctx context.Context, userID string, req domain.GenerateRequest) (domain.TestSession, error) {
	questions, err := s.generator.Generate(ctx, req)
	if err != nil {
		return domain.TestSession{}, err
	}

	session := domain.TestSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		Category:  req.Category,
		Questions: questions,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return domain.TestSession{}, err
	}
	return session, nil
}

// SubmitResult validates the submission, aggregates it into a result,
// and persists it. The stored result owns copies of the answer data; it
// keeps no reference to the session that produced it.
func (s *AssessmentService) SubmitResult(ctx context.Context, sub Submission) (domain.Result, error) {
	if sub.UserID == "" {
		return domain.Result{}, &domain.ValidationError{Field: "userId", Reason: "required"}
	}
	if sub.Category == "" {
		return domain.Result{}, &domain.ValidationError{Field: "category", Reason: "required"}
	}
	if sub.Answers == nil {
		return domain.Result{}, &domain.ValidationError{Field: "answers", Reason: "must be an array"}
	}

	answers := sub.Answers
	if sub.SessionID != "" {
		if session, err := s.sessions.Get(ctx, sub.SessionID); err == nil {
			answers = fillFromSession(session, answers)
			// The session has served its purpose; expiry would collect
			// it anyway.
			_ = s.sessions.Delete(ctx, sub.SessionID)
		}
	}

	result := scoring.Aggregate(sub.UserID, sub.Category, answers)
	result.ID = uuid.NewString()
	result.CreatedAt = s.now()

	if err := s.results.Insert(ctx, result); err != nil {
		return domain.Result{}, err
	}
	return result, nil
}

// GetResult fetches a stored result by id.
func (s *AssessmentService) GetResult(ctx context.Context, id string) (domain.Result, error) {
	return s.results.Find(ctx, id)
}

// fillFromSession copies option points onto answers that carry none,
// matching by question id and selected value. Answers that already carry
// points are trusted as-is; unanswered questions stay at 0.
func fillFromSession(session domain.TestSession, answers []domain.Answer) []domain.Answer {
	byID := make(map[string]domain.Question, len(session.Questions))
	for _, q := range session.Questions {
		byID[q.ID] = q
	}

	filled := make([]domain.Answer, len(answers))
	for i, a := range answers {
		if a.Points == 0 && a.SelectedValue != "" {
			if q, ok := byID[a.QuestionID]; ok {
				for _, opt := range q.Options {
					if opt.Value == a.SelectedValue {
						a.Points = opt.Points
						break
					}
				}
				if a.QuestionText == "" {
					a.QuestionText = q.Text
				}
			}
		}
		filled[i] = a
	}
	return filled
}
