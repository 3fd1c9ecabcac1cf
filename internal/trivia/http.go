package trivia

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	httperrors "github.com/triviaworks/trivia-api/pkg/http/errors"
)

// HTTPHandlers exposes the trivia REST endpoints.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandlers constructs the trivia HTTP handlers.
func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

// ListCategories handles GET /categories.
func (h *HTTPHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, map[string]any{
		"success":    true,
		"categories": categories,
	})
}

// ListQuestions handles GET /questions?page=N.
func (h *HTTPHandlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Questions(r.Context(), pageParam(r))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, map[string]any{
		"success":         true,
		"questions":       result.Questions,
		"total_questions": result.Total,
		"categories":      result.Categories,
	})
}

// DeleteQuestion handles DELETE /questions/{id}.
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}
	deleted, err := h.svc.DeleteQuestion(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, map[string]any{
		"success":     true,
		"question_id": deleted,
	})
}

// createQuestionRequest uses pointers to tell an absent field apart from a
// present-but-zero one: only absence (or JSON null) is rejected.
type createQuestionRequest struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *int64  `json:"category"`
	Difficulty *int    `json:"difficulty"`
}

// CreateQuestion handles POST /questions.
func (h *HTTPHandlers) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}
	if req.Question == nil || req.Answer == nil || req.Category == nil || req.Difficulty == nil {
		httperrors.RespondBadRequest(w)
		return
	}

	err := h.svc.CreateQuestion(r.Context(), NewQuestion{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Category:   *req.Category,
		Difficulty: *req.Difficulty,
	})
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, map[string]any{
		"success": true,
		"message": "Question successfully created!",
	})
}

type searchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// SearchQuestions handles POST /questions/search. An absent term and an
// empty one are rejected alike.
func (h *HTTPHandlers) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}
	if req.SearchTerm == "" {
		httperrors.RespondBadRequest(w)
		return
	}

	result, err := h.svc.SearchQuestions(r.Context(), req.SearchTerm, pageParam(r))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, map[string]any{
		"success":         true,
		"questions":       result.Questions,
		"total_questions": result.Total,
	})
}

// ListQuestionsByCategory handles GET /categories/{id}/questions?page=N.
func (h *HTTPHandlers) ListQuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}
	result, err := h.svc.QuestionsByCategory(r.Context(), id, pageParam(r))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, map[string]any{
		"success":          true,
		"questions":        result.Questions,
		"total_questions":  result.Total,
		"current_category": result.CurrentCategory,
	})
}

// quizRequest uses pointers so a missing quiz_category, a quiz_category
// without an id, or a missing previous_questions list all read as nil.
type quizRequest struct {
	PreviousQuestions *[]int64         `json:"previous_questions"`
	QuizCategory      *quizCategoryRef `json:"quiz_category"`
}

type quizCategoryRef struct {
	ID   *int64 `json:"id"`
	Type string `json:"type"`
}

// NextQuizQuestion handles POST /quizzes. Every malformed-body case and
// any storage fault collapse into 422 on the wire; an exhausted eligible
// set is 404.
func (h *HTTPHandlers) NextQuizQuestion(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondServiceError(w, r, fmt.Errorf("%w: %w", ErrMalformedRequest, err))
		return
	}
	if req.QuizCategory == nil || req.QuizCategory.ID == nil || req.PreviousQuestions == nil {
		h.respondServiceError(w, r, ErrMalformedRequest)
		return
	}

	question, err := h.svc.NextQuestion(r.Context(), *req.QuizCategory.ID, *req.PreviousQuestions)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, map[string]any{
		"success":  true,
		"question": question,
	})
}

func pageParam(r *http.Request) int {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}
	return page
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error().Err(err).Msg("response encode failed")
	}
}

func (h *HTTPHandlers) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httperrors.RespondNotFound(w)
	case errors.Is(err, ErrMalformedRequest), errors.Is(err, ErrStorage):
		h.logger.Warn().Err(err).Str("path", r.URL.Path).Msg("request unprocessable")
		httperrors.RespondUnprocessable(w)
	default:
		h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("unexpected handler error")
		httperrors.RespondUnprocessable(w)
	}
}
