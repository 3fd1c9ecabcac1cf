package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/triviaworks/trivia-api/internal/trivia"
)

const questionColumns = "id, question, answer, category, difficulty"

// QuestionRepository implements trivia.QuestionStore over Postgres.
type QuestionRepository struct {
	db DB
}

func NewQuestionRepository(db DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

var _ trivia.QuestionStore = (*QuestionRepository)(nil)

// ListQuestions returns every question ordered by id.
func (r *QuestionRepository) ListQuestions(ctx context.Context) ([]trivia.Question, error) {
	rows, err := r.db.Query(ctx, "SELECT "+questionColumns+" FROM questions ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	return collectQuestions(rows)
}

// GetQuestion fetches one question; a missing id is trivia.ErrNotFound.
func (r *QuestionRepository) GetQuestion(ctx context.Context, id int64) (trivia.Question, error) {
	row := r.db.QueryRow(ctx, "SELECT "+questionColumns+" FROM questions WHERE id = $1", id)
	q, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return trivia.Question{}, trivia.ErrNotFound
		}
		return trivia.Question{}, fmt.Errorf("query question %d: %w", id, err)
	}
	return q, nil
}

// InsertQuestion creates one row and returns its generated id.
func (r *QuestionRepository) InsertQuestion(ctx context.Context, q trivia.NewQuestion) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		"INSERT INTO questions (question, answer, category, difficulty) VALUES ($1, $2, $3, $4) RETURNING id",
		q.Question, q.Answer, q.Category, q.Difficulty,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}
	return id, nil
}

// DeleteQuestion removes one row. Deleting an absent id is not an error
// here; existence is checked by the caller first.
func (r *QuestionRepository) DeleteQuestion(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM questions WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	return nil
}

// SearchQuestions returns all questions whose text contains the term,
// case-insensitively, ordered by id.
func (r *QuestionRepository) SearchQuestions(ctx context.Context, term string) ([]trivia.Question, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE question ILIKE '%' || $1 || '%' ORDER BY id",
		term,
	)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return collectQuestions(rows)
}

// ListQuestionsByCategory returns the category's questions ordered by id.
func (r *QuestionRepository) ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]trivia.Question, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE category = $1 ORDER BY id",
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("query questions by category: %w", err)
	}
	return collectQuestions(rows)
}

// ListEligibleQuestions returns questions matching the category filter
// (trivia.AllCategories selects everything) whose ids are not excluded.
func (r *QuestionRepository) ListEligibleQuestions(ctx context.Context, categoryID int64, excluded []int64) ([]trivia.Question, error) {
	if excluded == nil {
		excluded = []int64{}
	}
	rows, err := r.db.Query(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE ($1 = 0 OR category = $1) AND NOT (id = ANY($2)) ORDER BY id",
		categoryID, excluded,
	)
	if err != nil {
		return nil, fmt.Errorf("query eligible questions: %w", err)
	}
	return collectQuestions(rows)
}

func collectQuestions(rows pgx.Rows) ([]trivia.Question, error) {
	defer rows.Close()
	questions := []trivia.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return questions, nil
}

func scanQuestion(row pgx.Row) (trivia.Question, error) {
	var q trivia.Question
	err := row.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	return q, err
}
