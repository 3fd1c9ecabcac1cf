package trivia

import (
	"context"
	"errors"
	"fmt"
)

// QuestionStore is the storage access contract for questions. Missing
// rows come back as ErrNotFound; any other failure is a storage fault.
type QuestionStore interface {
	ListQuestions(ctx context.Context) ([]Question, error)
	GetQuestion(ctx context.Context, id int64) (Question, error)
	InsertQuestion(ctx context.Context, q NewQuestion) (int64, error)
	DeleteQuestion(ctx context.Context, id int64) error
	SearchQuestions(ctx context.Context, term string) ([]Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]Question, error)
	ListEligibleQuestions(ctx context.Context, categoryID int64, excluded []int64) ([]Question, error)
}

// CategoryStore is the storage access contract for categories.
type CategoryStore interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id int64) (Category, error)
}

// AllCategories is the sentinel quiz category id selecting every question.
const AllCategories int64 = 0

// Service implements the query and quiz-play logic over the two stores.
// It holds no mutable state; every read goes back to storage.
type Service struct {
	questions  QuestionStore
	categories CategoryStore
	picker     Picker
	perPage    int
}

// ServiceOptions tunes selection and pagination behavior.
type ServiceOptions struct {
	Picker           Picker
	QuestionsPerPage int
}

func NewService(questions QuestionStore, categories CategoryStore, opts ServiceOptions) *Service {
	picker := opts.Picker
	if picker == nil {
		picker = NewPicker()
	}
	perPage := opts.QuestionsPerPage
	if perPage < 1 {
		perPage = DefaultQuestionsPerPage
	}
	return &Service{
		questions:  questions,
		categories: categories,
		picker:     picker,
		perPage:    perPage,
	}
}

// Categories returns the id-to-type mapping of all categories.
// An empty table still succeeds with an empty mapping; only a failed
// read maps to not-found. The questions listing treats an empty page as
// not-found instead, and that asymmetry is deliberate (kept for
// compatibility with existing clients).
func (s *Service) Categories(ctx context.Context) (map[int64]string, error) {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list categories: %w", ErrNotFound, err)
	}
	return categoryMap(categories), nil
}

// Questions returns one page of all questions plus the unpaginated total
// and the full category mapping. An empty page, including any page past
// the end, is not-found.
func (s *Service) Questions(ctx context.Context, page int) (QuestionsPage, error) {
	all, err := s.questions.ListQuestions(ctx)
	if err != nil {
		return QuestionsPage{}, fmt.Errorf("%w: list questions: %w", ErrNotFound, err)
	}
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return QuestionsPage{}, fmt.Errorf("%w: list categories: %w", ErrNotFound, err)
	}

	window := Paginate(all, page, s.perPage)
	if len(window) == 0 {
		return QuestionsPage{}, ErrNotFound
	}

	return QuestionsPage{
		Questions:  window,
		Total:      len(all),
		Categories: categoryMap(categories),
	}, nil
}

// DeleteQuestion removes one question and echoes its id. A missing id is
// not-found; a failing delete is a storage fault.
func (s *Service) DeleteQuestion(ctx context.Context, id int64) (int64, error) {
	if _, err := s.questions.GetQuestion(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: get question %d: %w", ErrStorage, id, err)
	}
	if err := s.questions.DeleteQuestion(ctx, id); err != nil {
		return 0, fmt.Errorf("%w: delete question %d: %w", ErrStorage, id, err)
	}
	return id, nil
}

// CreateQuestion inserts a new question row. Field presence is validated
// at the HTTP boundary before storage is touched; no category-existence
// or difficulty-range check happens here.
func (s *Service) CreateQuestion(ctx context.Context, q NewQuestion) error {
	if _, err := s.questions.InsertQuestion(ctx, q); err != nil {
		return fmt.Errorf("%w: insert question: %w", ErrStorage, err)
	}
	return nil
}

// SearchQuestions returns the page of case-insensitive substring matches
// and the unpaginated match count. Zero matches is a valid empty result.
func (s *Service) SearchQuestions(ctx context.Context, term string, page int) (SearchResult, error) {
	matches, err := s.questions.SearchQuestions(ctx, term)
	if err != nil {
		return SearchResult{}, fmt.Errorf("%w: search questions: %w", ErrStorage, err)
	}
	return SearchResult{
		Questions: Paginate(matches, page, s.perPage),
		Total:     len(matches),
	}, nil
}

// QuestionsByCategory returns one page of the category's questions. Only
// an unknown category id is not-found; zero matching questions still
// succeeds with an empty page.
func (s *Service) QuestionsByCategory(ctx context.Context, categoryID int64, page int) (CategoryQuestions, error) {
	if _, err := s.categories.GetCategory(ctx, categoryID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return CategoryQuestions{}, err
		}
		return CategoryQuestions{}, fmt.Errorf("%w: get category %d: %w", ErrStorage, categoryID, err)
	}

	matches, err := s.questions.ListQuestionsByCategory(ctx, categoryID)
	if err != nil {
		return CategoryQuestions{}, fmt.Errorf("%w: list questions by category: %w", ErrStorage, err)
	}

	return CategoryQuestions{
		Questions:       Paginate(matches, page, s.perPage),
		Total:           len(matches),
		CurrentCategory: categoryID,
	}, nil
}

// NextQuestion picks one uniformly random question from the eligible set:
// all questions when categoryID is the AllCategories sentinel, otherwise
// the category's questions, minus every id in previous. An exhausted set
// is not-found; a failing query is a storage fault (surfaced as 422, the
// same code as a malformed body).
func (s *Service) NextQuestion(ctx context.Context, categoryID int64, previous []int64) (Question, error) {
	eligible, err := s.questions.ListEligibleQuestions(ctx, categoryID, previous)
	if err != nil {
		return Question{}, fmt.Errorf("%w: list eligible questions: %w", ErrStorage, err)
	}
	if len(eligible) == 0 {
		return Question{}, ErrNotFound
	}
	return eligible[s.picker.Pick(len(eligible))], nil
}

func categoryMap(categories []Category) map[int64]string {
	m := make(map[int64]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}
