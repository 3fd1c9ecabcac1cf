package trivia

// Question represents a stored trivia question. The JSON shape is the
// externally-visible "formatted question" with exactly these five fields.
type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category is a question grouping. Read-only over the API.
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// NewQuestion carries the insertable fields of a question.
type NewQuestion struct {
	Question   string
	Answer     string
	Category   int64
	Difficulty int
}

// QuestionsPage is the result of the paginated question listing.
type QuestionsPage struct {
	Questions  []Question
	Total      int
	Categories map[int64]string
}

// SearchResult holds paginated matches plus the unpaginated match count.
type SearchResult struct {
	Questions []Question
	Total     int
}

// CategoryQuestions is the result of listing one category's questions.
type CategoryQuestions struct {
	Questions       []Question
	Total           int
	CurrentCategory int64
}
