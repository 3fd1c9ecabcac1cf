package trivia

// DefaultQuestionsPerPage is the fixed page size of every listing endpoint.
const DefaultQuestionsPerPage = 10

// Paginate returns the window of at most perPage questions starting at
// offset (page-1)*perPage. Pages are 1-based; the page value is not
// validated, so zero or negative pages fall out of range like any page
// past the end and yield an empty slice, never an error. The caller
// decides whether empty means not-found.
func Paginate(questions []Question, page, perPage int) []Question {
	if perPage < 1 {
		perPage = DefaultQuestionsPerPage
	}
	start := (page - 1) * perPage
	if start < 0 || start >= len(questions) {
		return []Question{}
	}
	end := start + perPage
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end]
}
