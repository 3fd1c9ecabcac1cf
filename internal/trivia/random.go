package trivia

import "math/rand/v2"

// Picker draws a uniform index from [0, n). It is injected into the
// service so tests can pin the draw while production uses math/rand.
type Picker interface {
	Pick(n int) int
}

type randPicker struct{}

// NewPicker returns the default uniform picker.
func NewPicker() Picker {
	return randPicker{}
}

func (randPicker) Pick(n int) int {
	return rand.IntN(n)
}
