package domain

import (
	"errors"
	"time"
)

// Verdict is the outcome of one solved puzzle part.
type Verdict string

const (
	VerdictCorrect   Verdict = "correct"
	VerdictWrong     Verdict = "wrong"
	VerdictUnchecked Verdict = "unchecked"
	VerdictFailed    Verdict = "failed"
)

// RunError is the report-friendly form of an error that aborted a puzzle.
type RunError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// NewRunError classifies err. It returns nil for a nil error.
func NewRunError(err error) *RunError {
	if err == nil {
		return nil
	}
	return &RunError{
		Kind:    ClassifyError(err),
		Message: err.Error(),
	}
}

// ClassifyError maps an error onto an ErrorKind.
func ClassifyError(err error) ErrorKind {
	var oe *OpError
	switch {
	case errors.As(err, &oe):
		return oe.Kind
	case errors.Is(err, ErrParse):
		return KindParse
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidConfig):
		return KindInvalidConfig
	case errors.Is(err, ErrIO):
		return KindIO
	default:
		return KindExecution
	}
}

// PuzzleResult is the outcome of solving one puzzle part against one input.
type PuzzleResult struct {
	Day       int    `json:"day"`
	Part      int    `json:"part"`
	Title     string `json:"title"`
	InputPath string `json:"input_path"`

	Records    int   `json:"records"`
	Answer     *int  `json:"answer,omitempty"`
	Want       *int  `json:"want,omitempty"`
	DurationUS int64 `json:"duration_us"`

	Verdict Verdict   `json:"verdict"`
	Error   *RunError `json:"error,omitempty"`
}

// Key returns the puzzle key of the result.
func (r PuzzleResult) Key() PuzzleKey {
	return PuzzleKey{Day: r.Day, Part: r.Part}
}

// Failed reports whether the result should make the run fail.
func (r PuzzleResult) Failed() bool {
	return r.Verdict == VerdictFailed || r.Verdict == VerdictWrong
}

// RunResult groups the results of one invocation.
type RunResult struct {
	ID    string `json:"id"`
	Label string `json:"label"`

	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`

	Results []PuzzleResult `json:"results"`
}

// Failures counts results that are failed or wrong.
func (r RunResult) Failures() int {
	n := 0
	for _, pr := range r.Results {
		if pr.Failed() {
			n++
		}
	}
	return n
}
