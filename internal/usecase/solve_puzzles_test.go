package usecase

import (
	"context"
	"errors"
	"io/fs"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/fawaz-alesayi/advent-of-crab/internal/domain"
	"github.com/fawaz-alesayi/advent-of-crab/internal/ports"
	"github.com/fawaz-alesayi/advent-of-crab/internal/puzzles"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// --- fakes ---

type fakeLines map[string][]string

func (f fakeLines) LoadLines(path string) ([]string, error) {
	lines, ok := f[path]
	if !ok {
		return nil, &domain.OpError{Op: "fake.load", Kind: domain.KindNotFound, Path: path, Err: fs.ErrNotExist}
	}
	return lines, nil
}

type fakeStore struct {
	saved bool
	last  domain.RunResult
}

func (s *fakeStore) SaveRun(run domain.RunResult) (string, error) {
	s.saved = true
	s.last = run
	return "run-123", nil
}

type errStore struct{ err error }

func (s *errStore) SaveRun(_ domain.RunResult) (string, error) { return "", s.err }

// cancelLines cancels the given context on first load.
type cancelLines struct {
	fakeLines
	cancel context.CancelFunc
	calls  int
}

func (c *cancelLines) LoadLines(path string) ([]string, error) {
	c.calls++
	if c.calls == 1 {
		c.cancel()
	}
	return c.fakeLines.LoadLines(path)
}

var (
	sweep  = []string{"199", "200", "208", "210", "200", "207", "240", "269", "260", "263"}
	course = []string{"forward 5", "down 5", "forward 8", "up 3", "down 8", "forward 2"}
)

func intp(v int) *int { return &v }

func fixedClock() func() time.Time {
	t0 := time.Date(2021, 12, 2, 5, 0, 0, 0, time.UTC)
	return func() time.Time { return t0 }
}

func newSolver(ll ports.LineLoader, store ports.ArtifactStore) *SolvePuzzles {
	return NewSolvePuzzles(puzzles.Default(), ll, store,
		WithClock(fixedClock()),
		WithIDGenerator(func() string { return "fixed-id" }),
	)
}

// --- judge ---

func TestJudge(t *testing.T) {
	if v := judge(5, nil); v != domain.VerdictUnchecked {
		t.Fatalf("expected unchecked, got %s", v)
	}
	if v := judge(5, intp(5)); v != domain.VerdictCorrect {
		t.Fatalf("expected correct, got %s", v)
	}
	if v := judge(5, intp(6)); v != domain.VerdictWrong {
		t.Fatalf("expected wrong, got %s", v)
	}
}

// --- SolvePuzzles.Execute ---

func TestSolvePuzzles_AllPartsOfBothDays(t *testing.T) {
	ll := fakeLines{"d1": sweep, "d2": course}
	uc := newSolver(ll, nil)

	reqs := []SolveRequest{
		{Key: domain.PuzzleKey{Day: 1, Part: 1}, InputPath: "d1", Want: intp(7)},
		{Key: domain.PuzzleKey{Day: 1, Part: 2}, InputPath: "d1", Want: intp(5)},
		{Key: domain.PuzzleKey{Day: 2, Part: 1}, InputPath: "d2", Want: intp(150)},
		{Key: domain.PuzzleKey{Day: 2, Part: 2}, InputPath: "d2"},
	}

	run, id, err := uc.Execute(context.Background(), "check", reqs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "" {
		t.Fatalf("expected empty id when store is nil, got %q", id)
	}
	if run.ID != "fixed-id" || run.Label != "check" {
		t.Fatalf("unexpected run header: %+v", run)
	}
	if len(run.Results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(run.Results))
	}

	wantAnswers := []int{7, 5, 150, 900}
	wantVerdicts := []domain.Verdict{
		domain.VerdictCorrect, domain.VerdictCorrect, domain.VerdictCorrect, domain.VerdictUnchecked,
	}
	for i, r := range run.Results {
		if r.Answer == nil || *r.Answer != wantAnswers[i] {
			t.Errorf("result %d: expected answer %d, got %v", i, wantAnswers[i], r.Answer)
		}
		if r.Verdict != wantVerdicts[i] {
			t.Errorf("result %d: expected verdict %s, got %s", i, wantVerdicts[i], r.Verdict)
		}
	}
	if run.Results[0].Title != "Sonar Sweep" || run.Results[3].Title != "Dive!" {
		t.Errorf("unexpected titles: %q %q", run.Results[0].Title, run.Results[3].Title)
	}
	if run.Results[0].Records != 10 || run.Results[2].Records != 6 {
		t.Errorf("unexpected record counts: %d %d", run.Results[0].Records, run.Results[2].Records)
	}
	if run.Failures() != 0 {
		t.Errorf("expected no failures, got %d", run.Failures())
	}
}

func TestSolvePuzzles_WrongAnswer(t *testing.T) {
	uc := newSolver(fakeLines{"d1": sweep}, nil)
	run, _, err := uc.Execute(context.Background(), "day 1", []SolveRequest{
		{Key: domain.PuzzleKey{Day: 1, Part: 1}, InputPath: "d1", Want: intp(1215)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.Results[0].Verdict != domain.VerdictWrong {
		t.Fatalf("expected wrong verdict, got %s", run.Results[0].Verdict)
	}
	if run.Failures() != 1 {
		t.Fatalf("expected 1 failure, got %d", run.Failures())
	}
}

func TestSolvePuzzles_ParseErrorIsFatalForThatPuzzleOnly(t *testing.T) {
	bad := append([]string{}, course...)
	bad[3] = "sideways 4"
	uc := newSolver(fakeLines{"bad": bad, "d1": sweep}, nil)

	run, _, err := uc.Execute(context.Background(), "mixed", []SolveRequest{
		{Key: domain.PuzzleKey{Day: 2, Part: 1}, InputPath: "bad"},
		{Key: domain.PuzzleKey{Day: 1, Part: 1}, InputPath: "d1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	failed := run.Results[0]
	if failed.Verdict != domain.VerdictFailed {
		t.Fatalf("expected failed verdict, got %s", failed.Verdict)
	}
	if failed.Answer != nil {
		t.Fatalf("expected no partial answer, got %d", *failed.Answer)
	}
	if failed.Error == nil || failed.Error.Kind != domain.KindParse {
		t.Fatalf("expected parse error, got %+v", failed.Error)
	}
	if run.Results[1].Verdict != domain.VerdictUnchecked {
		t.Fatalf("expected next puzzle to still run, got %s", run.Results[1].Verdict)
	}
}

func TestSolvePuzzles_MissingInput(t *testing.T) {
	uc := newSolver(fakeLines{}, nil)
	run, _, err := uc.Execute(context.Background(), "day 1", []SolveRequest{
		{Key: domain.PuzzleKey{Day: 1, Part: 1}, InputPath: "missing.txt"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := run.Results[0]
	if r.Error == nil || r.Error.Kind != domain.KindNotFound {
		t.Fatalf("expected not_found error, got %+v", r.Error)
	}
}

func TestSolvePuzzles_UnknownPuzzle(t *testing.T) {
	uc := newSolver(fakeLines{"x": {"1"}}, nil)
	run, _, _ := uc.Execute(context.Background(), "day 9", []SolveRequest{
		{Key: domain.PuzzleKey{Day: 9, Part: 1}, InputPath: "x"},
	})
	r := run.Results[0]
	if r.Verdict != domain.VerdictFailed || r.Error == nil || r.Error.Kind != domain.KindNotFound {
		t.Fatalf("expected not_found failure, got %+v", r)
	}
}

func TestSolvePuzzles_StoreCalled(t *testing.T) {
	store := &fakeStore{}
	uc := newSolver(fakeLines{"d1": sweep}, store)

	_, id, err := uc.Execute(context.Background(), "day 1", []SolveRequest{
		{Key: domain.PuzzleKey{Day: 1, Part: 2}, InputPath: "d1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !store.saved {
		t.Fatal("expected SaveRun to be called")
	}
	if id != "run-123" {
		t.Fatalf("expected id run-123, got %q", id)
	}
	if store.last.ID != "fixed-id" || len(store.last.Results) != 1 {
		t.Fatalf("unexpected saved run: %+v", store.last)
	}
}

func TestSolvePuzzles_StoreSaveError(t *testing.T) {
	saveErr := errors.New("store unavailable")
	uc := newSolver(fakeLines{"d1": sweep}, &errStore{err: saveErr})

	run, id, err := uc.Execute(context.Background(), "day 1", []SolveRequest{
		{Key: domain.PuzzleKey{Day: 1, Part: 1}, InputPath: "d1"},
	})
	if !errors.Is(err, saveErr) {
		t.Fatalf("expected wrapped saveErr, got %v", err)
	}
	if id != "" {
		t.Fatalf("expected empty id on store error, got %q", id)
	}
	// run should still be returned so caller can inspect results.
	if len(run.Results) != 1 {
		t.Fatalf("expected 1 result even on store error, got %d", len(run.Results))
	}
}

func TestSolvePuzzles_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ll := &cancelLines{fakeLines: fakeLines{"d1": sweep}, cancel: cancel}
	store := &fakeStore{}
	uc := newSolver(ll, store)

	run, id, err := uc.Execute(ctx, "day 1", []SolveRequest{
		{Key: domain.PuzzleKey{Day: 1, Part: 1}, InputPath: "d1"},
		{Key: domain.PuzzleKey{Day: 1, Part: 2}, InputPath: "d1"},
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if id != "" || store.saved {
		t.Fatalf("expected no save after cancellation")
	}
	// First puzzle completed before cancellation was detected.
	if len(run.Results) != 1 {
		t.Fatalf("expected 1 result (second puzzle skipped), got %d", len(run.Results))
	}
}
