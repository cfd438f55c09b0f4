package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fawaz-alesayi/advent-of-crab/internal/domain"
	"github.com/fawaz-alesayi/advent-of-crab/internal/ports"
)

// SolveRequest asks for one puzzle part to be solved against one input file.
type SolveRequest struct {
	Key       domain.PuzzleKey
	InputPath string
	Want      *int
}

type SolvePuzzles struct {
	catalog ports.PuzzleCatalog
	lines   ports.LineLoader
	store   ports.ArtifactStore

	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

type SolveOption func(*SolvePuzzles)

func WithLogger(l *zap.Logger) SolveOption {
	return func(uc *SolvePuzzles) {
		if l != nil {
			uc.logger = l
		}
	}
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) SolveOption {
	return func(uc *SolvePuzzles) {
		if now != nil {
			uc.now = now
		}
	}
}

func WithIDGenerator(newID func() string) SolveOption {
	return func(uc *SolvePuzzles) {
		if newID != nil {
			uc.newID = newID
		}
	}
}

// NewSolvePuzzles wires the use case. store may be nil to skip saving.
func NewSolvePuzzles(catalog ports.PuzzleCatalog, ll ports.LineLoader, store ports.ArtifactStore, opts ...SolveOption) *SolvePuzzles {
	uc := &SolvePuzzles{
		catalog: catalog,
		lines:   ll,
		store:   store,
		logger:  zap.NewNop(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute solves every request in order. A request that fails (unknown
// puzzle, unreadable input, malformed line) is reported with VerdictFailed and
// the remaining requests still run. The returned error is a context error or
// a failure to save the run; the run is returned in both cases.
func (uc *SolvePuzzles) Execute(ctx context.Context, label string, reqs []SolveRequest) (domain.RunResult, string, error) {
	run := domain.RunResult{
		ID:        uc.newID(),
		Label:     label,
		StartedAt: uc.now(),
		Results:   make([]domain.PuzzleResult, 0, len(reqs)),
	}
	log := uc.logger.With(zap.String("run_id", run.ID), zap.String("label", label))

	for _, req := range reqs {
		if err := ctx.Err(); err != nil {
			run.EndedAt = uc.now()
			return run, "", err
		}

		res := uc.solveOne(req)
		if res.Error != nil {
			log.Warn("puzzle.failed",
				zap.Stringer("puzzle", req.Key),
				zap.String("input", req.InputPath),
				zap.String("kind", string(res.Error.Kind)),
				zap.String("error", res.Error.Message))
		} else {
			log.Info("puzzle.solved",
				zap.Stringer("puzzle", req.Key),
				zap.String("input", req.InputPath),
				zap.Intp("answer", res.Answer),
				zap.String("verdict", string(res.Verdict)),
				zap.Int64("duration_us", res.DurationUS))
		}
		run.Results = append(run.Results, res)
	}

	run.EndedAt = uc.now()

	if uc.store == nil {
		return run, "", nil
	}

	id, err := uc.store.SaveRun(run)
	if err != nil {
		log.Error("run.save_failed", zap.Error(err))
		return run, "", err
	}
	log.Debug("run.saved", zap.String("artifact", id))
	return run, id, nil
}

func (uc *SolvePuzzles) solveOne(req SolveRequest) domain.PuzzleResult {
	res := domain.PuzzleResult{
		Day:       req.Key.Day,
		Part:      req.Key.Part,
		InputPath: req.InputPath,
		Want:      req.Want,
	}

	fail := func(err error) domain.PuzzleResult {
		res.Verdict = domain.VerdictFailed
		res.Error = domain.NewRunError(err)
		return res
	}

	p, err := uc.catalog.Lookup(req.Key)
	if err != nil {
		return fail(err)
	}
	res.Title = p.Title

	lines, err := uc.lines.LoadLines(req.InputPath)
	if err != nil {
		return fail(err)
	}

	start := uc.now()
	answer, err := p.Solve(lines)
	res.DurationUS = uc.now().Sub(start).Microseconds()
	if err != nil {
		return fail(&domain.OpError{
			Op:   "usecase.solve",
			Kind: domain.ClassifyError(err),
			Path: req.InputPath,
			Err:  err,
		})
	}

	value := answer.Value
	res.Answer = &value
	res.Records = answer.Records
	res.Verdict = judge(value, req.Want)
	return res
}

func judge(got int, want *int) domain.Verdict {
	switch {
	case want == nil:
		return domain.VerdictUnchecked
	case *want == got:
		return domain.VerdictCorrect
	default:
		return domain.VerdictWrong
	}
}
