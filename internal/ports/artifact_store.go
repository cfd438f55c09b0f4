package ports

import "github.com/fawaz-alesayi/advent-of-crab/internal/domain"

// ArtifactStore persists run reports.
type ArtifactStore interface {
	SaveRun(run domain.RunResult) (id string, err error)
}
