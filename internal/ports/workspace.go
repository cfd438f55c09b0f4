package ports

import "github.com/fawaz-alesayi/advent-of-crab/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
