// Package domain contains the core model shared by the puzzle solvers, the
// use cases and the CLI.
//
// The domain does not depend on YAML parsing or the filesystem. Infra
// adapters map into and from these types.
package domain
