package domain

// WorkspaceSpec describes a workspace to create on disk.
type WorkspaceSpec struct {
	Root string
}
