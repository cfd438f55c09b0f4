package ports

// LineLoader loads an input file as an ordered list of lines.
type LineLoader interface {
	LoadLines(path string) ([]string, error)
}
