package ports

// FileWriter is the port that persists generated content.
type FileWriter interface {
	// Write stores content under destination, relative to wherever the writer is rooted.
	Write(destination string, content []byte) error
}
