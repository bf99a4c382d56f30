package repositories

// DocumentRepository persists a generated document.
type DocumentRepository interface {
	// Write replaces the file at path with the given lines, each followed by
	// a newline. An unwritable path yields an *entities.FileAccessError.
	Write(path string, lines []string) error
}
