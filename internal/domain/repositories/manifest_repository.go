package repositories

// ManifestRepository reads a dependency manifest.
type ManifestRepository interface {
	// ReadLines returns every line of the manifest with surrounding
	// whitespace trimmed. A missing or unreadable file yields an
	// *entities.FileAccessError.
	ReadLines(path string) ([]string, error)
}
