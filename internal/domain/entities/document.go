package entities

// DocumentHeader is the first line of every generated requirements document.
const DocumentHeader = "<!-- insert:REQUIREMENTS_BE -->"

const bulletPrefix = "- "

// ParseDependencies turns filtered require-block lines into dependencies,
// failing on the first malformed line.
func ParseDependencies(lines []string) ([]Dependency, error) {
	deps := make([]Dependency, 0, len(lines))
	for _, line := range lines {
		dep, err := NewDependency(line)
		if err != nil {
			return nil, err
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

// RenderDocument returns the document lines: the header followed by one
// bullet per dependency, in the given order.
func RenderDocument(deps []Dependency) []string {
	lines := make([]string, 0, len(deps)+1)
	lines = append(lines, DocumentHeader)
	for _, dep := range deps {
		lines = append(lines, bulletPrefix+dep.Markdown())
	}
	return lines
}
