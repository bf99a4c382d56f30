package entities

import "strings"

const (
	DefaultStartMarker = "require ("
	DefaultEndMarker   = ")"

	// IndirectTag marks a transitive dependency in a require block.
	IndirectTag = "// indirect"
)

// BlockMarkers delimit the dependency declarations inside a manifest.
type BlockMarkers struct {
	Start string
	End   string
}

// DefaultBlockMarkers returns the markers of a Go module require block.
func DefaultBlockMarkers() BlockMarkers {
	return BlockMarkers{Start: DefaultStartMarker, End: DefaultEndMarker}
}

// ExtractBlock returns the lines strictly between the first start marker and
// the first end marker. Only the first block is considered.
func ExtractBlock(lines []string, markers BlockMarkers) ([]string, error) {
	startIdx := indexOf(lines, markers.Start)
	if startIdx < 0 {
		return nil, &FormatError{Reason: ErrStartMarkerNotFound}
	}

	endIdx := indexOf(lines, markers.End)
	if endIdx < 0 {
		return nil, &FormatError{Reason: ErrEndMarkerNotFound}
	}
	if endIdx <= startIdx {
		return nil, &FormatError{Reason: ErrEndBeforeStart}
	}

	block := make([]string, 0, endIdx-startIdx-1)
	block = append(block, lines[startIdx+1:endIdx]...)
	return block, nil
}

// FilterIndirect drops every line tagged as an indirect dependency,
// keeping the order of the rest.
func FilterIndirect(lines []string) []string {
	direct := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasSuffix(line, IndirectTag) {
			continue
		}
		direct = append(direct, line)
	}
	return direct
}

// indexOf returns the index of the first line exactly equal to marker, or -1.
func indexOf(lines []string, marker string) int {
	for i, line := range lines {
		if line == marker {
			return i
		}
	}
	return -1
}
