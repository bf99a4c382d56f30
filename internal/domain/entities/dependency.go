package entities

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/mod/semver"
)

const (
	pathSeparator    = "/"
	fieldSeparator   = " "
	minFields        = 2 // path and version
	displaySegments  = 2
	majorVersionMark = 'v'
)

// Dependency is one direct module declared in a manifest require block.
type Dependency struct {
	Path        string // module path with any major-version suffix removed
	Version     string // version as written in the manifest
	DisplayName string // last two segments of Path
}

// NewDependency parses a single trimmed require-block line of the form
// "<path> <version>". The line is split on single spaces, so repeated
// spaces produce empty fields.
func NewDependency(line string) (Dependency, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) < minFields {
		return Dependency{}, &FormatError{Reason: ErrTooFewFields, Line: line}
	}

	path := trimMajorVersion(fields[0])
	return Dependency{
		Path:        path,
		Version:     fields[1],
		DisplayName: displayName(path),
	}, nil
}

// Markdown renders the dependency as a markdown link followed by its version.
func (d Dependency) Markdown() string {
	return fmt.Sprintf("[%s](https://%s) `(%s)`", d.DisplayName, d.Path, d.Version)
}

// HasCanonicalVersion reports whether Version is a valid semantic version.
// It is only used for diagnostics; rendering never depends on it.
func (d Dependency) HasCanonicalVersion() bool {
	return semver.IsValid(d.Version)
}

// trimMajorVersion drops a trailing "/vN..." segment. Only the character
// right after the "v" is checked, so "v2beta" is dropped as well.
func trimMajorVersion(path string) string {
	segments := strings.Split(path, pathSeparator)
	last := segments[len(segments)-1]
	if !isMajorVersionSegment(last) {
		return path
	}
	return strings.Join(segments[:len(segments)-1], pathSeparator)
}

func isMajorVersionSegment(segment string) bool {
	if len(segment) < 2 || segment[0] != majorVersionMark { //nolint:mnd // "v" plus one rune
		return false
	}
	r, _ := utf8.DecodeRuneInString(segment[1:])
	return unicode.IsDigit(r)
}

// displayName joins the last two path segments, or fewer if the path is short.
func displayName(path string) string {
	segments := strings.Split(path, pathSeparator)
	if len(segments) > displaySegments {
		segments = segments[len(segments)-displaySegments:]
	}
	return strings.Join(segments, pathSeparator)
}
