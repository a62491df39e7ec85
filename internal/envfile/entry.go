// SPDX-License-Identifier: MPL-2.0

package envfile

import (
	"regexp"
	"strings"
)

// separator splits a raw line into name and value.
const separator = "="

// assignmentPattern is searched for anywhere in a raw line. A match alone does
// not make a line valid: ParseLine additionally requires exactly one separator.
var assignmentPattern = regexp.MustCompile(`[a-zA-Z_]+[a-zA-Z0-9_]*=[a-zA-Z0-9_-]+`)

type (
	// Entry is a validated name/value pair taken from one raw line.
	Entry struct {
		Name  string `toml:"name"`
		Value string `toml:"value"`
	}

	// Parser turns a raw line into an Entry. The boolean is false when the
	// line holds no usable entry.
	Parser func(line string) (Entry, bool)
)

// String returns the entry in NAME=VALUE form.
func (e Entry) String() string {
	return e.Name + separator + e.Value
}

// ParseLine extracts an Entry from a raw line.
//
// The line must contain a NAME=VALUE substring (searched, not anchored) and
// must split into exactly two non-empty segments on "=". Both segments are
// returned verbatim, so surrounding whitespace is kept.
func ParseLine(line string) (Entry, bool) {
	if line == "" {
		return Entry{}, false
	}
	if !assignmentPattern.MatchString(line) {
		return Entry{}, false
	}

	segments := strings.Split(line, separator)
	if len(segments) != 2 {
		return Entry{}, false
	}

	name, value := segments[0], segments[1]
	if name == "" || value == "" {
		return Entry{}, false
	}

	return Entry{Name: name, Value: value}, true
}
