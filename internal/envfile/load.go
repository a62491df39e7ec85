// SPDX-License-Identifier: MPL-2.0

package envfile

import (
	"errors"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/enver/enver/internal/issue"
)

// ErrNotText is returned when an env file's content is not valid UTF-8.
var ErrNotText = errors.New("content is not valid UTF-8 text")

// ReadLines reads the file at path and splits its content on "\n".
//
// A trailing newline yields a final empty line. An empty path means no file
// was supplied and yields no lines and no error. Any failure to read the file
// is returned as an *issue.ActionableError naming the path.
func ReadLines(path string) ([]string, error) {
	if path == "" {
		return []string{}, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, readError(path, err)
	}
	if !utf8.Valid(content) {
		return nil, readError(path, ErrNotText)
	}

	return strings.Split(string(content), "\n"), nil
}

// LoadMap reads path and collects its entries into a keyed mapping.
func LoadMap(path string) (map[string]string, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	return CollectMap(lines, ParseLine), nil
}

// LoadEntries reads path and collects its entries in file order.
func LoadEntries(path string) ([]Entry, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	return CollectEntries(lines, ParseLine), nil
}

func readError(path string, cause error) error {
	ctx := issue.NewErrorContext().
		WithOperation("read env file").
		WithResource(path)

	switch {
	case errors.Is(cause, os.ErrNotExist):
		ctx.WithIssue(issue.EnvFileNotFoundId).
			WithSuggestion("Verify the file path is correct")
	case errors.Is(cause, os.ErrPermission):
		ctx.WithIssue(issue.PermissionDeniedId).
			WithSuggestion("Check that the file is readable by the current user")
	case errors.Is(cause, ErrNotText):
		ctx.WithIssue(issue.EnvFileUnreadableId).
			WithSuggestion("Env files must be plain UTF-8 text")
	default:
		ctx.WithIssue(issue.EnvFileUnreadableId).
			WithSuggestionf("Check that %s is a regular file", path)
	}

	return ctx.Wrap(cause).BuildError()
}
