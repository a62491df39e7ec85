// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/exp/slices"
)

const (
	// BorderNone renders plain columns. The zero value behaves the same.
	BorderNone BorderStyle = "none"
	// BorderNormal renders a standard single-line border.
	BorderNormal BorderStyle = "normal"
	// BorderRounded renders a single-line border with rounded corners.
	BorderRounded BorderStyle = "rounded"
	// BorderThick renders a thick/heavy border.
	BorderThick BorderStyle = "thick"
	// BorderDouble renders a double-line border.
	BorderDouble BorderStyle = "double"
)

// ErrInvalidBorderStyle is the sentinel error wrapped by InvalidBorderStyleError.
var ErrInvalidBorderStyle = errors.New("invalid border style")

var borderStyles = []BorderStyle{BorderNone, BorderNormal, BorderRounded, BorderThick, BorderDouble}

type (
	// BorderStyle selects the border drawn around a table.
	BorderStyle string

	// InvalidBorderStyleError is returned when a BorderStyle value is not recognized.
	// It wraps ErrInvalidBorderStyle for errors.Is() compatibility.
	InvalidBorderStyleError struct {
		Value BorderStyle
	}
)

// BorderStyles returns every accepted style name, BorderNone first.
func BorderStyles() []BorderStyle {
	return slices.Clone(borderStyles)
}

func (b BorderStyle) String() string { return string(b) }

// Validate returns an *InvalidBorderStyleError unless b is one of
// BorderStyles.
func (b BorderStyle) Validate() error {
	if slices.Contains(borderStyles, b) {
		return nil
	}
	return &InvalidBorderStyleError{Value: b}
}

// drawn reports whether the style draws any border characters.
func (b BorderStyle) drawn() bool {
	return b != BorderNone && b != ""
}

// lipglossBorder maps the style to its lipgloss border. BorderNone and
// unknown values map to the hidden border, which draws nothing.
func (b BorderStyle) lipglossBorder() lipgloss.Border {
	switch b {
	case BorderNormal:
		return lipgloss.NormalBorder()
	case BorderRounded:
		return lipgloss.RoundedBorder()
	case BorderThick:
		return lipgloss.ThickBorder()
	case BorderDouble:
		return lipgloss.DoubleBorder()
	default:
		return lipgloss.HiddenBorder()
	}
}

func (e *InvalidBorderStyleError) Error() string {
	names := make([]string, len(borderStyles))
	for i, b := range borderStyles {
		names[i] = string(b)
	}
	return fmt.Sprintf("invalid border style %q (valid: %s)", e.Value, strings.Join(names, ", "))
}

func (e *InvalidBorderStyleError) Unwrap() error { return ErrInvalidBorderStyle }
