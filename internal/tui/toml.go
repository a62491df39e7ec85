// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/enver/enver/internal/envfile"
)

// entriesDocument is the TOML shape of a list: one [[entry]] table per
// entry, in file order.
type entriesDocument struct {
	Entries []envfile.Entry `toml:"entry"`
}

// EntriesTOML encodes entries as an array of [[entry]] tables with name and
// value keys.
func EntriesTOML(entries []envfile.Entry) (string, error) {
	if entries == nil {
		entries = []envfile.Entry{}
	}
	data, err := toml.Marshal(entriesDocument{Entries: entries})
	if err != nil {
		return "", fmt.Errorf("failed to encode entries as TOML: %w", err)
	}
	return string(data), nil
}
