// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"maps"
	"slices"
	"strings"
)

// MergeEnv applies overrides to a KEY=VALUE environment.
//
// Host entries keep their order; an overridden name keeps its position with
// the new value and later duplicates of it are dropped. Names only present
// in overrides are appended in sorted order. Host entries without "=" are
// kept as is.
func MergeEnv(host []string, overrides map[string]string) []string {
	merged := make([]string, 0, len(host)+len(overrides))
	applied := make(map[string]bool, len(overrides))

	for _, kv := range host {
		name, _, ok := strings.Cut(kv, "=")
		if !ok {
			merged = append(merged, kv)
			continue
		}
		value, override := overrides[name]
		if !override {
			merged = append(merged, kv)
			continue
		}
		if !applied[name] {
			merged = append(merged, name+"="+value)
			applied[name] = true
		}
	}

	for _, name := range slices.Sorted(maps.Keys(overrides)) {
		if !applied[name] {
			merged = append(merged, name+"="+overrides[name])
		}
	}
	return merged
}
