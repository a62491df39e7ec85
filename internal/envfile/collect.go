// SPDX-License-Identifier: MPL-2.0

package envfile

// CollectMap parses every line and returns the resulting name/value mapping.
// When a name appears more than once the last occurrence wins. Lines the
// parser rejects contribute nothing.
func CollectMap(lines []string, parse Parser) map[string]string {
	env := make(map[string]string)
	for _, line := range lines {
		entry, ok := parse(line)
		if !ok {
			continue
		}
		env[entry.Name] = entry.Value
	}
	return env
}

// CollectEntries parses every line and returns the accepted entries in input
// order. Duplicate names are kept as separate entries.
func CollectEntries(lines []string, parse Parser) []Entry {
	var entries []Entry
	for _, line := range lines {
		if entry, ok := parse(line); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}
