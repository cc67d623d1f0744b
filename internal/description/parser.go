package description

import (
	"sort"
	"strings"
)

// Value is a single metadata value. Defined is false when the key
// appeared on its own line with no value part; Text is empty in that
// case rather than an artifact of splitting.
type Value struct {
	Text    string
	Defined bool
}

// Metadata is the key/value mapping parsed from one description file.
// It is built once per file and immutable afterwards: checks read it
// through accessor methods and can never mutate it.
type Metadata struct {
	values map[string]Value
}

// Parse builds the metadata mapping from raw description file content.
//
// Lines that are empty after trimming are skipped, as are comment lines
// starting with '#'. Every other line splits at the first space into a
// key and an optional value, both whitespace-trimmed. Duplicate keys
// follow mapping semantics: the last occurrence wins.
func Parse(content []byte) *Metadata {
	values := make(map[string]Value)

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.SplitN(line, " ", 2)
		key := strings.TrimSpace(fields[0])
		if len(fields) == 2 {
			values[key] = Value{Text: strings.TrimSpace(fields[1]), Defined: true}
		} else {
			values[key] = Value{}
		}
	}

	return &Metadata{values: values}
}

// Has reports whether the key is present in the mapping. A bare key
// counts as present even though its value is absent.
func (m *Metadata) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Lookup returns the value for a key and whether the key is present.
func (m *Metadata) Lookup(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Text returns the trimmed value text for a key. It returns the empty
// string when the key is missing or has an absent value, so semantic
// checks can treat both uniformly.
func (m *Metadata) Text(key string) string {
	return m.values[key].Text
}

// Len returns the number of keys in the mapping.
func (m *Metadata) Len() int {
	return len(m.values)
}

// Keys returns the mapping's keys in sorted order. Insertion order is
// irrelevant for description files.
func (m *Metadata) Keys() []string {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
