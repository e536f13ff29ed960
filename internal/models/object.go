package models

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Members is a JSON object kept member by member, values untouched.
type Members map[string]json.RawMessage

type member struct {
	key   string
	value json.RawMessage
}

// writeObject encodes head first, then the remaining members in key order,
// then tail. Keys already written by head or tail are skipped in rest.
func writeObject(head []member, rest Members, tail []member) ([]byte, error) {
	seen := make(map[string]bool, len(head)+len(tail))
	for _, m := range head {
		seen[m.key] = true
	}
	for _, m := range tail {
		seen[m.key] = true
	}

	keys := make([]string, 0, len(rest))
	for k := range rest {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	n := 0
	write := func(key string, value json.RawMessage) error {
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		if n > 0 {
			buf.WriteByte(',')
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(value)
		n++
		return nil
	}

	for _, m := range head {
		if err := write(m.key, m.value); err != nil {
			return nil, err
		}
	}
	for _, k := range keys {
		if err := write(k, rest[k]); err != nil {
			return nil, err
		}
	}
	for _, m := range tail {
		if err := write(m.key, m.value); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// takeString removes key from m when it holds a JSON string and returns it.
// Any other value stays in m as it was.
func takeString(m Members, key string) (string, bool) {
	raw, ok := m[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	delete(m, key)
	return s, true
}

func (m Members) clone() Members {
	if m == nil {
		return nil
	}
	out := make(Members, len(m))
	for k, v := range m {
		out[k] = append(json.RawMessage(nil), v...)
	}
	return out
}

// String returns the member as a string, or "" when it is absent or not a
// JSON string.
func (m Members) String(key string) string {
	var s string
	if raw, ok := m[key]; ok {
		_ = json.Unmarshal(raw, &s)
	}
	return s
}
