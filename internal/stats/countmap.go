package stats

import (
	"bytes"
	"encoding/json"
)

// CountMap counts occurrences per string key while remembering the order in
// which keys were first seen. Plain Go maps randomize iteration and
// encoding/json sorts object keys, so the map marshals itself to keep group
// ordering stable for the dashboard payload.
type CountMap struct {
	keys   []string
	counts map[string]int
}

// NewCountMap creates an empty CountMap.
func NewCountMap() *CountMap {
	return &CountMap{counts: make(map[string]int)}
}

// Add increments the count for key, registering it on first occurrence.
func (m *CountMap) Add(key string) {
	if _, ok := m.counts[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.counts[key]++
}

// Get returns the count for key, zero if the key was never added.
func (m *CountMap) Get(key string) int {
	return m.counts[key]
}

// Len returns the number of distinct keys.
func (m *CountMap) Len() int {
	return len(m.keys)
}

// Keys returns the keys in first-occurrence order.
func (m *CountMap) Keys() []string {
	return m.keys
}

// Total returns the sum of all counts.
func (m *CountMap) Total() int {
	total := 0
	for _, n := range m.counts {
		total += n
	}
	return total
}

// MarshalJSON encodes the map as a JSON object in first-occurrence key order.
// An empty map encodes as {} rather than null.
func (m *CountMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		n, err := json.Marshal(m.counts[key])
		if err != nil {
			return nil, err
		}
		buf.Write(n)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
