package model

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/rotisserie/eris"
	"github.com/spf13/cast"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// OrderedMap is a string-keyed map that remembers insertion order. JSON
// objects decode into it with their key order intact, which is the order
// chart labels are emitted in. The zero value is an empty map.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// Set stores v under k. Replacing an existing key keeps its original position.
func (m *OrderedMap[V]) Set(k string, v V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
}

// Get returns the value stored under k.
func (m OrderedMap[V]) Get(k string) (V, bool) {
	v, ok := m.values[k]
	return v, ok
}

// Has reports whether k is present.
func (m OrderedMap[V]) Has(k string) bool {
	_, ok := m.values[k]
	return ok
}

// Keys returns the keys in insertion order.
func (m OrderedMap[V]) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of entries.
func (m OrderedMap[V]) Len() int { return len(m.keys) }

// Each calls fn for every entry in order.
func (m OrderedMap[V]) Each(fn func(k string, v V)) {
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}

// Clone returns a shallow copy that shares no backing storage with m.
func (m OrderedMap[V]) Clone() OrderedMap[V] {
	var out OrderedMap[V]
	m.Each(out.Set)
	return out
}

// UnmarshalJSON decodes a JSON object preserving key order. null decodes to
// an empty map.
func (m *OrderedMap[V]) UnmarshalJSON(data []byte) error {
	*m = OrderedMap[V]{}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return eris.Wrap(err, "model: read object start")
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return eris.Errorf("model: expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return eris.Wrap(err, "model: read object key")
		}
		key, ok := tok.(string)
		if !ok {
			return eris.Errorf("model: expected string key, got %v", tok)
		}

		var v V
		if err := dec.Decode(&v); err != nil {
			return eris.Wrapf(err, "model: decode value for %q", key)
		}
		m.Set(key, v)
	}

	if _, err := dec.Token(); err != nil {
		return eris.Wrap(err, "model: read object end")
	}
	return nil
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m OrderedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, eris.Wrap(err, "model: encode key")
		}
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, eris.Wrapf(err, "model: encode value for %q", k)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the map as a YAML mapping in insertion order.
func (m OrderedMap[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range m.keys {
		var val yaml.Node
		if err := val.Encode(m.values[k]); err != nil {
			return nil, eris.Wrapf(err, "model: encode yaml value for %q", k)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&val,
		)
	}
	return node, nil
}

// IntervalStat is the per-interval payload inside interval_footages and
// avg_interval_footages.
type IntervalStat struct {
	Footage   float64 `json:"footage" yaml:"footage"`
	WellCount float64 `json:"well_count" yaml:"well_count"`
}

// UnmarshalJSON coerces footage and well_count to numbers. Numeric strings
// are accepted, null or missing values are 0, and a bare number is read as
// the footage.
func (s *IntervalStat) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return eris.Wrap(err, "model: decode interval stat")
	}

	*s = IntervalStat{}
	switch v := raw.(type) {
	case map[string]any:
		s.Footage = toNumber(v["footage"], "footage")
		s.WellCount = toNumber(v["well_count"], "well_count")
	case nil:
	default:
		s.Footage = toNumber(v, "footage")
	}
	return nil
}

func toNumber(v any, field string) float64 {
	if v == nil {
		return 0
	}
	if n, ok := v.(json.Number); ok {
		v = n.String()
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		zap.L().Debug("model: non-numeric value treated as 0",
			zap.String("field", field),
			zap.Any("value", v),
		)
		return 0
	}
	return f
}

// Text is a string field that tolerates numbers and null on the wire.
type Text string

// UnmarshalJSON accepts strings, numbers, booleans and null.
func (t *Text) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return eris.Wrap(err, "model: decode text")
	}
	if raw == nil {
		*t = ""
		return nil
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		return eris.Wrap(err, "model: coerce text")
	}
	*t = Text(s)
	return nil
}

// String returns t as a plain string.
func (t Text) String() string { return string(t) }
