package wire

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Pair is one key=value query parameter.
type Pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Params is an insertion-ordered query parameter multimap.
//
// Unlike url.Values, Params preserves the order parameters were added
// and keeps every duplicate key. Both properties are load-bearing: the
// API treats repeated keys at the same level as a conjunction, and the
// compiler's emission order is the canonical wire order.
type Params struct {
	pairs []Pair
}

// NewParams returns an empty parameter collection.
func NewParams() *Params {
	return &Params{}
}

// Add appends a key=value pair. Duplicate keys are kept.
func (p *Params) Add(key, value string) {
	p.pairs = append(p.pairs, Pair{Key: key, Value: value})
}

// Len returns the number of pairs. Safe on a nil receiver.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.pairs)
}

// Pairs returns a copy of the pairs in insertion order.
func (p *Params) Pairs() []Pair {
	if p == nil {
		return nil
	}
	out := make([]Pair, len(p.pairs))
	copy(out, p.pairs)
	return out
}

// Encode serializes the pairs as key=value joined by &, in insertion
// order, with no escaping. Escaping is the caller's concern: FullPath
// encodes the joined string as a whole, the curl renderer encodes each
// field separately.
func (p *Params) Encode() string {
	if p.Len() == 0 {
		return ""
	}
	parts := make([]string, 0, len(p.pairs))
	for _, pair := range p.pairs {
		parts = append(parts, pair.Key+"="+pair.Value)
	}
	return strings.Join(parts, "&")
}

// MarshalJSON serializes the multimap as a JSON array of {key,value}
// objects. An object would lose both duplicate keys and insertion
// order, so the array form is the only faithful serialization.
func (p *Params) MarshalJSON() ([]byte, error) {
	if p.Len() == 0 {
		return []byte("[]"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, pair := range p.pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		item, err := json.Marshal(pair)
		if err != nil {
			return nil, err
		}
		buf.Write(item)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
