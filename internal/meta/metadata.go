package meta

import (
    "bytes"
    "encoding/json"
    "sort"
)

// Attributes is an open string map describing one user. Keys carry no fixed schema.
type Attributes map[string]string

// Well-known user attribute keys.
const (
    KeyUsername = "username"
    KeyEmail    = "email"
    KeyPassword = "password"
)

const redactedValue = "********"

// sensitive lists keys masked by Redacted.
var sensitive = []string{KeyPassword}

func New(m map[string]string) Attributes {
    if m == nil { return Attributes{} }
    out := make(Attributes, len(m))
    for k, v := range m { out[k] = v }
    return out
}

func (a Attributes) Clone() Attributes { return New(a) }

func (a Attributes) Get(k string) (string, bool) { v, ok := a[k]; return v, ok }

func (a Attributes) Set(k, v string) { a[k] = v }

func (a Attributes) Del(k string) { delete(a, k) }

// Redacted returns a copy with sensitive values masked. Absent keys stay absent.
func (a Attributes) Redacted() Attributes {
    out := a.Clone()
    for _, k := range sensitive {
        if _, ok := out[k]; ok { out[k] = redactedValue }
    }
    return out
}

// Keys returns the attribute names sorted.
func (a Attributes) Keys() []string {
    keys := make([]string, 0, len(a))
    for k := range a { keys = append(keys, k) }
    sort.Strings(keys)
    return keys
}

// MarshalStableJSON returns a deterministic JSON representation with keys sorted.
func (a Attributes) MarshalStableJSON() ([]byte, error) {
    if len(a) == 0 { return []byte("{}"), nil }
    buf := &bytes.Buffer{}
    buf.WriteByte('{')
    for i, k := range a.Keys() {
        kb, err := json.Marshal(k)
        if err != nil { return nil, err }
        vb, err := json.Marshal(a[k])
        if err != nil { return nil, err }
        buf.Write(kb)
        buf.WriteByte(':')
        buf.Write(vb)
        if i < len(a)-1 { buf.WriteByte(',') }
    }
    buf.WriteByte('}')
    return buf.Bytes(), nil
}

func (a Attributes) MarshalJSON() ([]byte, error) { return a.MarshalStableJSON() }

func (a *Attributes) UnmarshalJSON(b []byte) error {
    if len(b) == 0 || bytes.Equal(b, []byte("null")) { *a = Attributes{}; return nil }
    var tmp map[string]string
    if err := json.Unmarshal(b, &tmp); err != nil { return err }
    *a = New(tmp)
    return nil
}
