package meta

import (
    "encoding/json"
    "testing"
)

func TestSetGetDelClone(t *testing.T) {
    attrs := New(nil)
    attrs.Set(KeyEmail, "a@x.com")
    if value, ok := attrs.Get(KeyEmail); !ok || value != "a@x.com" {
        t.Fatalf("get failed")
    }
    cloned := attrs.Clone()
    cloned.Set(KeyEmail, "b@x.com")
    if attrs[KeyEmail] != "a@x.com" {
        t.Fatalf("clone aliases original: %+v", attrs)
    }
    attrs.Del(KeyEmail)
    if _, ok := attrs.Get(KeyEmail); ok {
        t.Fatalf("del failed")
    }
}

func TestRedacted(t *testing.T) {
    attrs := New(map[string]string{KeyEmail: "a@x.com", KeyPassword: "p"})
    red := attrs.Redacted()
    if red[KeyPassword] == "p" || red[KeyPassword] == "" {
        t.Fatalf("password not masked: %+v", red)
    }
    if attrs[KeyPassword] != "p" {
        t.Fatalf("redaction mutated original")
    }
    noPass := New(map[string]string{KeyEmail: "a@x.com"}).Redacted()
    if _, ok := noPass[KeyPassword]; ok {
        t.Fatalf("redaction must not add absent keys")
    }
}

func TestStableJSONAndRoundtrip(t *testing.T) {
    attrs := New(map[string]string{"password": "p", "email": "a@x.com"})
    b1, err := attrs.MarshalStableJSON()
    if err != nil {
        t.Fatalf("marshal: %v", err)
    }
    if string(b1) != `{"email":"a@x.com","password":"p"}` {
        t.Fatalf("unexpected stable json: %s", string(b1))
    }
    var unmarshaled Attributes
    if err := json.Unmarshal(b1, &unmarshaled); err != nil {
        t.Fatalf("unmarshal: %v", err)
    }
    if len(unmarshaled) != 2 || unmarshaled[KeyEmail] != "a@x.com" {
        t.Fatalf("roundtrip mismatch: %+v", unmarshaled)
    }
    var empty Attributes
    if err := json.Unmarshal([]byte("null"), &empty); err != nil || empty == nil {
        t.Fatalf("null should decode to empty attributes: %v %+v", err, empty)
    }
}
