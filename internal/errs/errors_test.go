package errs

import (
    "errors"
    "fmt"
    "testing"
)

func TestFieldErrorUnwrapsToSentinel(t *testing.T) {
    err := Field("add", "item1", "quantity", "ten", ErrInvalid)
    if !errors.Is(err, ErrInvalid) {
        t.Fatalf("expected ErrInvalid, got %v", err)
    }
    if errors.Is(err, ErrNotFound) {
        t.Fatalf("unexpected ErrNotFound match")
    }
    want := "add: invalid key=item1 field=quantity got=string"
    if err.Error() != want {
        t.Fatalf("message: got %q want %q", err.Error(), want)
    }
}

func TestKind(t *testing.T) {
    cases := []struct {
        err  error
        want string
    }{
        {Wrap("remove", "x", ErrNotFound), "not_found"},
        {Wrap("add", "x", ErrConflict), "conflict"},
        {Field("add", "x", "grocery_type", nil, ErrMissingField), "missing_field"},
        {fmt.Errorf("outer: %w", Wrap("add", "", ErrInvalid)), "invalid"},
        {errors.New("boom"), ""},
    }
    for _, c := range cases {
        if got := Kind(c.err); got != c.want {
            t.Fatalf("Kind(%v) = %q want %q", c.err, got, c.want)
        }
    }
}
