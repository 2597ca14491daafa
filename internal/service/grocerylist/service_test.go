package grocerylist_test

import (
    "context"
    "encoding/json"
    "testing"

    "github.com/stretchr/testify/suite"

    "github.com/tinoosan/pantry/internal/errs"
    "github.com/tinoosan/pantry/internal/pantry"
    "github.com/tinoosan/pantry/internal/service/grocerylist"
    "github.com/tinoosan/pantry/internal/storage/memory"
)

type GroceryListSuite struct {
    suite.Suite
    ctx   context.Context
    store *memory.Store
    svc   grocerylist.Service
}

func TestGroceryListSuite(t *testing.T) {
    suite.Run(t, new(GroceryListSuite))
}

func (s *GroceryListSuite) SetupTest() {
    s.ctx = context.Background()
    s.store = memory.New()
    s.svc = grocerylist.New(s.store, s.store, nil)
}

func weekly() map[string]any {
    return map[string]any{
        "user_name": "alice",
        "list_name": "weekly",
        "num_items": json.Number("2"),
        "groc_list": map[string]any{"milk": json.Number("1"), "eggs": float64(12)},
    }
}

func (s *GroceryListSuite) TestAddAndRead() {
    owner, l, err := grocerylist.ParseSubmission(weekly())
    s.Require().NoError(err)
    s.Equal("alice", owner)
    s.Require().NoError(s.svc.Add(s.ctx, owner, l))

    got, err := s.svc.Get(s.ctx, "alice")
    s.Require().NoError(err)
    s.Equal(pantry.GroceryList{ListName: "weekly", NumItems: 2, Items: map[string]int{"milk": 1, "eggs": 12}}, got)

    owners, err := s.svc.Owners(s.ctx)
    s.Require().NoError(err)
    s.Equal([]string{"alice"}, owners)
}

func (s *GroceryListSuite) TestAddReplacesPreviousList() {
    s.Require().NoError(s.svc.Add(s.ctx, "alice", pantry.GroceryList{ListName: "weekly", NumItems: 1, Items: map[string]int{"milk": 1}}))
    s.Require().NoError(s.svc.Add(s.ctx, "alice", pantry.GroceryList{ListName: "party", NumItems: 0}))

    all, err := s.svc.All(s.ctx)
    s.Require().NoError(err)
    s.Len(all, 1)
    s.Equal("party", all["alice"].ListName)
    s.Empty(all["alice"].Items)
}

func (s *GroceryListSuite) TestReadsAreCopies() {
    items := map[string]int{"milk": 1}
    s.Require().NoError(s.svc.Add(s.ctx, "alice", pantry.GroceryList{ListName: "weekly", NumItems: 1, Items: items}))
    items["milk"] = 99

    all, err := s.svc.All(s.ctx)
    s.Require().NoError(err)
    all["alice"].Items["milk"] = 42

    got, err := s.svc.Get(s.ctx, "alice")
    s.Require().NoError(err)
    s.Equal(1, got.Items["milk"])
}

func (s *GroceryListSuite) TestGetMissingOwner() {
    _, err := s.svc.Get(s.ctx, "ghost")
    s.ErrorIs(err, errs.ErrNotFound)
    s.ErrorIs(s.svc.Add(s.ctx, "", pantry.GroceryList{}), errs.ErrMissingField)
}

func (s *GroceryListSuite) TestParseSubmissionErrors() {
    cases := map[string]struct {
        mutate func(map[string]any)
        want   error
    }{
        "missing owner":       {func(m map[string]any) { delete(m, "user_name") }, errs.ErrMissingField},
        "empty owner":         {func(m map[string]any) { m["user_name"] = "" }, errs.ErrMissingField},
        "numeric owner":       {func(m map[string]any) { m["user_name"] = 7 }, errs.ErrInvalid},
        "missing list name":   {func(m map[string]any) { delete(m, "list_name") }, errs.ErrMissingField},
        "missing count":       {func(m map[string]any) { delete(m, "num_items") }, errs.ErrMissingField},
        "fractional count":    {func(m map[string]any) { m["num_items"] = 1.5 }, errs.ErrInvalid},
        "list not an object":  {func(m map[string]any) { m["groc_list"] = []any{"milk"} }, errs.ErrInvalid},
        "non-integer amount":  {func(m map[string]any) { m["groc_list"] = map[string]any{"milk": "one"} }, errs.ErrInvalid},
    }
    for name, c := range cases {
        s.Run(name, func() {
            in := weekly()
            c.mutate(in)
            _, _, err := grocerylist.ParseSubmission(in)
            s.ErrorIs(err, c.want)
        })
    }

    in := weekly()
    delete(in, "groc_list")
    _, l, err := grocerylist.ParseSubmission(in)
    s.Require().NoError(err)
    s.NotNil(l.Items)
    s.Empty(l.Items)
}
