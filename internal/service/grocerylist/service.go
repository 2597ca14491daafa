// Package grocerylist stores one named shopping list per user.
// Like users, a submission for an existing owner replaces the previous list.
package grocerylist

import (
    "context"
    "io"
    "log/slog"

    "github.com/tinoosan/pantry/internal/errs"
    "github.com/tinoosan/pantry/internal/pantry"
)

type Repo interface {
    ListOwners(ctx context.Context) ([]string, error)
    Lists(ctx context.Context) (map[string]pantry.GroceryList, error)
    ListByOwner(ctx context.Context, owner string) (pantry.GroceryList, error)
}

type Writer interface {
    PutList(ctx context.Context, owner string, l pantry.GroceryList) error
}

type Service interface {
    Owners(ctx context.Context) ([]string, error)
    All(ctx context.Context) (map[string]pantry.GroceryList, error)
    Get(ctx context.Context, owner string) (pantry.GroceryList, error)
    Add(ctx context.Context, owner string, l pantry.GroceryList) error
}

type service struct {
    repo   Repo
    writer Writer
    log    *slog.Logger
}

func New(repo Repo, writer Writer, logger *slog.Logger) Service {
    if logger == nil { logger = slog.New(slog.NewTextHandler(io.Discard, nil)) }
    return &service{repo: repo, writer: writer, log: logger.With("component", "grocerylist")}
}

func (s *service) Owners(ctx context.Context) ([]string, error) { return s.repo.ListOwners(ctx) }

func (s *service) All(ctx context.Context) (map[string]pantry.GroceryList, error) { return s.repo.Lists(ctx) }

func (s *service) Get(ctx context.Context, owner string) (pantry.GroceryList, error) {
    l, err := s.repo.ListByOwner(ctx, owner)
    if err != nil { return pantry.GroceryList{}, errs.Wrap("get_list", owner, err) }
    return l, nil
}

// Add stores l for owner, replacing any list the owner already had.
// The owner does not have to be a registered user.
func (s *service) Add(ctx context.Context, owner string, l pantry.GroceryList) error {
    if owner == "" {
        return errs.Field("add_list", owner, pantry.FieldListOwner, nil, errs.ErrMissingField)
    }
    if err := s.writer.PutList(ctx, owner, l.Clone()); err != nil {
        return errs.Wrap("add_list", owner, err)
    }
    s.log.Debug("grocery list stored", "owner", owner, "list_name", l.ListName, "entries", len(l.Items))
    return nil
}

// ParseSubmission validates an untyped list submission. user_name, list_name and
// num_items are required; groc_list is optional and must map item names to integers.
func ParseSubmission(in map[string]any) (string, pantry.GroceryList, error) {
    const op = "add_list"
    owner, err := requiredString(op, "", in, pantry.FieldListOwner)
    if err != nil { return "", pantry.GroceryList{}, err }
    name, err := requiredString(op, owner, in, pantry.FieldListName)
    if err != nil { return "", pantry.GroceryList{}, err }

    raw, ok := in[pantry.FieldNumItems]
    if !ok || raw == nil {
        return "", pantry.GroceryList{}, errs.Field(op, owner, pantry.FieldNumItems, nil, errs.ErrMissingField)
    }
    n, ok := pantry.AsInt(raw)
    if !ok {
        return "", pantry.GroceryList{}, errs.Field(op, owner, pantry.FieldNumItems, raw, errs.ErrInvalid)
    }

    l := pantry.GroceryList{ListName: name, NumItems: n, Items: map[string]int{}}
    switch entries := in[pantry.FieldListItems].(type) {
    case nil:
    case map[string]any:
        for item, v := range entries {
            amount, ok := pantry.AsInt(v)
            if !ok {
                return "", pantry.GroceryList{}, errs.Field(op, owner, pantry.FieldListItems+"."+item, v, errs.ErrInvalid)
            }
            l.Items[item] = amount
        }
    default:
        return "", pantry.GroceryList{}, errs.Field(op, owner, pantry.FieldListItems, entries, errs.ErrInvalid)
    }
    return owner, l, nil
}

func requiredString(op, key string, in map[string]any, field string) (string, error) {
    raw, ok := in[field]
    if !ok || raw == nil {
        return "", errs.Field(op, key, field, nil, errs.ErrMissingField)
    }
    v, ok := raw.(string)
    if !ok {
        return "", errs.Field(op, key, field, raw, errs.ErrInvalid)
    }
    if v == "" {
        return "", errs.Field(op, key, field, nil, errs.ErrMissingField)
    }
    return v, nil
}
