// Package grocery implements the grocery record rules: every stored record has
// a catalog-valid type, an integer quantity and an expiration date.
package grocery

import (
    "context"
    "io"
    "log/slog"
    "sort"

    "github.com/tinoosan/pantry/internal/dictionary"
    "github.com/tinoosan/pantry/internal/errs"
    "github.com/tinoosan/pantry/internal/pantry"
)

type Repo interface {
    ListItems(ctx context.Context) ([]string, error)
    Items(ctx context.Context) (map[string]pantry.Record, error)
    ItemExists(ctx context.Context, name string) (bool, error)
    ItemByName(ctx context.Context, name string) (pantry.Record, error)
    ItemTypes() map[string]pantry.GroceryType
}

type Writer interface {
    CreateItem(ctx context.Context, name string, r pantry.Record) (pantry.Record, error)
    UpdateItem(ctx context.Context, name string, r pantry.Record) (pantry.Record, error)
    SetItemQuantity(ctx context.Context, name string, quantity int) (pantry.Record, error)
    DeleteItem(ctx context.Context, name string) error
}

type Service interface {
    ListItems(ctx context.Context) ([]string, error)
    All(ctx context.Context) (map[string]pantry.Record, error)
    Exists(ctx context.Context, name string) (bool, error)
    Details(ctx context.Context, name string) (pantry.Record, error)
    DistinctTypes(ctx context.Context) ([]pantry.GroceryType, error)
    ItemsOfType(ctx context.Context, t pantry.GroceryType) ([]string, error)
    ValidateRecord(op, name string, in pantry.Fields) (pantry.Record, error)
    Add(ctx context.Context, name string, in pantry.Fields) (pantry.Record, error)
    Update(ctx context.Context, name string, in pantry.Fields) (pantry.Record, error)
    UpdateQuantity(ctx context.Context, name string, quantity int) (pantry.Record, error)
    UpdateQuantityValue(ctx context.Context, name string, v any) (pantry.Record, error)
    Remove(ctx context.Context, name string) error
}

type service struct {
    repo   Repo
    writer Writer
    log    *slog.Logger
}

func New(repo Repo, writer Writer, logger *slog.Logger) Service {
    if logger == nil { logger = slog.New(slog.NewTextHandler(io.Discard, nil)) }
    return &service{repo: repo, writer: writer, log: logger.With("component", "grocery")}
}

func (s *service) ListItems(ctx context.Context) ([]string, error) { return s.repo.ListItems(ctx) }

func (s *service) All(ctx context.Context) (map[string]pantry.Record, error) { return s.repo.Items(ctx) }

func (s *service) Exists(ctx context.Context, name string) (bool, error) {
    return s.repo.ItemExists(ctx, name)
}

func (s *service) Details(ctx context.Context, name string) (pantry.Record, error) {
    r, err := s.repo.ItemByName(ctx, name)
    if err != nil { return pantry.Record{}, errs.Wrap("details", name, err) }
    return r, nil
}

// DistinctTypes derives the set of types from stored records, not from the catalog.
func (s *service) DistinctTypes(ctx context.Context) ([]pantry.GroceryType, error) {
    items, err := s.repo.Items(ctx)
    if err != nil { return nil, err }
    seen := make(map[pantry.GroceryType]struct{})
    out := make([]pantry.GroceryType, 0)
    for _, r := range items {
        if _, ok := seen[r.GroceryType]; ok { continue }
        seen[r.GroceryType] = struct{}{}
        out = append(out, r.GroceryType)
    }
    sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
    return out, nil
}

// ItemsOfType returns errs.ErrNotFound only for a tag the catalog does not know.
func (s *service) ItemsOfType(_ context.Context, t pantry.GroceryType) ([]string, error) {
    names, ok := dictionary.ItemsOfType(t, s.repo)
    if !ok { return nil, errs.Wrap("items_of_type", string(t), errs.ErrNotFound) }
    return names, nil
}

// ValidateRecord checks field presence first, then catalog membership, then value types.
func (s *service) ValidateRecord(op, name string, in pantry.Fields) (pantry.Record, error) {
    if in == nil {
        return pantry.Record{}, errs.Field(op, name, "details", nil, errs.ErrInvalid)
    }
    for _, f := range pantry.RequiredFields {
        if _, ok := in[f]; !ok {
            return pantry.Record{}, errs.Field(op, name, f, nil, errs.ErrMissingField)
        }
    }
    rawType := in[pantry.FieldGroceryType]
    tag, ok := rawType.(string)
    if !ok {
        return pantry.Record{}, errs.Field(op, name, pantry.FieldGroceryType, rawType, errs.ErrInvalid)
    }
    if !dictionary.IsKnown(pantry.GroceryType(tag)) {
        return pantry.Record{}, &errs.FieldError{Op: op, Key: name, Field: pantry.FieldGroceryType, Got: tag, Err: errs.ErrInvalid}
    }
    qty, ok := pantry.AsInt(in[pantry.FieldQuantity])
    if !ok {
        return pantry.Record{}, errs.Field(op, name, pantry.FieldQuantity, in[pantry.FieldQuantity], errs.ErrInvalid)
    }
    exp, ok := in[pantry.FieldExpirationDate].(string)
    if !ok {
        return pantry.Record{}, errs.Field(op, name, pantry.FieldExpirationDate, in[pantry.FieldExpirationDate], errs.ErrInvalid)
    }
    return pantry.Record{GroceryType: pantry.GroceryType(tag), Quantity: qty, ExpirationDate: exp}, nil
}

func (s *service) Add(ctx context.Context, name string, in pantry.Fields) (pantry.Record, error) {
    if name == "" { return pantry.Record{}, errs.Field("add", name, "name", nil, errs.ErrInvalid) }
    exists, err := s.repo.ItemExists(ctx, name)
    if err != nil { return pantry.Record{}, err }
    if exists { return pantry.Record{}, errs.Wrap("add", name, errs.ErrConflict) }
    r, err := s.ValidateRecord("add", name, in)
    if err != nil { return pantry.Record{}, err }
    created, err := s.writer.CreateItem(ctx, name, r)
    if err != nil { return pantry.Record{}, errs.Wrap("add", name, err) }
    s.log.Debug("item added", "name", name, "grocery_type", string(r.GroceryType), "quantity", r.Quantity)
    return created, nil
}

func (s *service) Update(ctx context.Context, name string, in pantry.Fields) (pantry.Record, error) {
    if name == "" { return pantry.Record{}, errs.Field("update", name, "name", nil, errs.ErrInvalid) }
    exists, err := s.repo.ItemExists(ctx, name)
    if err != nil { return pantry.Record{}, err }
    if !exists { return pantry.Record{}, errs.Wrap("update", name, errs.ErrNotFound) }
    r, err := s.ValidateRecord("update", name, in)
    if err != nil { return pantry.Record{}, err }
    updated, err := s.writer.UpdateItem(ctx, name, r)
    if err != nil { return pantry.Record{}, errs.Wrap("update", name, err) }
    s.log.Debug("item updated", "name", name)
    return updated, nil
}

func (s *service) UpdateQuantity(ctx context.Context, name string, quantity int) (pantry.Record, error) {
    r, err := s.writer.SetItemQuantity(ctx, name, quantity)
    if err != nil { return pantry.Record{}, errs.Wrap("update_quantity", name, err) }
    s.log.Debug("item quantity updated", "name", name, "quantity", quantity)
    return r, nil
}

// UpdateQuantityValue is the untyped form of UpdateQuantity: existence is checked
// before the value is, so a missing item reports not found whatever v holds.
func (s *service) UpdateQuantityValue(ctx context.Context, name string, v any) (pantry.Record, error) {
    exists, err := s.repo.ItemExists(ctx, name)
    if err != nil { return pantry.Record{}, err }
    if !exists { return pantry.Record{}, errs.Wrap("update_quantity", name, errs.ErrNotFound) }
    q, err := ParseQuantity(name, v)
    if err != nil { return pantry.Record{}, err }
    return s.UpdateQuantity(ctx, name, q)
}

func (s *service) Remove(ctx context.Context, name string) error {
    if err := s.writer.DeleteItem(ctx, name); err != nil {
        return errs.Wrap("remove", name, err)
    }
    s.log.Debug("item removed", "name", name)
    return nil
}

// ParseQuantity converts untyped input into a quantity.
func ParseQuantity(name string, v any) (int, error) {
    if v == nil {
        return 0, errs.Field("update_quantity", name, pantry.FieldQuantity, nil, errs.ErrMissingField)
    }
    q, ok := pantry.AsInt(v)
    if !ok {
        return 0, errs.Field("update_quantity", name, pantry.FieldQuantity, v, errs.ErrInvalid)
    }
    return q, nil
}
