// Package memory holds the process-lifetime record maps for groceries, users
// and grocery lists. Validation lives in the service layer.
package memory

import (
    "context"
    "sort"
    "sync"

    "github.com/tinoosan/pantry/internal/errs"
    "github.com/tinoosan/pantry/internal/meta"
    "github.com/tinoosan/pantry/internal/pantry"
)

// Store is an in-memory implementation of the grocery, user and list repositories.
// It is guarded by an RWMutex; every read hands out a copy.
type Store struct {
    mu        sync.RWMutex
    groceries map[string]pantry.Record
    users     map[string]meta.Attributes
    lists     map[string]pantry.GroceryList
    // onChange is invoked after each successful mutation with the new sizes.
    onChange  func(items, users, lists int)
}

// New constructs an empty in-memory store.
func New() *Store {
    return &Store{
        groceries: make(map[string]pantry.Record),
        users:     make(map[string]meta.Attributes),
        lists:     make(map[string]pantry.GroceryList),
    }
}

// OnChange registers fn to observe collection sizes after writes. Used for gauges.
func (s *Store) OnChange(fn func(items, users, lists int)) {
    s.mu.Lock()
    s.onChange = fn
    items, users, lists := len(s.groceries), len(s.users), len(s.lists)
    s.mu.Unlock()
    if fn != nil { fn(items, users, lists) }
}

// Seed helpers for local dev/tests. They bypass validation.
func (s *Store) SeedItem(name string, r pantry.Record) { s.mu.Lock(); s.groceries[name] = r; s.notifyLocked(); s.mu.Unlock() }
func (s *Store) SeedUser(username string, a meta.Attributes) {
    s.mu.Lock(); s.users[username] = a.Clone(); s.notifyLocked(); s.mu.Unlock()
}

func (s *Store) Reset() {
    s.mu.Lock()
    s.groceries = map[string]pantry.Record{}
    s.users = map[string]meta.Attributes{}
    s.lists = map[string]pantry.GroceryList{}
    s.notifyLocked()
    s.mu.Unlock()
}

// Ready implements the readiness probe; the in-memory store is always ready.
func (s *Store) Ready(_ context.Context) error { return nil }

// --- Groceries ---

// ListItems returns every item name, sorted.
func (s *Store) ListItems(_ context.Context) ([]string, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make([]string, 0, len(s.groceries))
    for name := range s.groceries {
        out = append(out, name)
    }
    sort.Strings(out)
    return out, nil
}

// Items returns a copy of the whole grocery map.
func (s *Store) Items(_ context.Context) (map[string]pantry.Record, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make(map[string]pantry.Record, len(s.groceries))
    for name, r := range s.groceries {
        out[name] = r
    }
    return out, nil
}

// ItemTypes returns the type of each item by name. Satisfies dictionary.ItemSource.
func (s *Store) ItemTypes() map[string]pantry.GroceryType {
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make(map[string]pantry.GroceryType, len(s.groceries))
    for name, r := range s.groceries {
        out[name] = r.GroceryType
    }
    return out
}

func (s *Store) ItemExists(_ context.Context, name string) (bool, error) {
    s.mu.RLock(); defer s.mu.RUnlock()
    _, ok := s.groceries[name]
    return ok, nil
}

// ItemByName returns a single record or errs.ErrNotFound.
func (s *Store) ItemByName(_ context.Context, name string) (pantry.Record, error) {
    s.mu.RLock(); defer s.mu.RUnlock()
    r, ok := s.groceries[name]
    if !ok { return pantry.Record{}, errs.ErrNotFound }
    return r, nil
}

// CreateItem inserts a record; errs.ErrConflict if the name is taken.
func (s *Store) CreateItem(_ context.Context, name string, r pantry.Record) (pantry.Record, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    if _, ok := s.groceries[name]; ok { return pantry.Record{}, errs.ErrConflict }
    s.groceries[name] = r
    s.notifyLocked()
    return r, nil
}

// UpdateItem replaces an existing record wholesale; errs.ErrNotFound if absent.
func (s *Store) UpdateItem(_ context.Context, name string, r pantry.Record) (pantry.Record, error) {
    s.mu.Lock(); defer s.mu.Unlock()
    if _, ok := s.groceries[name]; !ok { return pantry.Record{}, errs.ErrNotFound }
    s.groceries[name] = r
    return r, nil
}

// SetItemQuantity changes only the quantity of an existing record.
func (s *Store) SetItemQuantity(_ context.Context, name string, quantity int) (pantry.Record, error) {
    s.mu.Lock(); defer s.mu.Unlock()
    r, ok := s.groceries[name]
    if !ok { return pantry.Record{}, errs.ErrNotFound }
    r.Quantity = quantity
    s.groceries[name] = r
    return r, nil
}

// DeleteItem removes a record; errs.ErrNotFound if absent.
func (s *Store) DeleteItem(_ context.Context, name string) error {
    s.mu.Lock(); defer s.mu.Unlock()
    if _, ok := s.groceries[name]; !ok { return errs.ErrNotFound }
    delete(s.groceries, name)
    s.notifyLocked()
    return nil
}

// --- Users ---

// ListUsernames returns every username, sorted.
func (s *Store) ListUsernames(_ context.Context) ([]string, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make([]string, 0, len(s.users))
    for name := range s.users {
        out = append(out, name)
    }
    sort.Strings(out)
    return out, nil
}

// Users returns a deep copy of the user map.
func (s *Store) Users(_ context.Context) (map[string]meta.Attributes, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make(map[string]meta.Attributes, len(s.users))
    for name, a := range s.users {
        out[name] = a.Clone()
    }
    return out, nil
}

// PutUser inserts or overwrites a user record.
func (s *Store) PutUser(_ context.Context, username string, a meta.Attributes) error {
    s.mu.Lock(); defer s.mu.Unlock()
    s.users[username] = a.Clone()
    s.notifyLocked()
    return nil
}

// --- Grocery lists ---

// ListOwners returns the username of every list holder, sorted.
func (s *Store) ListOwners(_ context.Context) ([]string, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make([]string, 0, len(s.lists))
    for owner := range s.lists {
        out = append(out, owner)
    }
    sort.Strings(out)
    return out, nil
}

// Lists returns a deep copy of every grocery list keyed by owner.
func (s *Store) Lists(_ context.Context) (map[string]pantry.GroceryList, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make(map[string]pantry.GroceryList, len(s.lists))
    for owner, l := range s.lists {
        out[owner] = l.Clone()
    }
    return out, nil
}

// ListByOwner returns the list held by owner or errs.ErrNotFound.
func (s *Store) ListByOwner(_ context.Context, owner string) (pantry.GroceryList, error) {
    s.mu.RLock(); defer s.mu.RUnlock()
    l, ok := s.lists[owner]
    if !ok { return pantry.GroceryList{}, errs.ErrNotFound }
    return l.Clone(), nil
}

// PutList inserts or replaces the list held by owner.
func (s *Store) PutList(_ context.Context, owner string, l pantry.GroceryList) error {
    s.mu.Lock(); defer s.mu.Unlock()
    s.lists[owner] = l.Clone()
    s.notifyLocked()
    return nil
}

// notifyLocked reports sizes to the observer. Caller must hold s.mu.
func (s *Store) notifyLocked() {
    if s.onChange != nil { s.onChange(len(s.groceries), len(s.users), len(s.lists)) }
}
