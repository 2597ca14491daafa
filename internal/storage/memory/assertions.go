package memory

import (
    "github.com/tinoosan/pantry/internal/dictionary"
    "github.com/tinoosan/pantry/internal/service/grocery"
    "github.com/tinoosan/pantry/internal/service/grocerylist"
    "github.com/tinoosan/pantry/internal/service/user"
)

// Compile-time interface assertions documenting which interfaces Store satisfies.
var (
    _ grocery.Repo          = (*Store)(nil)
    _ grocery.Writer        = (*Store)(nil)
    _ user.Repo             = (*Store)(nil)
    _ user.Writer           = (*Store)(nil)
    _ grocerylist.Repo      = (*Store)(nil)
    _ grocerylist.Writer    = (*Store)(nil)
    _ dictionary.ItemSource = (*Store)(nil)
)
