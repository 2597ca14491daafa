package httpapi

import "github.com/tinoosan/pantry/internal/storage/memory"

// Compile-time interface assertions for the in-memory Store against HTTP API interfaces.
var _ ReadyChecker = (*memory.Store)(nil)
