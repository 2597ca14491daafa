// Package user stores open attribute records keyed by username.
// Unlike groceries, records carry no required fields and adds overwrite.
package user

import (
    "context"
    "fmt"
    "io"
    "log/slog"

    "github.com/tinoosan/pantry/internal/errs"
    "github.com/tinoosan/pantry/internal/meta"
)

type Repo interface {
    ListUsernames(ctx context.Context) ([]string, error)
    Users(ctx context.Context) (map[string]meta.Attributes, error)
}

type Writer interface {
    PutUser(ctx context.Context, username string, a meta.Attributes) error
}

type Service interface {
    ListUsernames(ctx context.Context) ([]string, error)
    All(ctx context.Context) (map[string]meta.Attributes, error)
    Add(ctx context.Context, username string, attrs meta.Attributes) error
}

type service struct {
    repo   Repo
    writer Writer
    log    *slog.Logger
}

func New(repo Repo, writer Writer, logger *slog.Logger) Service {
    if logger == nil { logger = slog.New(slog.NewTextHandler(io.Discard, nil)) }
    return &service{repo: repo, writer: writer, log: logger.With("component", "user")}
}

func (s *service) ListUsernames(ctx context.Context) ([]string, error) { return s.repo.ListUsernames(ctx) }

func (s *service) All(ctx context.Context) (map[string]meta.Attributes, error) { return s.repo.Users(ctx) }

// Add inserts or overwrites the record for username. No duplicate or schema check applies.
func (s *service) Add(ctx context.Context, username string, attrs meta.Attributes) error {
    if err := s.writer.PutUser(ctx, username, attrs.Clone()); err != nil {
        return errs.Wrap("add_user", username, err)
    }
    s.log.Debug("user stored", "username", username, "fields", attrs.Keys())
    return nil
}

// SplitFields pulls the username out of an untyped payload and returns the rest
// as attributes. Non-string values are formatted with %v.
func SplitFields(in map[string]any) (string, meta.Attributes, error) {
    raw, ok := in[meta.KeyUsername]
    if !ok || raw == nil {
        return "", nil, errs.Field("add_user", "", meta.KeyUsername, nil, errs.ErrMissingField)
    }
    username, ok := raw.(string)
    if !ok {
        return "", nil, errs.Field("add_user", "", meta.KeyUsername, raw, errs.ErrInvalid)
    }
    if username == "" {
        return "", nil, errs.Field("add_user", "", meta.KeyUsername, nil, errs.ErrMissingField)
    }
    attrs := make(meta.Attributes, len(in))
    for k, v := range in {
        if k == meta.KeyUsername { continue }
        switch val := v.(type) {
        case string:
            attrs[k] = val
        case nil:
            attrs[k] = ""
        default:
            attrs[k] = fmt.Sprint(val)
        }
    }
    return username, attrs, nil
}
