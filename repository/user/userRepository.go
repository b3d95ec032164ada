package userrepo

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/Uday-Kumarr/clickncut-main/model"
	"github.com/Uday-Kumarr/clickncut-main/repository/localstore"
)

const (
	keyRegistered    = "registeredUsers"
	keySessionPrefix = "user:"
)

type Repo interface {
	All(ctx context.Context) ([]model.User, error)
	Append(ctx context.Context, u model.User) error
	SaveSession(ctx context.Context, s model.Session) error
	Session(ctx context.Context, id string) (*model.Session, error)
	DeleteSession(ctx context.Context, id string) error
}

type repo struct {
	store localstore.Store
	log   *slog.Logger
}

func New(store localstore.Store, log *slog.Logger) Repo {
	return &repo{store: store, log: log}
}

// All returns the registration list. Missing or malformed state is
// logged and treated as an empty list.
func (r *repo) All(ctx context.Context) ([]model.User, error) {
	raw, err := r.store.Get(ctx, keyRegistered)
	if errors.Is(err, localstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var users []model.User
	if err := json.Unmarshal(raw, &users); err != nil {
		r.log.Warn("malformed registered users, starting empty", "err", err)
		return nil, nil
	}
	return users, nil
}

func (r *repo) Append(ctx context.Context, u model.User) error {
	users, err := r.All(ctx)
	if err != nil {
		return err
	}
	users = append(users, u)
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, keyRegistered, raw)
}

func (r *repo) SaveSession(ctx context.Context, s model.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, keySessionPrefix+s.ID, raw)
}

func (r *repo) Session(ctx context.Context, id string) (*model.Session, error) {
	raw, err := r.store.Get(ctx, keySessionPrefix+id)
	if err != nil {
		return nil, err
	}
	var s model.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		r.log.Warn("malformed persisted session", "id", id, "err", err)
		return nil, localstore.ErrNotFound
	}
	return &s, nil
}

func (r *repo) DeleteSession(ctx context.Context, id string) error {
	return r.store.Delete(ctx, keySessionPrefix+id)
}
