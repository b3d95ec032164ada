package cartrepo

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/Uday-Kumarr/clickncut-main/model"
	"github.com/Uday-Kumarr/clickncut-main/repository/localstore"
)

const keyPrefix = "cart:"

type Repo interface {
	Load(ctx context.Context, ownerID string) ([]model.CartItem, error)
	Save(ctx context.Context, ownerID string, items []model.CartItem) error
	Drop(ctx context.Context, ownerID string) error
}

type repo struct {
	store localstore.Store
	log   *slog.Logger
}

func New(store localstore.Store, log *slog.Logger) Repo {
	return &repo{store: store, log: log}
}

// Load reads the persisted cart. A missing or malformed value is not an
// error for the caller: it degrades to an empty cart.
func (r *repo) Load(ctx context.Context, ownerID string) ([]model.CartItem, error) {
	raw, err := r.store.Get(ctx, keyPrefix+ownerID)
	if errors.Is(err, localstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var items []model.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		r.log.Warn("malformed persisted cart, starting empty", "owner", ownerID, "err", err)
		return nil, nil
	}
	// Values written before rental days became a first-class field
	// carry no rental_days; default them.
	for i := range items {
		if items[i].RentalDays < 1 {
			items[i].RentalDays = 1
		}
	}
	return items, nil
}

func (r *repo) Save(ctx context.Context, ownerID string, items []model.CartItem) error {
	if items == nil {
		items = []model.CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, keyPrefix+ownerID, raw)
}

func (r *repo) Drop(ctx context.Context, ownerID string) error {
	return r.store.Delete(ctx, keyPrefix+ownerID)
}
