package snapshotrepo

import (
	"context"
	"errors"
	"strings"

	"medimanager/internal/domain/users"
	"medimanager/internal/platform/snapshot"
	"medimanager/internal/ports/storage"
)

type userRepo struct {
	col *snapshot.Collection[users.User]
}

func NewUserRepo(store storage.RecordStore) users.Repository {
	return &userRepo{
		col: snapshot.New[users.User](store, storage.CollectionUsers),
	}
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	items, err := r.col.All(ctx)
	if err != nil {
		return users.User{}, err
	}
	for _, u := range items {
		if u.Username == username {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	return r.col.Mutate(ctx, func(items []users.User) ([]users.User, error) {
		for _, existing := range items {
			if existing.Username == u.Username {
				return nil, users.ErrUsernameTaken
			}
		}
		return append(items, u), nil
	})
}
