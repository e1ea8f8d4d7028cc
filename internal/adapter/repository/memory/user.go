package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
)

// UserRepository implements domain.UserRepository. Usernames are unique.
type UserRepository struct {
	store *Store
}

// FindByID returns the user with the given ID.
func (r *UserRepository) FindByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrUserNotFound, id)
	}
	return &u, nil
}

// FindByUsername looks a user up by login name.
func (r *UserRepository) FindByUsername(_ context.Context, username domain.Username) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, username)
}

// Save stores a new user. Usernames are unique.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	defer r.store.lockWrite(ctx)()

	for id, existing := range r.store.users {
		if existing.Username == user.Username && id != user.ID {
			return nil, fmt.Errorf("%w: username %s already exists", domain.ErrInvalidArgument, user.Username)
		}
	}

	row := *user
	if row.ID == 0 {
		r.store.seq.user++
		row.ID = domain.UserID(r.store.seq.user)
	} else if int64(row.ID) > r.store.seq.user {
		r.store.seq.user = int64(row.ID)
	}
	r.store.users[row.ID] = row
	user.ID = row.ID
	return &row, nil
}

// DeleteByID removes the user.
func (r *UserRepository) DeleteByID(ctx context.Context, id domain.UserID) error {
	defer r.store.lockWrite(ctx)()

	if _, ok := r.store.users[id]; !ok {
		return fmt.Errorf("%w: id %d", domain.ErrUserNotFound, id)
	}
	delete(r.store.users, id)
	return nil
}

// FindAll returns all users.
func (r *UserRepository) FindAll(_ context.Context) ([]*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domain.User, 0, len(r.store.users))
	for _, row := range r.store.users {
		u := row
		result = append(result, &u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

var _ domain.UserRepository = (*UserRepository)(nil)
