package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
)

const userColumns = `id, username, password_hash, first_name, last_name, email, role, created_at, updated_at`

// UserRepository implements domain.UserRepository.
type UserRepository struct {
	store *Store
}

// FindByID selects one user row.
func (r *UserRepository) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	u, err := scanUser(r.store.conn(ctx).QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, int64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrUserNotFound, id)
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return u, nil
}

// FindByUsername selects the user with the given username.
func (r *UserRepository) FindByUsername(ctx context.Context, username domain.Username) (*domain.User, error) {
	u, err := scanUser(r.store.conn(ctx).QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, string(username)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, username)
		}
		return nil, fmt.Errorf("get user %s: %w", username, err)
	}
	return u, nil
}

// Save inserts the user and sets its generated ID.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	const query = `
		INSERT INTO users (username, password_hash, first_name, last_name, email, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := r.store.conn(ctx).QueryRow(ctx, query,
		string(user.Username), user.PasswordHash, user.FirstName, user.LastName,
		string(user.Email), string(user.Role), user.CreatedAt, user.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: username %s already exists", domain.ErrInvalidArgument, user.Username)
		}
		return nil, fmt.Errorf("insert user %s: %w", user.Username, err)
	}

	user.ID = domain.UserID(id)
	return user, nil
}

// DeleteByID deletes the user row.
func (r *UserRepository) DeleteByID(ctx context.Context, id domain.UserID) error {
	tag, err := r.store.conn(ctx).Exec(ctx, `DELETE FROM users WHERE id = $1`, int64(id))
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrUserNotFound, id)
	}
	return nil
}

// FindAll selects every user.
func (r *UserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.store.conn(ctx).Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func scanUser(row scanner) (*domain.User, error) {
	var (
		id                                 int64
		username, hash, first, last, email string
		role                               string
		createdAt, updatedAt               time.Time
	)
	if err := row.Scan(&id, &username, &hash, &first, &last, &email, &role, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return &domain.User{
		ID:           domain.UserID(id),
		Username:     domain.Username(username),
		PasswordHash: hash,
		FirstName:    first,
		LastName:     last,
		Email:        domain.Email(email),
		Role:         domain.UserRole(role),
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

var _ domain.UserRepository = (*UserRepository)(nil)
