// Package services contains the application services of authdesk.
// This file defines the user store: registration, login, and the current
// session pointer, persisted through the key-value substrate.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/authdesk/authdesk/internal/common"
	"github.com/authdesk/authdesk/internal/dbx"
	"github.com/authdesk/authdesk/internal/logging"
	"github.com/authdesk/authdesk/internal/models"
	"github.com/authdesk/authdesk/internal/repositories/kv"
)

// Storage keys. Part of the persisted layout, do not change.
const (
	UsersKey       = "auth_app_users"
	CurrentUserKey = "auth_app_current_user"
)

// newId and timeNow are test seams for the generated user fields.
var (
	newId   = uuid.NewString
	timeNow = time.Now
)

// NewUser carries the caller-supplied fields of a registration. Id and
// CreatedAt are assigned by the store.
type NewUser struct {
	Name     string
	Email    string
	Password string
}

// UserStore owns the persisted user collection and the current session
// pointer. All access to persisted users goes through it.
//
// Corrupt persisted JSON is treated as absent data: it is logged and an
// empty result is returned, never an error (fail-open).
type UserStore struct {
	db  *sql.DB
	log logging.Logger
}

// NewUserStore constructs a UserStore over the given database handle.
func NewUserStore(db *sql.DB, log logging.Logger) *UserStore {
	return &UserStore{db: db, log: log.With("component", "userstore")}
}

func (s *UserStore) getRepo() kv.Repository {
	return kv.NewSQLiteRepository(s.db)
}

// GetUsers returns all registered users in insertion order. An absent users
// key yields an empty slice. Substrate I/O failures are returned; malformed
// stored JSON is not.
func (s *UserStore) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.readUsers(ctx, s.getRepo())
}

func (s *UserStore) readUsers(ctx context.Context, repo kv.Repository) ([]models.User, error) {
	data, err := repo.Get(ctx, UsersKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []models.User{}, nil
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		s.log.Warn(ctx, "failed to parse stored users, treating as empty", "error", err)
		return []models.User{}, nil
	}
	return users, nil
}

// SaveUser registers a new user. The duplicate-email check and the append
// run in one transaction, so same-process registrations are serialized.
// The whole collection is written back under the users key (last write
// wins on the key, not per record).
//
// Returns common.ErrEmailAlreadyRegistered when another user already holds
// the email, compared case-insensitively.
func (s *UserStore) SaveUser(ctx context.Context, n NewUser) (*models.User, error) {
	var created *models.User

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)

		users, err := s.readUsers(ctx, repo)
		if err != nil {
			return err
		}

		for _, u := range users {
			if strings.EqualFold(u.Email, n.Email) {
				return common.ErrEmailAlreadyRegistered
			}
		}

		user := models.User{
			Id:        newId(),
			Name:      n.Name,
			Email:     n.Email,
			Password:  n.Password,
			CreatedAt: timeNow().UTC().Format(time.RFC3339),
		}
		users = append(users, user)

		data, err := json.Marshal(users)
		if err != nil {
			return err
		}
		if err := repo.Set(ctx, UsersKey, data); err != nil {
			return err
		}

		created = &user
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user registered", "email", created.Email)
	return created, nil
}

// LoginUser finds the first user whose email matches case-insensitively and
// whose password matches exactly, makes it the current session, and returns
// it. When nothing matches it returns common.ErrUserNotFound and leaves the
// session untouched.
func (s *UserStore) LoginUser(ctx context.Context, email, password string) (*models.User, error) {
	users, err := s.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if strings.EqualFold(u.Email, email) && u.Password == password {
			if err := s.SetCurrentUser(ctx, &u); err != nil {
				return nil, err
			}
			s.log.Info(ctx, "user logged in", "email", u.Email)
			return &u, nil
		}
	}

	return nil, common.ErrUserNotFound
}

// SetCurrentUser persists user as the current session, overwriting any
// prior one.
func (s *UserStore) SetCurrentUser(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.getRepo().Set(ctx, CurrentUserKey, data)
}

// GetCurrentUser returns the session user, or nil when no session exists.
// A malformed session record is logged and treated as absent.
func (s *UserStore) GetCurrentUser(ctx context.Context) (*models.User, error) {
	data, err := s.getRepo().Get(ctx, CurrentUserKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		s.log.Warn(ctx, "failed to parse stored session, treating as absent", "error", err)
		return nil, nil
	}
	return &user, nil
}

// LogoutUser clears the session unconditionally. Logging out while already
// logged out is not an error.
func (s *UserStore) LogoutUser(ctx context.Context) error {
	return s.getRepo().Delete(ctx, CurrentUserKey)
}

// IsLoggedIn reports whether a session user is present.
func (s *UserStore) IsLoggedIn(ctx context.Context) bool {
	user, err := s.GetCurrentUser(ctx)
	return err == nil && user != nil
}
