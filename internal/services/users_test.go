package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/authdesk/authdesk/internal/common"
	"github.com/authdesk/authdesk/internal/logging"
	"github.com/authdesk/authdesk/internal/models"
)

// ---- helpers ----

func setupStore(t *testing.T) (*UserStore, *sql.DB) {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS storage (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewUserStore(db, log), db
}

func mustSave(t *testing.T, s *UserStore, name, email, password string) *models.User {
	t.Helper()
	u, err := s.SaveUser(context.Background(), NewUser{Name: name, Email: email, Password: password})
	require.NoError(t, err)
	return u
}

func setRaw(t *testing.T, db *sql.DB, key string, value []byte) {
	t.Helper()
	_, err := db.Exec(`
		INSERT INTO storage(key, value) VALUES(?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	require.NoError(t, err)
}

// ---- tests ----

func TestGetUsers_EmptyWhenAbsent(t *testing.T) {
	store, _ := setupStore(t)

	users, err := store.GetUsers(context.Background())
	require.NoError(t, err)
	require.NotNil(t, users)
	require.Empty(t, users)
}

func TestGetUsers_CorruptDataIsTreatedAsEmpty(t *testing.T) {
	store, db := setupStore(t)
	setRaw(t, db, UsersKey, []byte(`{not json`))

	users, err := store.GetUsers(context.Background())
	require.NoError(t, err, "corruption must never surface to the caller")
	require.Empty(t, users)
}

func TestSaveUser_AssignsGeneratedFields(t *testing.T) {
	store, _ := setupStore(t)

	u := mustSave(t, store, "Alice", "alice@gmail.com", "Secret1!")
	require.NotEmpty(t, u.Id)
	require.NotEmpty(t, u.CreatedAt)
	require.Equal(t, "Alice", u.Name)
	require.Equal(t, "alice@gmail.com", u.Email)
	require.Equal(t, "Secret1!", u.Password)

	_, err := time.Parse(time.RFC3339, u.CreatedAt)
	require.NoError(t, err, "createdAt must be RFC 3339")
}

func TestSaveUser_AppendsExactlyOneRecord(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	mustSave(t, store, "Alice", "alice@gmail.com", "Secret1!")
	u := mustSave(t, store, "Bob", "bob@gmail.com", "Hunter2!")

	users, err := store.GetUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "alice@gmail.com", users[0].Email, "insertion order is preserved")
	require.Equal(t, *u, users[1])
}

func TestSaveUser_RoundTripIsFieldForField(t *testing.T) {
	store, _ := setupStore(t)

	saved := mustSave(t, store, "Alice", "alice@gmail.com", "Secret1!")

	users, err := store.GetUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, *saved, users[0])
}

func TestSaveUser_DuplicateEmailFails(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	mustSave(t, store, "Alice", "alice@gmail.com", "Secret1!")

	_, err := store.SaveUser(ctx, NewUser{Name: "Other", Email: "ALICE@GMAIL.COM", Password: "different"})
	require.ErrorIs(t, err, common.ErrEmailAlreadyRegistered)
	require.EqualError(t, err, "This email is already registered")

	users, err := store.GetUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1, "failed registration must not append")
}

func TestSaveUser_UniqueIds(t *testing.T) {
	store, _ := setupStore(t)

	a := mustSave(t, store, "Alice", "alice@gmail.com", "Secret1!")
	b := mustSave(t, store, "Bob", "bob@gmail.com", "Hunter2!")
	require.NotEqual(t, a.Id, b.Id)
}

func TestLoginUser_SetsSession(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	saved := mustSave(t, store, "Alice", "alice@gmail.com", "Secret1!")

	u, err := store.LoginUser(ctx, "Alice@Gmail.Com", "Secret1!")
	require.NoError(t, err)
	require.Equal(t, *saved, *u)

	current, err := store.GetCurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	require.Equal(t, *saved, *current)
	require.True(t, store.IsLoggedIn(ctx))
}

func TestLoginUser_WrongPasswordLeavesSessionUnchanged(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	alice := mustSave(t, store, "Alice", "alice@gmail.com", "Secret1!")
	mustSave(t, store, "Bob", "bob@gmail.com", "Hunter2!")

	_, err := store.LoginUser(ctx, "alice@gmail.com", "Secret1!")
	require.NoError(t, err)

	_, err = store.LoginUser(ctx, "bob@gmail.com", "wrong")
	require.ErrorIs(t, err, common.ErrUserNotFound)

	current, err := store.GetCurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	require.Equal(t, alice.Email, current.Email, "failed login must not touch the session")
}

func TestLoginUser_PasswordIsCaseSensitive(t *testing.T) {
	store, _ := setupStore(t)

	mustSave(t, store, "Alice", "alice@gmail.com", "Secret1!")

	_, err := store.LoginUser(context.Background(), "alice@gmail.com", "secret1!")
	require.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestLoginUser_UnknownEmail(t *testing.T) {
	store, _ := setupStore(t)

	_, err := store.LoginUser(context.Background(), "nobody@gmail.com", "x")
	require.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestGetCurrentUser_AbsentSession(t *testing.T) {
	store, _ := setupStore(t)

	u, err := store.GetCurrentUser(context.Background())
	require.NoError(t, err)
	require.Nil(t, u)
	require.False(t, store.IsLoggedIn(context.Background()))
}

func TestGetCurrentUser_CorruptSessionIsTreatedAsAbsent(t *testing.T) {
	store, db := setupStore(t)
	setRaw(t, db, CurrentUserKey, []byte(`]]`))

	u, err := store.GetCurrentUser(context.Background())
	require.NoError(t, err)
	require.Nil(t, u)
}

func TestLogoutUser_AlwaysClearsSession(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	mustSave(t, store, "Alice", "alice@gmail.com", "Secret1!")
	_, err := store.LoginUser(ctx, "alice@gmail.com", "Secret1!")
	require.NoError(t, err)
	require.True(t, store.IsLoggedIn(ctx))

	require.NoError(t, store.LogoutUser(ctx))
	require.False(t, store.IsLoggedIn(ctx))

	// Logging out again is a no-op, not an error.
	require.NoError(t, store.LogoutUser(ctx))
	require.False(t, store.IsLoggedIn(ctx))
}

func TestSaveUser_GeneratedFieldSeams(t *testing.T) {
	store, _ := setupStore(t)

	origId, origNow := newId, timeNow
	t.Cleanup(func() { newId, timeNow = origId, origNow })

	newId = func() string { return "fixed-id" }
	timeNow = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	u := mustSave(t, store, "Alice", "alice@gmail.com", "Secret1!")
	require.Equal(t, "fixed-id", u.Id)
	require.Equal(t, "2024-05-01T12:00:00Z", u.CreatedAt)
}
