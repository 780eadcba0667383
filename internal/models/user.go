// Package models defines the persisted data structures of authdesk.
package models

// User is a registered account as stored in the local database.
//
// The JSON field names are part of the persisted layout and must not change:
// the users collection lives under the "auth_app_users" key as a JSON array
// of these records, and the current session under "auth_app_current_user"
// as a single record.
//
// Password is stored in plain text. This is a deliberate property of the
// demo storage layer, not something to imitate in a real credential store.
type User struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	CreatedAt string `json:"createdAt"`
}
