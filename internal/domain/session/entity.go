// internal/domain/session/entity.go
package session

import "strings"

// User represents the signed-in user. It exists only while a session is
// active; there is no credential verification in this demo.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// DisplayNameFromEmail derives a display name from the local part of an
// email address ("a@b.com" -> "a").
func DisplayNameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
