package domain

// User is a staff member who can sign in to the back office. AccountID is the
// shop account whose records the user works on; all store reads and writes
// are scoped to it.
type User struct {
	UserID       string `json:"userID"`
	AccountID    string `json:"accountID"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	AuditFields
}
