package models

// Credential represents a personal credential note row.
type Credential struct {
	CredentialID string `db:"credential_id"`
	UserID       string `db:"user_id"`
	Type         string `db:"type"`
	Name         string `db:"name"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	Phone        string `db:"phone"`
	Password     string `db:"password"`
	Note         string `db:"note"`
	AuditFields
}
