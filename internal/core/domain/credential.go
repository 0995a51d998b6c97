package domain

// Credential is a personal credential note (login details the user keeps for
// banks, e-wallets, etc). All fields except Name are optional.
type Credential struct {
	CredentialID string `json:"credentialID"`
	UserID       string `json:"userID"`
	Type         string `json:"type"`
	Name         string `json:"name"`
	Username     string `json:"username,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Password     string `json:"password,omitempty"`
	Note         string `json:"note,omitempty"`
	AuditFields
}
