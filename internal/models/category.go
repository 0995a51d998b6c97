package models

// Category represents a user-owned category row.
type Category struct {
	CategoryID string `db:"category_id"`
	UserID     string `db:"user_id"`
	Name       string `db:"name"`
	Kind       string `db:"kind"`
	TxnGroup   string `db:"txn_group"`
	Color      string `db:"color"`
	Icon       string `db:"icon"`
	AuditFields
}
