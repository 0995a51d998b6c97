package domain

// Category is a user-owned transaction label. Transactions reference categories
// by name only; deleting a category never cascades.
type Category struct {
	CategoryID string           `json:"categoryID"`
	UserID     string           `json:"userID"`
	Name       string           `json:"name"`
	Kind       TransactionKind  `json:"kind"`
	Group      TransactionGroup `json:"group"`
	Color      string           `json:"color,omitempty"`
	Icon       string           `json:"icon,omitempty"`
	AuditFields
}

// DefaultCategories is the template set seeded for a user who has none yet.
var DefaultCategories = []Category{
	{Name: "Food & Drink", Kind: KindExpense, Group: GroupExpense, Color: "red"},
	{Name: "Housing", Kind: KindExpense, Group: GroupExpense, Color: "red"},
	{Name: "Utilities", Kind: KindExpense, Group: GroupExpense, Color: "red"},
	{Name: "Entertainment", Kind: KindExpense, Group: GroupExpense, Color: "red"},
	{Name: "Shopping", Kind: KindExpense, Group: GroupExpense, Color: "red"},
	{Name: "Fixed Bills", Kind: KindExpense, Group: GroupExpense, Color: "red"},
	{Name: "Other", Kind: KindExpense, Group: GroupExpense, Color: "red"},
	{Name: CategorySalary, Kind: KindIncome, Group: GroupIncome, Color: "green"},
	{Name: "Bonus", Kind: KindIncome, Group: GroupIncome, Color: "green"},
	{Name: "Borrowed", Kind: KindIncome, Group: GroupIncome, Color: "green"},
	{Name: "Windfall", Kind: KindWindfall, Group: GroupWindfall, Color: "cyan"},
}
