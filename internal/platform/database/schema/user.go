package schema

import "strings"

// UserTable represents the 'users' table
type UserTable struct {
	Table       string
	ID          string
	Email       string
	Password    string
	DisplayName string
	CreatedAt   string
}

// User is the schema definition for users
var User = UserTable{
	Table:       "users",
	ID:          "id",
	Email:       "email",
	Password:    "passwordhash",
	DisplayName: "displayname",
	CreatedAt:   "createdat",
}

// Columns returns all standard column names, in scan order
func (t UserTable) Columns() []string {
	return []string{t.ID, t.Email, t.Password, t.DisplayName, t.CreatedAt}
}

// SelectList returns the columns joined for a SELECT clause
func (t UserTable) SelectList() string {
	return strings.Join(t.Columns(), ", ")
}
