package tutorial

// User is one row of the users table.
type User struct {
	ID    int64
	Name  string
	Email string
}

const usersTable = "users"

const (
	createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE
)`
	insertUser     = "INSERT OR IGNORE INTO users (id, name, email) VALUES (?, ?, ?)"
	selectAllUsers = "SELECT * FROM users"
	updateBobEmail = "UPDATE users SET email = 'bob_new@example.com' WHERE name = 'Bob'"
	selectBob      = "SELECT * FROM users WHERE name = 'Bob'"
	deleteCharlie  = "DELETE FROM users WHERE name = 'Charlie'"
)

// SeedUsers returns the users added by the walkthrough.
func SeedUsers() []User {
	return []User{
		{ID: 1, Name: "Alice", Email: "alice@example.com"},
		{ID: 2, Name: "Bob", Email: "bob@example.com"},
		{ID: 3, Name: "Charlie", Email: "charlie@example.com"},
	}
}

func (u User) params() []any {
	return []any{u.ID, u.Name, u.Email}
}
