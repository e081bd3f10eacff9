// Package incorrect has the high-level UserManager build its own MySQL
// database, tying it to one storage backend.
package incorrect

import (
	"fmt"
	"io"
)

// MySQLDatabase is the only storage UserManager knows.
type MySQLDatabase struct {
	out io.Writer
}

// Save prints the stored data.
func (db *MySQLDatabase) Save(data string) {
	fmt.Fprintf(db.out, "Saving data to MySQL database: %s\n", data)
}

// UserManager holds its database by concrete type.
type UserManager struct {
	database *MySQLDatabase
}

// NewUserManager constructs the database itself; callers cannot swap it.
func NewUserManager(out io.Writer) *UserManager {
	return &UserManager{database: &MySQLDatabase{out: out}}
}

// SaveUser stores userData in MySQL.
func (m *UserManager) SaveUser(userData string) {
	m.database.Save(userData)
}

// Demo saves one user through the hard-wired database.
func Demo(w io.Writer) error {
	NewUserManager(w).SaveUser("John Doe")
	return nil
}
