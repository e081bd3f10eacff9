// Package correct makes UserManager depend on a Database abstraction that
// is supplied by the caller.
package correct

import (
	"fmt"
	"io"
)

// Database is the storage capability UserManager depends on.
type Database interface {
	Save(data string)
}

// MySQLDatabase stands in for a MySQL backend.
type MySQLDatabase struct {
	out io.Writer
}

// NewMySQLDatabase returns a database printing to out.
func NewMySQLDatabase(out io.Writer) *MySQLDatabase { return &MySQLDatabase{out: out} }

func (db *MySQLDatabase) Save(data string) {
	fmt.Fprintf(db.out, "Saving data to MySQL database: %s\n", data)
}

// PostgreSQLDatabase stands in for a PostgreSQL backend.
type PostgreSQLDatabase struct {
	out io.Writer
}

// NewPostgreSQLDatabase returns a database printing to out.
func NewPostgreSQLDatabase(out io.Writer) *PostgreSQLDatabase { return &PostgreSQLDatabase{out: out} }

func (db *PostgreSQLDatabase) Save(data string) {
	fmt.Fprintf(db.out, "Saving data to PostgreSQL database: %s\n", data)
}

// UserManager saves users to whichever Database it was given.
type UserManager struct {
	database Database
}

// NewUserManager returns a manager storing through database.
func NewUserManager(database Database) *UserManager {
	return &UserManager{database: database}
}

// SaveUser stores userData.
func (m *UserManager) SaveUser(userData string) {
	m.database.Save(userData)
}

// Demo saves one user through MySQL and one through PostgreSQL.
func Demo(w io.Writer) error {
	NewUserManager(NewMySQLDatabase(w)).SaveUser("John Doe")
	NewUserManager(NewPostgreSQLDatabase(w)).SaveUser("Jane Doe")
	return nil
}
