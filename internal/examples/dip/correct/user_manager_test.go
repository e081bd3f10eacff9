package correct

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryDatabase is a test double; UserManager accepts it unchanged.
type memoryDatabase struct {
	saved []string
}

func (m *memoryDatabase) Save(data string) { m.saved = append(m.saved, data) }

func TestSaveUser_DelegatesToInjectedDatabase(t *testing.T) {
	db := &memoryDatabase{}
	mgr := NewUserManager(db)
	mgr.SaveUser("John Doe")
	mgr.SaveUser("Jane Doe")
	assert.Equal(t, []string{"John Doe", "Jane Doe"}, db.saved)
}

func TestDatabases(t *testing.T) {
	tests := []struct {
		name string
		db   func(*bytes.Buffer) Database
		want string
	}{
		{"mysql", func(b *bytes.Buffer) Database { return NewMySQLDatabase(b) }, "Saving data to MySQL database: x\n"},
		{"postgres", func(b *bytes.Buffer) Database { return NewPostgreSQLDatabase(b) }, "Saving data to PostgreSQL database: x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewUserManager(tt.db(&buf)).SaveUser("x")
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))
	assert.Equal(t,
		"Saving data to MySQL database: John Doe\n"+
			"Saving data to PostgreSQL database: Jane Doe\n",
		buf.String())
}
