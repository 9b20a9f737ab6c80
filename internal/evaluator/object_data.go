package evaluator

import (
	"database/sql"

	"github.com/google/uuid"
)

// Uuid wraps a RFC 4122 UUID. Uuids are hashable and compare by value, so
// they work as dict keys and set elements.
type Uuid struct {
	Value uuid.UUID
}

func (u *Uuid) Type() ObjectType { return UUID_OBJ }
func (u *Uuid) Inspect() string  { return "Uuid(\"" + u.Value.String() + "\")" }
func (u *Uuid) Hash() uint32     { return hashString(u.Value.String()) }

// Database wraps an open SQLite handle.
type Database struct {
	DB   *sql.DB
	Path string
}

func (d *Database) Type() ObjectType { return DATABASE_OBJ }
func (d *Database) Inspect() string  { return "Database(\"" + d.Path + "\")" }
