package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// itemTableDDL is the shape shared by every entity store: a composite
// primary key of (tenant_id, item_id), an indexed email column mirrored
// from the item for per-user queries, and the item body as JSON.
const itemTableDDL = "CREATE TABLE IF NOT EXISTS `%s` (" +
	" tenant_id VARCHAR(128) NOT NULL," +
	" item_id   VARCHAR(128) NOT NULL," +
	" email     VARCHAR(255) NULL," +
	" attrs     JSON NOT NULL," +
	" PRIMARY KEY (tenant_id, item_id)," +
	" KEY idx_tenant_email (tenant_id, email)" +
	") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4"

// usersDDL holds account records.  Users are keyed by (tenant_id, email)
// since the login flow looks them up that way; they never pass through
// the schemaless item path.
const usersDDL = "CREATE TABLE IF NOT EXISTS `%s` (" +
	" tenant_id     VARCHAR(128) NOT NULL," +
	" email         VARCHAR(255) NOT NULL," +
	" name          VARCHAR(255) NOT NULL," +
	" password_hash VARCHAR(255) NOT NULL," +
	" created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP," +
	" PRIMARY KEY (tenant_id, email)" +
	") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4"

// EnsureSchema creates the entity tables when they do not exist yet.
// itemTables lists the configured table names for the schemaless entity
// stores; usersTable is the account table.  Creation is idempotent and
// runs once at startup.
func EnsureSchema(db *sql.DB, usersTable string, itemTables ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, name := range itemTables {
		if _, err := db.ExecContext(ctx, fmt.Sprintf(itemTableDDL, name)); err != nil {
			return fmt.Errorf("create table %s: %w", name, err)
		}
	}
	if _, err := db.ExecContext(ctx, fmt.Sprintf(usersDDL, usersTable)); err != nil {
		return fmt.Errorf("create table %s: %w", usersTable, err)
	}
	return nil
}
