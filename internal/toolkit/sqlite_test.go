package toolkit

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func testDatabase(t *testing.T) *Database {
	t.Helper()

	db, err := OpenDatabase(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	stmts := []string{
		`CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT NOT NULL, email TEXT)`,
		`CREATE TABLE orders (id INTEGER PRIMARY KEY, user_id INTEGER, total REAL)`,
		`INSERT INTO users (name, email) VALUES ('alice', 'alice@example.com'), ('bob', NULL)`,
	}
	for _, s := range stmts {
		if _, err := db.db.ExecContext(context.Background(), s); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
	return db
}

func TestDatabase_ListTables(t *testing.T) {
	db := testDatabase(t)

	tables, err := db.ListTables(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"orders", "users"}
	if len(tables) != len(want) {
		t.Fatalf("expected %v, got %v", want, tables)
	}
	for i := range want {
		if tables[i] != want[i] {
			t.Errorf("expected %v, got %v", want, tables)
			break
		}
	}
}

func TestDatabase_TableSchema(t *testing.T) {
	db := testDatabase(t)

	columns, err := db.TableSchema(context.Background(), "users")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(columns))
	}

	if columns[0].Name != "id" || !columns[0].PrimaryKey {
		t.Errorf("expected id primary key first, got %+v", columns[0])
	}
	if columns[1].Name != "name" || !columns[1].NotNull {
		t.Errorf("expected name NOT NULL, got %+v", columns[1])
	}

	missing, err := db.TableSchema(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error for missing table: %v", err)
	}
	if len(missing) != 0 {
		t.Errorf("expected no columns for missing table, got %v", missing)
	}
}

func TestDatabase_RunQuery(t *testing.T) {
	db := testDatabase(t)

	columns, rows, err := db.RunQuery(context.Background(), "SELECT name, email FROM users ORDER BY name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(columns) != 2 || columns[0] != "name" {
		t.Errorf("unexpected columns: %v", columns)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "alice" {
		t.Errorf("expected alice first, got %v", rows[0])
	}
	if rows[1][1] != "NULL" {
		t.Errorf("expected NULL rendering for missing email, got %q", rows[1][1])
	}
}

func TestDatabase_RunQuery_RejectsWrites(t *testing.T) {
	db := testDatabase(t)

	for _, q := range []string{
		"DELETE FROM users",
		"drop table users",
		"INSERT INTO users (name) VALUES ('mallory')",
	} {
		_, _, err := db.RunQuery(context.Background(), q)
		if !errors.Is(err, ErrQueryNotAllowed) {
			t.Errorf("query %q: expected ErrQueryNotAllowed, got %v", q, err)
		}
	}
}

func TestDatabase_RunQuery_RowCap(t *testing.T) {
	db := testDatabase(t)

	for i := 0; i < 150; i++ {
		if _, err := db.db.ExecContext(context.Background(),
			`INSERT INTO orders (user_id, total) VALUES (1, 9.99)`); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	_, rows, err := db.RunQuery(context.Background(), "SELECT id FROM orders")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != queryRowLimit {
		t.Errorf("expected %d rows (capped), got %d", queryRowLimit, len(rows))
	}
}

func TestDatabase_Tools(t *testing.T) {
	db := testDatabase(t)

	tools := db.Tools()
	if len(tools) != 3 {
		t.Fatalf("expected 3 tools, got %d", len(tools))
	}

	res := tools[0].Handler(context.Background(), nil)
	if res.IsError {
		t.Fatalf("list_tables failed: %s", res.Text)
	}
	if !strings.Contains(res.Text, "users") || !strings.Contains(res.Text, "orders") {
		t.Errorf("unexpected list_tables output: %q", res.Text)
	}

	res = tools[2].Handler(context.Background(), json.RawMessage(`{"query": "DELETE FROM users"}`))
	if !res.IsError {
		t.Error("run_query tool should reject non-SELECT statements")
	}
}
