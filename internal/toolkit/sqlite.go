package toolkit

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/loomworks/agentry/internal/agent"
)

var ErrQueryNotAllowed = errors.New("only SELECT queries are allowed")

const queryRowLimit = 100

// Database wraps a SQLite file for the inspection tools. One Database is
// shared by all three tools of a session.
type Database struct {
	db *sql.DB
}

// OpenDatabase opens a SQLite database file.
func OpenDatabase(path string) (*Database, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &Database{db: db}, nil
}

// Close releases the underlying connection pool.
func (d *Database) Close() error {
	return d.db.Close()
}

// Tools returns the database inspection tools: list_tables, table_schema,
// and run_query.
func (d *Database) Tools() []agent.Tool {
	return []agent.Tool{d.listTablesTool(), d.tableSchemaTool(), d.runQueryTool()}
}

func (d *Database) listTablesTool() agent.Tool {
	return agent.Tool{
		Name:        "list_tables",
		Description: "List all tables in the database",
		Properties:  map[string]any{},
		Handler: func(ctx context.Context, input json.RawMessage) agent.Result {
			tables, err := d.ListTables(ctx)
			if err != nil {
				return agent.ErrorResult("Error listing tables: %v", err)
			}
			if len(tables) == 0 {
				return agent.TextResult("No tables found")
			}
			return agent.TextResult("Tables:\n  - %s", strings.Join(tables, "\n  - "))
		},
	}
}

func (d *Database) tableSchemaTool() agent.Tool {
	return agent.Tool{
		Name:        "table_schema",
		Description: "Show the columns and types of a table",
		Properties: map[string]any{
			"table": agent.StringProperty("Table name"),
		},
		Required: []string{"table"},
		Handler: func(ctx context.Context, input json.RawMessage) agent.Result {
			var args struct {
				Table string `json:"table"`
			}
			if err := agent.DecodeInput(input, &args); err != nil {
				return agent.ErrorResult("Error reading schema: %v", err)
			}

			columns, err := d.TableSchema(ctx, args.Table)
			if err != nil {
				return agent.ErrorResult("Error reading schema: %v", err)
			}
			if len(columns) == 0 {
				return agent.ErrorResult("Table %q not found", args.Table)
			}

			var b strings.Builder
			fmt.Fprintf(&b, "Schema for %s:\n", args.Table)
			for _, c := range columns {
				fmt.Fprintf(&b, "  %s: %s %s\n", c.Name, c.Type, c.Constraints())
			}
			return agent.Result{Text: b.String()}
		},
	}
}

func (d *Database) runQueryTool() agent.Tool {
	return agent.Tool{
		Name:        "run_query",
		Description: fmt.Sprintf("Execute a SELECT query (limited to %d rows)", queryRowLimit),
		Properties: map[string]any{
			"query": agent.StringProperty("SELECT statement to run"),
		},
		Required: []string{"query"},
		Handler: func(ctx context.Context, input json.RawMessage) agent.Result {
			var args struct {
				Query string `json:"query"`
			}
			if err := agent.DecodeInput(input, &args); err != nil {
				return agent.ErrorResult("Error executing query: %v", err)
			}

			columns, rows, err := d.RunQuery(ctx, args.Query)
			if err != nil {
				return agent.ErrorResult("Error executing query: %v", err)
			}

			var b strings.Builder
			fmt.Fprintf(&b, "Query results (%d rows):\n\n", len(rows))
			b.WriteString(strings.Join(columns, " | ") + "\n")
			b.WriteString(strings.Repeat("-", len(strings.Join(columns, " | "))) + "\n")
			for _, row := range rows {
				b.WriteString(strings.Join(row, " | ") + "\n")
			}
			return agent.Result{Text: b.String()}
		},
	}
}

// ListTables returns user table names in alphabetical order.
func (d *Database) ListTables(ctx context.Context) ([]string, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// Column describes one table column.
type Column struct {
	Name       string
	Type       string
	NotNull    bool
	PrimaryKey bool
}

// Constraints renders the column's constraint summary.
func (c Column) Constraints() string {
	parts := []string{"NULL"}
	if c.NotNull {
		parts[0] = "NOT NULL"
	}
	if c.PrimaryKey {
		parts = append(parts, "PRIMARY KEY")
	}
	return strings.Join(parts, " ")
}

// TableSchema returns the columns of a table via PRAGMA table_info.
func (d *Database) TableSchema(ctx context.Context, table string) ([]Column, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT name, type, "notnull", pk FROM pragma_table_info(?)`, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []Column
	for rows.Next() {
		var c Column
		var notNull, pk int
		if err := rows.Scan(&c.Name, &c.Type, &notNull, &pk); err != nil {
			return nil, err
		}
		c.NotNull = notNull != 0
		c.PrimaryKey = pk != 0
		columns = append(columns, c)
	}
	return columns, rows.Err()
}

// RunQuery executes a SELECT statement and returns up to queryRowLimit
// rows as strings. Anything other than SELECT is rejected.
func (d *Database) RunQuery(ctx context.Context, query string) ([]string, [][]string, error) {
	if !strings.HasPrefix(strings.ToUpper(strings.TrimSpace(query)), "SELECT") {
		return nil, nil, ErrQueryNotAllowed
	}

	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var results [][]string
	for len(results) < queryRowLimit && rows.Next() {
		raw := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}

		row := make([]string, len(columns))
		for i, v := range raw {
			row[i] = formatValue(v)
		}
		results = append(results, row)
	}
	return columns, results, rows.Err()
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
