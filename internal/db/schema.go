package db

import (
	"context"
	"database/sql"
	"strings"
)

// RequiredTables is the schema every handler expects.
var RequiredTables = []string{
	"bus", "route", "scheduleinformation", "customer", "users", "staff",
	"bookingdetails", "paymentdetails", "maintenance", "activity",
}

// HasTable reports whether table exists in the current schema.
func HasTable(ctx context.Context, q DBTX, table string) (bool, error) {
	var name sql.NullString
	err := q.QueryRowContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return name.Valid && name.String != "", nil
}

// MissingTables returns the entries of tables not present in the current schema.
func MissingTables(ctx context.Context, q DBTX, tables []string) ([]string, error) {
	if len(tables) == 0 {
		return nil, nil
	}
	args := make([]any, len(tables))
	for i, t := range tables {
		args[i] = t
	}
	rows, err := q.QueryContext(ctx, `
		SELECT LOWER(table_name)
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name IN (?`+strings.Repeat(", ?", len(tables)-1)+`)
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	present := make(map[string]bool, len(tables))
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		present[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	missing := []string{}
	for _, t := range tables {
		if !present[strings.ToLower(t)] {
			missing = append(missing, t)
		}
	}
	return missing, nil
}
