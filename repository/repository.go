package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sanchitsharma1/Bizdash/models"
)

// Record is any resource the generic repository can persist.
type Record interface {
	Validate() error
}

// RowScanner is satisfied by both *sql.Row and *sql.Rows.
type RowScanner interface {
	Scan(dest ...any) error
}

// Mapper describes how one resource type maps onto its table. It is the
// only per-resource piece; everything else is shared.
type Mapper[T Record] struct {
	Table        string
	Columns      []string // insert/update columns, id excluded
	DefaultOrder string
	Bind         func(T) []any
	Scan         func(RowScanner) (T, error)
	SetID        func(*T, int64)
}

// Repository implements the CRUD contract for a single resource table.
type Repository[T Record] struct {
	db *sql.DB
	m  Mapper[T]

	listSQL   string
	getSQL    string
	insertSQL string
	updateSQL string
	deleteSQL string
}

func New[T Record](db *sql.DB, m Mapper[T]) *Repository[T] {
	cols := strings.Join(m.Columns, ", ")
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(m.Columns)), ", ")

	assignments := make([]string, len(m.Columns))
	for i, c := range m.Columns {
		assignments[i] = c + " = ?"
	}

	return &Repository[T]{
		db: db,
		m:  m,

		listSQL:   fmt.Sprintf("SELECT id, %s FROM %s ORDER BY %s", cols, m.Table, m.DefaultOrder),
		getSQL:    fmt.Sprintf("SELECT id, %s FROM %s WHERE id = ?", cols, m.Table),
		insertSQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", m.Table, cols, placeholders),
		updateSQL: fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", m.Table, strings.Join(assignments, ", ")),
		deleteSQL: fmt.Sprintf("DELETE FROM %s WHERE id = ?", m.Table),
	}
}

// List returns every record in the table's default order. The result is
// never nil so an empty collection serializes as [].
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, r.listSQL)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.m.Table, err)
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		rec, err := r.m.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s row: %w", r.m.Table, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", r.m.Table, err)
	}
	return records, nil
}

// Get returns the record with the given id.
func (r *Repository[T]) Get(ctx context.Context, id int64) (T, error) {
	rec, err := r.m.Scan(r.db.QueryRowContext(ctx, r.getSQL, id))
	if err != nil {
		var zero T
		if errors.Is(err, sql.ErrNoRows) {
			return zero, models.ErrNotFound
		}
		return zero, fmt.Errorf("get %s %d: %w", r.m.Table, id, err)
	}
	return rec, nil
}

// Create validates the record, inserts it and returns it with the assigned id.
func (r *Repository[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	if err := rec.Validate(); err != nil {
		return zero, err
	}

	res, err := r.db.ExecContext(ctx, r.insertSQL, r.m.Bind(rec)...)
	if err != nil {
		return zero, fmt.Errorf("insert %s: %w", r.m.Table, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return zero, fmt.Errorf("insert %s id: %w", r.m.Table, err)
	}

	r.m.SetID(&rec, id)
	return rec, nil
}

// Update validates the record and replaces the whole stored row.
func (r *Repository[T]) Update(ctx context.Context, id int64, rec T) (T, error) {
	var zero T
	if err := rec.Validate(); err != nil {
		return zero, err
	}

	args := append(r.m.Bind(rec), id)
	res, err := r.db.ExecContext(ctx, r.updateSQL, args...)
	if err != nil {
		return zero, fmt.Errorf("update %s %d: %w", r.m.Table, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return zero, fmt.Errorf("update %s %d: %w", r.m.Table, id, err)
	}
	if affected == 0 {
		return zero, models.ErrNotFound
	}

	r.m.SetID(&rec, id)
	return rec, nil
}

// Delete removes the record permanently. A second call on the same id
// reports ErrNotFound.
func (r *Repository[T]) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.deleteSQL, id)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", r.m.Table, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", r.m.Table, id, err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}
