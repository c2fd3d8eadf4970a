// Package store is the persistence layer for document ingestion. All writes
// go through a Tx so a whole batch commits or rolls back as one unit.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"

	"datablock/internal/platform/database"
)

// Store wraps the database handle and knows which SQL flavor to emit.
type Store struct {
	db     *sqlx.DB
	flavor sqlbuilder.Flavor
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db, flavor: database.Flavor(db)}
}

// Tx is one open transaction. Every Mapper write in a batch runs against the
// same Tx; it is never shared across batches.
type Tx struct {
	tx     *sqlx.Tx
	flavor sqlbuilder.Flavor
}

// RunInTx runs fn inside a transaction, committing on success and rolling
// back on any error or panic.
func (s *Store) RunInTx(ctx context.Context, fn func(tx *Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(&Tx{tx: tx, flavor: s.flavor}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Insert writes row into table, ignoring the generated id column.
func (t *Tx) Insert(ctx context.Context, table string, row any) error {
	cols, vals := columns(row)
	ib := t.flavor.NewInsertBuilder()
	ib.InsertInto(table).Cols(cols...).Values(vals...)
	q, args := ib.Build()
	if _, err := t.tx.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

// InsertReturningID writes row into table and returns the generated key, so
// child rows can reference their parent within the same transaction.
func (t *Tx) InsertReturningID(ctx context.Context, table string, row any) (int64, error) {
	cols, vals := columns(row)
	ib := t.flavor.NewInsertBuilder()
	ib.InsertInto(table).Cols(cols...).Values(vals...)
	q, args := ib.Build()

	var id int64
	if err := t.tx.QueryRowxContext(ctx, q+" RETURNING id", args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert %s: %w", table, err)
	}
	return id, nil
}

// DeleteByCompany removes every row in table belonging to the company.
func (t *Tx) DeleteByCompany(ctx context.Context, table string, companyID int64) error {
	db := t.flavor.NewDeleteBuilder()
	db.DeleteFrom(table)
	db.Where(db.Equal("company_id", companyID))
	q, args := db.Build()
	if _, err := t.tx.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	return nil
}

// DeleteChildren removes rows in childTable whose fkCol references a
// parentTable row owned by the company. Bulk deletes do not cascade, so
// callers invoke this for descendants before deleting the parents.
func (t *Tx) DeleteChildren(ctx context.Context, childTable, fkCol, parentTable string, companyID int64) error {
	b := sqlbuilder.Buildf(
		"DELETE FROM "+childTable+" WHERE "+fkCol+
			" IN (SELECT id FROM "+parentTable+" WHERE company_id = %v)",
		companyID,
	)
	q, args := b.BuildWithFlavor(t.flavor)
	if _, err := t.tx.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("delete %s: %w", childTable, err)
	}
	return nil
}

// UpsertByCompany updates the single summary row a company owns in table,
// inserting it on first load. Summary rows are never deleted.
func (t *Tx) UpsertByCompany(ctx context.Context, table string, companyID int64, row any) error {
	cols, vals := columns(row)

	ub := t.flavor.NewUpdateBuilder()
	ub.Update(table)
	assignments := make([]string, 0, len(cols))
	for i, col := range cols {
		if col == "company_id" {
			continue
		}
		assignments = append(assignments, ub.Assign(col, vals[i]))
	}
	ub.Set(assignments...)
	ub.Where(ub.Equal("company_id", companyID))
	q, args := ub.Build()

	res, err := t.tx.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	if affected > 0 {
		return nil
	}
	return t.Insert(ctx, table, row)
}

// IsNoRows reports whether err is the driver's empty-result sentinel.
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
