// Package repo contains the database access logic for the booking sheet.
// The sheet is modelled as a tiny spreadsheet: named tabs (sheets) holding
// append-only rows of text cells. No business logic lives here.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/tourdesk/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ErrNoSheets is returned when the spreadsheet has no sheet to write to.
var ErrNoSheets = fmt.Errorf("%w: no sheets found in the spreadsheet", domain.ErrNotFound)

// SheetRepo defines the persistence operations for the booking spreadsheet.
type SheetRepo interface {
	// Append adds cells as a new row of the sheet called name. When no sheet
	// has that name the first sheet (lowest position) is used instead.
	// Returns ErrNoSheets when the spreadsheet is empty.
	Append(ctx context.Context, name string, cells []string) (domain.SheetRow, error)

	// List returns the rows of the sheet resolved the same way as Append,
	// in append order.
	List(ctx context.Context, name string) ([]domain.SheetRow, error)

	// Sheets returns every sheet ordered by position.
	Sheets(ctx context.Context) ([]domain.Sheet, error)

	// CreateSheet adds a sheet at the end of the spreadsheet.
	CreateSheet(ctx context.Context, name string) (domain.Sheet, error)
}

type pgSheetRepo struct {
	db db
}

// NewSheetRepo constructs a SheetRepo backed by the provided db connection.
func NewSheetRepo(db db) SheetRepo {
	return &pgSheetRepo{db: db}
}

type sheetRef struct {
	id   pgtype.UUID
	name string
}

// resolve picks the sheet called name, falling back to the first sheet.
func (r *pgSheetRepo) resolve(ctx context.Context, name string) (sheetRef, error) {
	const q = `
		SELECT id, name
		FROM sheets
		ORDER BY (name = @name) DESC, position ASC
		LIMIT 1`

	var ref sheetRef
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": name}).Scan(&ref.id, &ref.name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sheetRef{}, ErrNoSheets
		}
		return sheetRef{}, err
	}
	return ref, nil
}

// Append inserts one row and returns it with its generated id and timestamp.
func (r *pgSheetRepo) Append(ctx context.Context, name string, cells []string) (domain.SheetRow, error) {
	ref, err := r.resolve(ctx, name)
	if err != nil {
		return domain.SheetRow{}, fmt.Errorf("repo.SheetRepo.Append: %w", err)
	}

	const q = `
		INSERT INTO sheet_rows (sheet_id, cells)
		VALUES (@sheet_id, @cells)
		RETURNING id, cells, created_at`

	if cells == nil {
		cells = []string{}
	}
	row, err := scanRow(r.db.QueryRow(ctx, q, pgx.NamedArgs{"sheet_id": ref.id, "cells": cells}), ref.name)
	if err != nil {
		return domain.SheetRow{}, fmt.Errorf("repo.SheetRepo.Append: %w", err)
	}
	return row, nil
}

// List returns the rows of the resolved sheet ordered by insertion.
func (r *pgSheetRepo) List(ctx context.Context, name string) ([]domain.SheetRow, error) {
	ref, err := r.resolve(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("repo.SheetRepo.List: %w", err)
	}

	const q = `
		SELECT id, cells, created_at
		FROM sheet_rows
		WHERE sheet_id = @sheet_id
		ORDER BY seq ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"sheet_id": ref.id})
	if err != nil {
		return nil, fmt.Errorf("repo.SheetRepo.List: %w", err)
	}
	defer rows.Close()

	out := []domain.SheetRow{}
	for rows.Next() {
		row, err := scanRow(rows, ref.name)
		if err != nil {
			return nil, fmt.Errorf("repo.SheetRepo.List: scan: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.SheetRepo.List: rows: %w", err)
	}
	return out, nil
}

// Sheets returns all sheets ordered by position.
func (r *pgSheetRepo) Sheets(ctx context.Context) ([]domain.Sheet, error) {
	const q = `SELECT id, name, position, created_at FROM sheets ORDER BY position ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.SheetRepo.Sheets: %w", err)
	}
	defer rows.Close()

	var out []domain.Sheet
	for rows.Next() {
		s, err := scanSheet(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.SheetRepo.Sheets: scan: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.SheetRepo.Sheets: rows: %w", err)
	}
	return out, nil
}

// CreateSheet inserts a sheet positioned after every existing one.
func (r *pgSheetRepo) CreateSheet(ctx context.Context, name string) (domain.Sheet, error) {
	const q = `
		INSERT INTO sheets (name, position)
		VALUES (@name, (SELECT COALESCE(MAX(position), 0) + 1 FROM sheets))
		RETURNING id, name, position, created_at`

	s, err := scanSheet(r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": name}))
	if err != nil {
		return domain.Sheet{}, fmt.Errorf("repo.SheetRepo.CreateSheet: %w", err)
	}
	return s, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRow(s scanner, sheetName string) (domain.SheetRow, error) {
	var (
		row domain.SheetRow
		id  pgtype.UUID
	)
	if err := s.Scan(&id, &row.Cells, &row.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.SheetRow{}, domain.ErrNotFound
		}
		return domain.SheetRow{}, err
	}
	row.ID = uuid.UUID(id.Bytes)
	row.SheetName = sheetName
	return row, nil
}

func scanSheet(s scanner) (domain.Sheet, error) {
	var (
		sh domain.Sheet
		id pgtype.UUID
	)
	if err := s.Scan(&id, &sh.Name, &sh.Position, &sh.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Sheet{}, domain.ErrNotFound
		}
		return domain.Sheet{}, err
	}
	sh.ID = uuid.UUID(id.Bytes)
	return sh, nil
}
