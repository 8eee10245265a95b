package db

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/dasdy/datanav/model"
	"github.com/dasdy/datanav/viewmodel"
	_ "github.com/mattn/go-sqlite3"
	"github.com/schollz/progressbar/v3"
)

var ErrUnknownDataset = errors.New("unknown dataset")

type SQLiteStorage struct {
	db           *sql.DB
	showProgress bool
}

func InitDBStorage(db *sql.DB) error {
	statements := []string{
		`create table if not exists datasets(name text primary key, created datetime)`,
		`create table if not exists dataset_columns(
			dataset text, position int, display_name text, roles text, category bool)`,
		`create table if not exists category_values(dataset text, display_name text, idx int, value text)`,
		`create index if not exists category_values_ix on category_values (dataset, display_name, idx)`,
		`create table if not exists dataset_objects(dataset text, object text, property text, value text)`,
		`create table if not exists selections(dataset text, selection_key text, ts datetime)`,
		`create index if not exists selections_tsix on selections (dataset, ts DESC)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			slog.Error("could not init storage", "statement", stmt, "error", err)

			return fmt.Errorf("could not init storage: %w", err)
		}
	}

	return nil
}

func NewStorageFromConnection(conn *sql.DB, showProgress bool) (*SQLiteStorage, error) {
	if err := InitDBStorage(conn); err != nil {
		return nil, err
	}

	return &SQLiteStorage{db: conn, showProgress: showProgress}, nil
}

func NewStorageFromPath(path string, showProgress bool) (*SQLiteStorage, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	// Every pooled connection to ":memory:" would get its own database.
	conn.SetMaxOpenConns(1)

	return NewStorageFromConnection(conn, showProgress)
}

// StoreDataset replaces the dataset called name with view.
func (s *SQLiteStorage) StoreDataset(name string, view *model.DataView) error {
	total := 0
	for _, c := range view.Categories {
		total += len(c.Values)
	}

	var bar *progressbar.ProgressBar
	if s.showProgress {
		bar = progressbar.Default(int64(total), "Importing "+name)
	} else {
		bar = progressbar.DefaultSilent(int64(total))
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("could not start transaction: %w", err)
	}

	if err := storeDataset(tx, name, view, bar); err != nil {
		_ = tx.Rollback()

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit dataset %s: %w", name, err)
	}

	if err := bar.Finish(); err != nil {
		slog.Error("could not finish progress bar", "error", err)
	}

	return nil
}

func storeDataset(tx *sql.Tx, name string, view *model.DataView, bar *progressbar.ProgressBar) error {
	for _, table := range []string{"datasets", "dataset_columns", "category_values"} {
		column := "dataset"
		if table == "datasets" {
			column = "name"
		}

		//nolint:gosec
		if _, err := tx.Exec(fmt.Sprintf("delete from %s where %s = ?", table, column), name); err != nil {
			return fmt.Errorf("could not clear %s for %s: %w", table, name, err)
		}
	}

	if _, err := tx.Exec(`insert into datasets(name, created) values(?, datetime('now', 'subsec'))`, name); err != nil {
		return fmt.Errorf("could not insert dataset %s: %w", name, err)
	}

	categories := make(map[string]model.CategoryColumn, len(view.Categories))
	for _, c := range view.Categories {
		categories[c.Source.DisplayName] = c
	}

	for i, column := range view.Metadata {
		_, isCategory := categories[column.DisplayName]

		_, err := tx.Exec(`insert into dataset_columns(dataset, position, display_name, roles, category)
	    values(?, ?, ?, ?, ?)`,
			name, i, column.DisplayName, encodeRoles(column.Roles), isCategory)
		if err != nil {
			return fmt.Errorf("could not insert column %s: %w", column.DisplayName, err)
		}
	}

	stmt, err := tx.Prepare(`insert into category_values(dataset, display_name, idx, value) values(?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("could not prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range view.Categories {
		for i, v := range c.Values {
			if _, err := stmt.Exec(name, c.Source.DisplayName, i, viewmodel.ToLabel(v)); err != nil {
				return fmt.Errorf("could not insert value %d of %s: %w", i, c.Source.DisplayName, err)
			}

			if err := bar.Add(1); err != nil {
				slog.Error("could not update progress bar", "error", err)
			}
		}
	}

	return nil
}

// LoadDataView returns the stored dataset. Category values come back as strings.
func (s *SQLiteStorage) LoadDataView(name string) (*model.DataView, error) {
	var found string

	err := s.db.QueryRow(`select name from datasets where name = ?`, name).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDataset, name)
	}

	if err != nil {
		return nil, fmt.Errorf("could not look up dataset %s: %w", name, err)
	}

	rows, err := s.db.Query(
		`select display_name, roles, category
        from dataset_columns
        where dataset = ?
        order by position`, name)
	if err != nil {
		return nil, fmt.Errorf("could not query columns: %w", err)
	}
	defer rows.Close()

	view := &model.DataView{}
	categoryNames := make([]string, 0)

	for rows.Next() {
		var (
			displayName, roles string
			isCategory         bool
		)

		if err := rows.Scan(&displayName, &roles, &isCategory); err != nil {
			return nil, fmt.Errorf("could not scan column: %w", err)
		}

		view.Metadata = append(view.Metadata, model.Column{DisplayName: displayName, Roles: decodeRoles(roles)})

		if isCategory {
			categoryNames = append(categoryNames, displayName)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read columns: %w", err)
	}

	for _, displayName := range categoryNames {
		values, err := s.categoryValues(name, displayName)
		if err != nil {
			return nil, err
		}

		i := slices.IndexFunc(view.Metadata, func(c model.Column) bool { return c.DisplayName == displayName })
		view.Categories = append(view.Categories, model.CategoryColumn{Source: view.Metadata[i], Values: values})
	}

	return view, nil
}

func (s *SQLiteStorage) categoryValues(dataset, displayName string) ([]any, error) {
	rows, err := s.db.Query(
		`select value from category_values
        where dataset = ? and display_name = ?
        order by idx`, dataset, displayName)
	if err != nil {
		return nil, fmt.Errorf("could not query values of %s: %w", displayName, err)
	}
	defer rows.Close()

	result := make([]any, 0)

	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("could not scan value: %w", err)
		}

		result = append(result, value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read values of %s: %w", displayName, err)
	}

	return result, nil
}

func (s *SQLiteStorage) Datasets() ([]string, error) {
	rows, err := s.db.Query(`select name from datasets order by name`)
	if err != nil {
		return nil, fmt.Errorf("could not query datasets: %w", err)
	}
	defer rows.Close()

	result := make([]string, 0)

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("could not scan dataset: %w", err)
		}

		result = append(result, name)
	}

	return result, rows.Err()
}

func (s *SQLiteStorage) RecordSelection(dataset, key string) error {
	_, err := s.db.Exec(`insert into selections(dataset, selection_key, ts)
	    values(?, ?, datetime('now', 'subsec'))`,
		dataset, key)
	if err != nil {
		return fmt.Errorf("could not record selection %s: %w", key, err)
	}

	return nil
}

// SelectionHistory returns the latest selections first.
func (s *SQLiteStorage) SelectionHistory(dataset string, limit int) ([]model.SelectionRecord, error) {
	rows, err := s.db.Query(
		`select selection_key, ts from selections
        where dataset = ?
        order by ts desc, rowid desc
        limit ?`, dataset, limit)
	if err != nil {
		return nil, fmt.Errorf("could not query selections: %w", err)
	}
	defer rows.Close()

	result := make([]model.SelectionRecord, 0)

	for rows.Next() {
		var r model.SelectionRecord
		if err := rows.Scan(&r.Key, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("could not scan selection: %w", err)
		}

		result = append(result, r)
	}

	return result, rows.Err()
}

func (s *SQLiteStorage) Close() {
	if err := s.db.Close(); err != nil {
		slog.Error("could not close storage", "error", err)
	}
}

func encodeRoles(roles map[model.Role]bool) string {
	names := make([]string, 0, len(roles))

	for role, present := range roles {
		if present {
			names = append(names, string(role))
		}
	}

	slices.Sort(names)

	return strings.Join(names, ",")
}

func decodeRoles(s string) map[model.Role]bool {
	roles := make(map[model.Role]bool)

	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			roles[model.Role(name)] = true
		}
	}

	return roles
}
