package db

import (
	"encoding/json"
	"fmt"

	"github.com/dasdy/datanav/model"
)

// StoreObjects replaces the configuration objects of a dataset. Values are
// kept as JSON so bools and numbers survive the round trip.
func (s *SQLiteStorage) StoreObjects(name string, objects model.Objects) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("could not start transaction: %w", err)
	}

	if _, err := tx.Exec(`delete from dataset_objects where dataset = ?`, name); err != nil {
		_ = tx.Rollback()

		return fmt.Errorf("could not clear objects of %s: %w", name, err)
	}

	for object, properties := range objects {
		for property, value := range properties {
			encoded, err := json.Marshal(value)
			if err != nil {
				_ = tx.Rollback()

				return fmt.Errorf("could not encode %s.%s: %w", object, property, err)
			}

			_, err = tx.Exec(`insert into dataset_objects(dataset, object, property, value)
	    values(?, ?, ?, ?)`,
				name, object, property, string(encoded))
			if err != nil {
				_ = tx.Rollback()

				return fmt.Errorf("could not insert %s.%s: %w", object, property, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit objects of %s: %w", name, err)
	}

	return nil
}

// LoadObjects returns an empty set when nothing was stored.
func (s *SQLiteStorage) LoadObjects(name string) (model.Objects, error) {
	rows, err := s.db.Query(
		`select object, property, value from dataset_objects where dataset = ?`, name)
	if err != nil {
		return nil, fmt.Errorf("could not query objects: %w", err)
	}
	defer rows.Close()

	result := make(model.Objects)

	for rows.Next() {
		var object, property, encoded string

		if err := rows.Scan(&object, &property, &encoded); err != nil {
			return nil, fmt.Errorf("could not scan object: %w", err)
		}

		var value any
		if err := json.Unmarshal([]byte(encoded), &value); err != nil {
			return nil, fmt.Errorf("could not decode %s.%s: %w", object, property, err)
		}

		if result[object] == nil {
			result[object] = make(map[string]any)
		}

		result[object][property] = value
	}

	return result, rows.Err()
}
