package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/dasdy/datanav/model"
)

// CSVOptions names the columns that feed each axis. SortedBy decides which
// of them comes first in the metadata.
type CSVOptions struct {
	Horizontal string
	Vertical   string
	SortedBy   model.SortedBy
}

// LoadCSV reads a table with a header row. Only the columns named in opts
// are kept; every other column is ignored.
func LoadCSV(reader io.Reader, opts CSVOptions) (*model.DataView, error) {
	if opts.Horizontal == "" && opts.Vertical == "" {
		return nil, errors.New("at least one of the horizontal and vertical columns is required")
	}

	r := csv.NewReader(reader)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read CSV header: %w", err)
	}

	type wanted struct {
		name  string
		role  model.Role
		index int
	}

	columns := make([]wanted, 0, 2)

	for _, w := range []wanted{{opts.Horizontal, model.RoleHorizontal, -1}, {opts.Vertical, model.RoleVertical, -1}} {
		if w.name == "" {
			continue
		}

		w.index = slices.Index(header, w.name)
		if w.index < 0 {
			return nil, fmt.Errorf("column %q not found in header %v", w.name, header)
		}

		columns = append(columns, w)
	}

	if opts.SortedBy == model.SortedByVertical {
		slices.Reverse(columns)
	}

	values := make([][]any, len(columns))

	for line := 2; ; line++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("could not read CSV line %d: %w", line, err)
		}

		for i, c := range columns {
			values[i] = append(values[i], record[c.index])
		}
	}

	view := &model.DataView{}

	for i, c := range columns {
		column := model.Column{DisplayName: c.name, Roles: map[model.Role]bool{c.role: true}}
		view.Metadata = append(view.Metadata, column)

		if values[i] == nil {
			values[i] = []any{}
		}

		view.Categories = append(view.Categories, model.CategoryColumn{Source: column, Values: values[i]})
	}

	return view, nil
}
