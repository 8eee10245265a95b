package dataset

import (
	"errors"
	"fmt"
	"io"

	"github.com/dasdy/datanav/model"
	"gopkg.in/yaml.v3"
)

// File is the on-disk description of a dataset:
//
//	name: sales
//	columns:
//	  - name: Region
//	    roles: [horizontalCategory]
//	    values: [A, A, B, B]
//	  - name: Product
//	    roles: [verticalCategory]
//	    values: [X, Y, X, Y]
//	objects:
//	  navigation:
//	    incremental: 1
//
// Column order is metadata order. A column without values is metadata only.
type File struct {
	Name    string        `yaml:"name"`
	Columns []FileColumn  `yaml:"columns"`
	Objects model.Objects `yaml:"objects"`
}

type FileColumn struct {
	Name   string   `yaml:"name"`
	Roles  []string `yaml:"roles"`
	Values []any    `yaml:"values"`
}

func LoadYAML(reader io.Reader) (*File, error) {
	decoder := yaml.NewDecoder(reader)

	var f File
	if err := decoder.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &File{}, nil
		}

		return nil, fmt.Errorf("could not decode dataset YAML: %w", err)
	}

	for i, c := range f.Columns {
		if c.Name == "" {
			return nil, fmt.Errorf("column %d has no name", i)
		}

		for _, r := range c.Roles {
			if role := model.Role(r); role != model.RoleHorizontal && role != model.RoleVertical {
				return nil, fmt.Errorf("column %s: unknown role %q", c.Name, r)
			}
		}
	}

	return &f, nil
}

// DataView converts the file into the payload the view-model builder expects.
func (f *File) DataView() *model.DataView {
	view := &model.DataView{
		Metadata:   make([]model.Column, 0, len(f.Columns)),
		Categories: make([]model.CategoryColumn, 0, len(f.Columns)),
	}

	for _, c := range f.Columns {
		column := model.Column{DisplayName: c.Name, Roles: make(map[model.Role]bool, len(c.Roles))}
		for _, r := range c.Roles {
			column.Roles[model.Role(r)] = true
		}

		view.Metadata = append(view.Metadata, column)

		if c.Values != nil {
			view.Categories = append(view.Categories, model.CategoryColumn{Source: column, Values: c.Values})
		}
	}

	return view
}
