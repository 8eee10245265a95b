package model

// CategoryAxis keeps the raw labels in source order. Distinct holds the
// same labels with duplicates removed, first occurrence first.
type CategoryAxis struct {
	DisplayName string
	Values      []string
	IDs         []SelectionID
	Distinct    []string
}

func NewCategoryAxis(displayName string, values []string, ids []SelectionID) CategoryAxis {
	return CategoryAxis{
		DisplayName: displayName,
		Values:      values,
		IDs:         ids,
		Distinct:    Deduplicate(values),
	}
}

func (a CategoryAxis) Len() int {
	return len(a.Values)
}

// GroupSize is the number of cursor positions one outer step spans when
// this axis is the inner one.
func (a CategoryAxis) GroupSize() int {
	return len(a.Distinct)
}

func Deduplicate(values []string) []string {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))

	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}
