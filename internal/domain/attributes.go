package domain

// GroupAttributes groups flat (name, value) pairs by attribute name.
// Name order and value order follow first appearance; duplicate values
// for the same name are dropped.
func GroupAttributes(attrs []Attribute) []AttributeSet {
	var sets []AttributeSet
	index := make(map[string]int)
	seen := make(map[Attribute]struct{})
	for _, a := range attrs {
		i, ok := index[a.Name]
		if !ok {
			i = len(sets)
			index[a.Name] = i
			sets = append(sets, AttributeSet{Name: a.Name})
		}
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		sets[i].Values = append(sets[i].Values, a.Value)
	}
	return sets
}

// SetOption sets the value for an attribute name in a selection,
// overwriting any prior value for that name.
func SetOption(opts []SelectedOption, name, value string) []SelectedOption {
	for i := range opts {
		if opts[i].Name == name {
			opts[i].Value = value
			return opts
		}
	}
	return append(opts, SelectedOption{Name: name, Value: value})
}

// DefaultSelection builds the quick-add selection: the first declared
// value per attribute, or the empty string when an attribute has no
// values.
func DefaultSelection(sets []AttributeSet) []SelectedOption {
	opts := make([]SelectedOption, 0, len(sets))
	for _, s := range sets {
		value := ""
		if len(s.Values) > 0 {
			value = s.Values[0]
		}
		opts = append(opts, SelectedOption{Name: s.Name, Value: value})
	}
	return opts
}
