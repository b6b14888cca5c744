package content

import "sort"

// Selection is the active section plus the set of expanded panels.
// It is a value: every transition returns a new Selection and leaves
// the receiver untouched.
type Selection struct {
	Active SectionID
	open   map[string]bool
}

// Default is the selection at process start: the first section, all
// panels collapsed.
func Default() Selection {
	return Selection{Active: Overview}
}

// Select makes id active. Panels of the previous section do not carry over.
func (s Selection) Select(id SectionID) Selection {
	return Selection{Active: id}
}

// Expand opens the panel named key. Keys that are not panels of the
// active section are ignored.
func (s Selection) Expand(key string) Selection {
	if s.Expanded(key) {
		return s
	}
	sec, ok := Lookup(s.Active)
	if !ok || !sec.HasPanel(key) {
		return s
	}
	next := s.clone()
	next.open[key] = true
	return next
}

// Collapse closes the panel named key.
func (s Selection) Collapse(key string) Selection {
	if !s.Expanded(key) {
		return s
	}
	next := s.clone()
	delete(next.open, key)
	if len(next.open) == 0 {
		next.open = nil
	}
	return next
}

// Toggle flips the panel named key.
func (s Selection) Toggle(key string) Selection {
	if s.Expanded(key) {
		return s.Collapse(key)
	}
	return s.Expand(key)
}

// Expanded reports whether the panel named key is open.
func (s Selection) Expanded(key string) bool {
	return s.open[key]
}

// OpenPanels lists the expanded panel keys in sorted order.
func (s Selection) OpenPanels() []string {
	if len(s.open) == 0 {
		return nil
	}
	keys := make([]string, 0, len(s.open))
	for k := range s.open {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether two selections show the same thing.
func (s Selection) Equal(o Selection) bool {
	if s.Active != o.Active || len(s.open) != len(o.open) {
		return false
	}
	for k := range s.open {
		if !o.open[k] {
			return false
		}
	}
	return true
}

func (s Selection) clone() Selection {
	next := Selection{Active: s.Active, open: make(map[string]bool, len(s.open)+1)}
	for k := range s.open {
		next.open[k] = true
	}
	return next
}
