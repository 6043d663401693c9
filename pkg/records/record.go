// Package records defines the generic row representation exchanged between
// the parser and the typed ledger layer. A Record is a loosely-typed map of
// canonical column key to raw cell value; nil marks an empty cell.
package records

// Record is one parsed row keyed by canonical column name.
type Record map[string]any

// String returns the string value for key. ok is false when the key is
// absent, nil, or not a string.
func (r Record) String(key string) (string, bool) {
	v, exists := r[key]
	if !exists || v == nil {
		return "", false
	}
	s, isStr := v.(string)
	if !isStr {
		return "", false
	}
	return s, true
}
