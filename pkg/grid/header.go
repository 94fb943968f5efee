package grid

// HeaderMetaData describes a column's cell in one header row.
//
// Group is the identity of the header cell: adjacent columns with the same
// Group (and Scope) at the same header row form a block. Scope restricts
// which blocks may be swapped with each other during a column move; blocks
// only trade places with blocks of the same Scope. The zero Scope is shared
// by every block.
type HeaderMetaData struct {
	Group string
	Scope string
}

// Header is shorthand for a HeaderMetaData with the default scope.
func Header(group string) HeaderMetaData {
	return HeaderMetaData{Group: group}
}

// Equal reports whether two header cells belong to the same block.
func (m HeaderMetaData) Equal(o HeaderMetaData) bool {
	return m.Group == o.Group && m.Scope == o.Scope
}

// SameScope reports whether blocks headed by m and o may trade places.
func (m HeaderMetaData) SameScope(o HeaderMetaData) bool {
	return m.Scope == o.Scope
}
