package grid

// BlockStart scans backward from index while the preceding column's
// metadata at headerRow equals md. A column without metadata at that depth
// ends the scan.
func BlockStart(cols []*Column, md HeaderMetaData, headerRow, index int) int {
	i := index
	for i > 0 {
		prev, ok := cols[i-1].HeaderAt(headerRow)
		if !ok || !prev.Equal(md) {
			break
		}
		i--
	}
	return i
}

// BlockEnd scans forward symmetrically to [BlockStart].
func BlockEnd(cols []*Column, md HeaderMetaData, headerRow, index int) int {
	i := index
	for i < len(cols)-1 {
		next, ok := cols[i+1].HeaderAt(headerRow)
		if !ok || !next.Equal(md) {
			break
		}
		i++
	}
	return i
}

// BlockRange returns the inclusive index range of the block containing the
// column at index, measured at headerRow. ok is false when the index is out
// of range or the column has no metadata at that depth.
func BlockRange(cols []*Column, headerRow, index int) (start, end int, ok bool) {
	if index < 0 || index >= len(cols) {
		return 0, 0, false
	}
	md, ok := cols[index].HeaderAt(headerRow)
	if !ok {
		return 0, 0, false
	}
	return BlockStart(cols, md, headerRow, index), BlockEnd(cols, md, headerRow, index), true
}

// BlockColumns returns a copy of the block containing the column at index.
func BlockColumns(cols []*Column, headerRow, index int) []*Column {
	start, end, ok := BlockRange(cols, headerRow, index)
	if !ok {
		return nil
	}
	return append([]*Column(nil), cols[start:end+1]...)
}

// BlockWidth sums the widths of the visible columns in [start, end].
func BlockWidth(cols []*Column, start, end int) float64 {
	w := 0.0
	for i := max(start, 0); i <= end && i < len(cols); i++ {
		if cols[i].visible {
			w += cols[i].width
		}
	}
	return w
}
