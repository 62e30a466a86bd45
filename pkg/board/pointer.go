package board

// ColumnFromPointer maps a horizontal pointer coordinate to a column by
// splitting width into columns equal slices. Only a coordinate strictly
// inside a slice selects it. Coordinates on a slice boundary or outside
// the board fall back to column 0.
func ColumnFromPointer(x, width float64, columns int) int {
	if columns <= 0 || width <= 0 {
		return 0
	}

	colWidth := width / float64(columns)

	index := 0
	for i := 0; i < columns; i++ {
		left := float64(i) * colWidth
		if x > left && x < left+colWidth {
			index = i
		}
	}

	return index
}
