package parallel

// Band is a run of consecutive rows [Y, Y+Rows).
type Band struct {
	Y    int
	Rows int
}

// Bands splits h rows into disjoint bands of at most rows rows each.
// A non-positive rows value splits h evenly across workers.
// The bands cover [0, h) exactly once, in order.
func Bands(h, rows, workers int) []Band {
	if h <= 0 {
		return nil
	}
	if rows <= 0 {
		workers = max(workers, 1)
		rows = (h + workers - 1) / workers
	}

	bands := make([]Band, 0, (h+rows-1)/rows)
	for y := 0; y < h; y += rows {
		bands = append(bands, Band{Y: y, Rows: min(rows, h-y)})
	}
	return bands
}
