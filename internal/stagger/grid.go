package stagger

import "math"

// gridOffsets maps elements to (row, col) positions row-major, measures
// each position's distance from the origin point, and scales normalized
// distances by the base delay, so offsets span [0, BaseDelay].
func gridOffsets(n int, cfg Config) ([]float64, error) {
	rows, cols := cfg.Grid.Rows, cfg.Grid.Cols
	if rows <= 0 || cols <= 0 {
		rows, cols = inferGrid(n)
	}

	var originRow, originCol float64
	switch cfg.Grid.Origin {
	case OriginCenter:
		originRow = float64(rows-1) / 2
		originCol = float64(cols-1) / 2
	case OriginCustom:
		originRow = cfg.Grid.OriginRow
		originCol = cfg.Grid.OriginCol
	default:
		// Corner origin: top-left cell.
	}

	dists := make([]float64, n)
	maxDist := 0.0
	for i := 0; i < n; i++ {
		dr := float64(i/cols) - originRow
		dc := float64(i%cols) - originCol
		var d float64
		switch cfg.Grid.Metric {
		case Manhattan:
			d = math.Abs(dr) + math.Abs(dc)
		default:
			d = math.Sqrt(dr*dr + dc*dc)
		}
		dists[i] = d
		if d > maxDist {
			maxDist = d
		}
	}

	out := make([]float64, n)
	if maxDist == 0 {
		return out, nil
	}
	for i, d := range dists {
		out[i] = d / maxDist * cfg.BaseDelay
	}
	return out, nil
}

// inferGrid picks the nearest square-ish factorization for an element
// count without explicit dimensions.
func inferGrid(n int) (rows, cols int) {
	cols = int(math.Ceil(math.Sqrt(float64(n))))
	rows = (n + cols - 1) / cols
	return rows, cols
}
