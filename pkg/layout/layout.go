package layout

import "github.com/matzehuels/kanvax/pkg/canvas"

// Masonry places elements into the currently shortest column.
func Masonry(elems []canvas.Element, opts ...Option) []canvas.Update {
	if len(elems) == 0 {
		return nil
	}
	cfg := newConfig(opts)

	colW := cfg.maxWidth / float64(cfg.columns)
	if cfg.maxWidth == 0 {
		total := 0.0
		for _, e := range elems {
			total += e.Width
		}
		colW = total / float64(len(elems))
	}

	bottoms := make([]float64, cfg.columns)
	for i := range bottoms {
		bottoms[i] = cfg.start.Y
	}

	updates := make([]canvas.Update, len(elems))
	for i, e := range elems {
		col := shortest(bottoms)
		updates[i] = canvas.Update{
			ID: e.ID,
			X:  cfg.start.X + float64(col)*(colW+cfg.gap),
			Y:  bottoms[col],
		}
		h := e.Height
		if e.Width > 0 {
			h = e.Height * (colW / e.Width)
		}
		bottoms[col] += h + cfg.gap
	}
	return updates
}

func shortest(bottoms []float64) int {
	best := 0
	for i := 1; i < len(bottoms); i++ {
		if bottoms[i] < bottoms[best] {
			best = i
		}
	}
	return best
}

// Bento alternates a full-width large cell with rows of two small cells.
// Every third element is large unless it is the last one.
func Bento(elems []canvas.Element, opts ...Option) []canvas.Update {
	if len(elems) == 0 {
		return nil
	}
	cfg := newConfig(opts)

	unit := cfg.maxWidth
	if unit == 0 {
		unit = DefaultBentoWidth
	}
	largeH := unit * bentoAspect
	smallW := (unit - cfg.gap) / bentoCellsPerRow
	smallH := smallW * bentoAspect

	updates := make([]canvas.Update, len(elems))
	y := cfg.start.Y
	col := 0
	for i, e := range elems {
		if i%bentoLargeEveryNth == 0 && i != len(elems)-1 {
			if col > 0 {
				y += smallH + cfg.gap
				col = 0
			}
			updates[i] = canvas.Update{ID: e.ID, X: cfg.start.X, Y: y}
			y += largeH + cfg.gap
			continue
		}

		updates[i] = canvas.Update{
			ID: e.ID,
			X:  cfg.start.X + float64(col)*(smallW+cfg.gap),
			Y:  y,
		}
		col++
		if col == bentoCellsPerRow {
			y += smallH + cfg.gap
			col = 0
		}
	}
	return updates
}

// Grid places elements row by row in uniform cells sized to the largest
// element.
func Grid(elems []canvas.Element, opts ...Option) []canvas.Update {
	if len(elems) == 0 {
		return nil
	}
	cfg := newConfig(opts)

	var cellW, cellH float64
	for _, e := range elems {
		cellW = max(cellW, e.Width)
		cellH = max(cellH, e.Height)
	}

	updates := make([]canvas.Update, len(elems))
	for i, e := range elems {
		col, row := i%cfg.columns, i/cfg.columns
		updates[i] = canvas.Update{
			ID: e.ID,
			X:  cfg.start.X + float64(col)*(cellW+cfg.gap),
			Y:  cfg.start.Y + float64(row)*(cellH+cfg.gap),
		}
	}
	return updates
}
