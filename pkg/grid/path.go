// pkg/grid/path.go
package grid

import "math/rand"

// GeneratePath builds the enemy route: a chain of unique cells from a random
// row on the left edge to a random row on the right edge, stepping only up,
// down, or right. Vertical excursions are allowed; revisits and left steps
// are not, so the chain is simple and monotone in column order.
func GeneratePath(rng *rand.Rand) []Cell {
	start := Cell{Row: rng.Intn(Size), Col: 0}
	endRow := rng.Intn(Size)

	path := []Cell{start}
	visited := CellSet{start: {}}
	current := start

	for !(current.Col == Size-1 && current.Row == endRow) {
		up := Cell{Row: current.Row - 1, Col: current.Col}
		down := Cell{Row: current.Row + 1, Col: current.Col}
		right := Cell{Row: current.Row, Col: current.Col + 1}

		var candidates []Cell
		if current.Col == Size-1 {
			// Last column: only the step toward the chosen end row remains.
			if endRow < current.Row {
				candidates = []Cell{up}
			} else {
				candidates = []Cell{down}
			}
		} else {
			candidates = []Cell{up, down, right}
		}

		valid := candidates[:0]
		for _, c := range candidates {
			if c.InBounds() && !visited.Has(c) {
				valid = append(valid, c)
			}
		}

		var next Cell
		switch {
		case len(valid) > 0:
			next = valid[rng.Intn(len(valid))]
		case right.InBounds() && !visited.Has(right):
			next = right
		default:
			// Blocked in the last column: splice a straight vertical run
			// down (or up) to the end row.
			step := 1
			if endRow < current.Row {
				step = -1
			}
			for r := current.Row + step; ; r += step {
				c := Cell{Row: r, Col: Size - 1}
				if !visited.Has(c) {
					path = append(path, c)
					visited[c] = struct{}{}
				}
				if r == endRow {
					break
				}
			}
			return path
		}

		path = append(path, next)
		visited[next] = struct{}{}
		current = next
	}

	return path
}
