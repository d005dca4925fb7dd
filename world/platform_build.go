package world

import (
	"slices"

	"github.com/milk9111/platformer/levels"
)

// cell is a grid position in world rows: row 0 is the bottom of the map.
type cell struct{ col, row int }

// arrowRun is a straight run of one arrow glyph. line is the row of a
// horizontal run or the column of a vertical one; start and end are
// inclusive indices along the run.
type arrowRun struct {
	line       int
	start, end int
	dir        int
}

// entry is the cell a block must occupy for this run to drive it: the cell
// just before a forward run, or just after a backward one.
func (r arrowRun) entry() int {
	if r.dir > 0 {
		return r.start - 1
	}
	return r.end + 1
}

// platformTile is one cell of a moving block with its travel range in
// tile indices along axis.
type platformTile struct {
	cell
	glyph  rune
	axis   Axis
	dir    int
	lo, hi int
}

func platformEligible(g rune) bool {
	return isTerrain(g) || isHazard(g) || g == levels.GlyphExit
}

// fusePlatforms finds blocks of 4-connected eligible glyphs that touch an
// arrow run and turns every cell of such a block into a platform tile.
// Horizontal runs win over vertical ones. Each tile's range is the block's
// travel shifted by the tile's offset inside the block, so the whole block
// moves as one.
func fusePlatforms(grid [][]rune) []platformTile {
	hRuns, vRuns := collectRuns(grid)
	var out []platformTile
	for _, block := range labelBlocks(grid) {
		axis := AxisX
		run, ok := fuseRuns(block, hRuns, func(c cell) (int, int) { return c.row, c.col })
		if !ok {
			axis = AxisY
			run, ok = fuseRuns(block, vRuns, func(c cell) (int, int) { return c.col, c.row })
		}
		if !ok {
			continue
		}

		along := func(c cell) int {
			if axis == AxisY {
				return c.row
			}
			return c.col
		}
		bmin, bmax := along(block[0]), along(block[0])
		for _, c := range block {
			bmin = min(bmin, along(c))
			bmax = max(bmax, along(c))
		}
		for _, c := range block {
			pos := along(c)
			a := run.start + (pos - bmin)
			b := run.end - (bmax - pos)
			out = append(out, platformTile{
				cell:  c,
				glyph: grid[c.row][c.col],
				axis:  axis,
				dir:   run.dir,
				lo:    min(pos, a),
				hi:    max(pos, b),
			})
		}
	}
	return out
}

// fuseRuns merges every run adjacent to block on the first line that has
// one. split maps a cell to (line, position along the run).
func fuseRuns(block []cell, runs []arrowRun, split func(cell) (int, int)) (arrowRun, bool) {
	lines := make([]int, 0, len(block))
	for _, c := range block {
		line, _ := split(c)
		if !slices.Contains(lines, line) {
			lines = append(lines, line)
		}
	}
	slices.Sort(lines)

	for _, line := range lines {
		var fused arrowRun
		found := false
		for _, r := range runs {
			if r.line != line || !blockHas(block, split, line, r.entry()) {
				continue
			}
			if !found {
				fused, found = r, true
				continue
			}
			fused.start = min(fused.start, r.start)
			fused.end = max(fused.end, r.end)
		}
		if found {
			return fused, true
		}
	}
	return arrowRun{}, false
}

func blockHas(block []cell, split func(cell) (int, int), line, pos int) bool {
	for _, c := range block {
		if l, p := split(c); l == line && p == pos {
			return true
		}
	}
	return false
}

// labelBlocks groups eligible cells into 4-connected blocks, each sorted by
// row then column.
func labelBlocks(grid [][]rune) [][]cell {
	seen := make(map[cell]bool)
	var blocks [][]cell
	for row := range grid {
		for col := range grid[row] {
			start := cell{col, row}
			if seen[start] || !platformEligible(grid[row][col]) {
				continue
			}
			seen[start] = true
			stack := []cell{start}
			var block []cell
			for len(stack) > 0 {
				c := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				block = append(block, c)
				for _, n := range [4]cell{{c.col - 1, c.row}, {c.col + 1, c.row}, {c.col, c.row - 1}, {c.col, c.row + 1}} {
					if n.row < 0 || n.row >= len(grid) || n.col < 0 || n.col >= len(grid[n.row]) {
						continue
					}
					if seen[n] || !platformEligible(grid[n.row][n.col]) {
						continue
					}
					seen[n] = true
					stack = append(stack, n)
				}
			}
			slices.SortFunc(block, func(a, b cell) int {
				if a.row != b.row {
					return a.row - b.row
				}
				return a.col - b.col
			})
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// collectRuns finds horizontal runs of ← → along rows and vertical runs of
// ↑ ↓ up columns. → and ↑ point forward.
func collectRuns(grid [][]rune) (h, v []arrowRun) {
	for row, line := range grid {
		for col := 0; col < len(line); col++ {
			g := line[col]
			if g != levels.GlyphLeft && g != levels.GlyphRight {
				continue
			}
			start := col
			for col+1 < len(line) && line[col+1] == g {
				col++
			}
			dir := -1
			if g == levels.GlyphRight {
				dir = 1
			}
			h = append(h, arrowRun{line: row, start: start, end: col, dir: dir})
		}
	}

	width := 0
	for _, line := range grid {
		width = max(width, len(line))
	}
	at := func(col, row int) rune {
		if col < len(grid[row]) {
			return grid[row][col]
		}
		return ' '
	}
	for col := 0; col < width; col++ {
		for row := 0; row < len(grid); row++ {
			g := at(col, row)
			if g != levels.GlyphUp && g != levels.GlyphDown {
				continue
			}
			start := row
			for row+1 < len(grid) && at(col, row+1) == g {
				row++
			}
			dir := -1
			if g == levels.GlyphUp {
				dir = 1
			}
			v = append(v, arrowRun{line: col, start: start, end: row, dir: dir})
		}
	}
	return h, v
}
