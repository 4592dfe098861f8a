package heightmap

import (
	"bufio"
	"io"
	"strings"
)

// maxLineBytes bounds a single input row.
const maxLineBytes = 16 << 20

// New constructs a HeightMap from a non-empty, rectangular 2D slice of
// elevations in [0,9]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrInvalidElevation wrapped in
// a *ParseError naming the offending row (and column, for bad values).
// Complexity: O(W×H) time and memory.
func New(values [][]int) (*HeightMap, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, &ParseError{Err: ErrEmptyGrid}
	}
	h, w := len(values), len(values[0])
	cells := make([]int, 0, h*w)
	for y, row := range values {
		if len(row) != w {
			return nil, &ParseError{Line: y + 1, Err: ErrNonRectangular}
		}
		for x, v := range row {
			if v < MinElevation || v > MaxElevation {
				return nil, &ParseError{Line: y + 1, Column: x + 1, Err: ErrInvalidElevation}
			}
		}
		cells = append(cells, row...)
	}

	return &HeightMap{rows: h, cols: w, cells: cells}, nil
}

// Parse builds a HeightMap from text, one digit per character and one row
// per line. CRLF line endings and a single trailing newline are accepted.
func Parse(text string) (*HeightMap, error) {
	return Read(strings.NewReader(text))
}

// Read is Parse over an io.Reader.
func Read(r io.Reader) (*HeightMap, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var (
		cells []int
		rows  int
		cols  = -1
	)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		lineNo := rows + 1
		if cols < 0 {
			if line == "" {
				return nil, &ParseError{Line: lineNo, Err: ErrEmptyGrid}
			}
			cols = len(line)
		}
		if len(line) != cols {
			return nil, &ParseError{Line: lineNo, Err: ErrNonRectangular}
		}
		for i, ch := range []byte(line) {
			if ch < '0' || ch > '9' {
				return nil, &ParseError{Line: lineNo, Column: i + 1, Char: rune(ch), Err: ErrInvalidElevation}
			}
			cells = append(cells, int(ch-'0'))
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, &ParseError{Err: ErrEmptyGrid}
	}

	return &HeightMap{rows: rows, cols: cols, cells: cells}, nil
}

// Get returns the elevation at column x, row y.
// ok is false when (x,y) lies outside the map; negative coordinates are
// always outside and never wrap.
// Complexity: O(1).
func (hm *HeightMap) Get(x, y int) (elevation int, ok bool) {
	if !hm.InBounds(x, y) {
		return 0, false
	}

	return hm.cells[y*hm.cols+x], true
}

// At is Get for a Point.
func (hm *HeightMap) At(p Point) (int, bool) {
	return hm.Get(p.X, p.Y)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (hm *HeightMap) InBounds(x, y int) bool {
	return x >= 0 && x < hm.cols && y >= 0 && y < hm.rows
}

// Dimensions returns the number of rows and columns.
func (hm *HeightMap) Dimensions() (rows, cols int) {
	return hm.rows, hm.cols
}

// Rows returns the map height.
func (hm *HeightMap) Rows() int { return hm.rows }

// Cols returns the map width.
func (hm *HeightMap) Cols() int { return hm.cols }

// Len returns the number of cells, rows×cols.
func (hm *HeightMap) Len() int { return len(hm.cells) }

// Index maps p to its row-major index: y*cols + x.
// The result is meaningless for points outside the map.
// Complexity: O(1).
func (hm *HeightMap) Index(p Point) int {
	return p.Y*hm.cols + p.X
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (hm *HeightMap) Coordinate(idx int) Point {
	return Point{X: idx % hm.cols, Y: idx / hm.cols}
}

// Neighbors returns the in-bounds 4-neighbors of p in N, E, S, W order.
func (hm *HeightMap) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(Offsets))
	for _, d := range Offsets {
		q := p.Add(d[0], d[1])
		if hm.InBounds(q.X, q.Y) {
			out = append(out, q)
		}
	}

	return out
}

// Values returns a deep copy of the grid as [y][x] rows.
func (hm *HeightMap) Values() [][]int {
	out := make([][]int, hm.rows)
	for y := range out {
		out[y] = make([]int, hm.cols)
		copy(out[y], hm.cells[y*hm.cols:(y+1)*hm.cols])
	}

	return out
}

// String renders the map in the text form accepted by Parse.
func (hm *HeightMap) String() string {
	var b strings.Builder
	b.Grow(hm.rows * (hm.cols + 1))
	for i, v := range hm.cells {
		if i > 0 && i%hm.cols == 0 {
			b.WriteByte('\n')
		}
		b.WriteByte(byte('0' + v))
	}

	return b.String()
}
