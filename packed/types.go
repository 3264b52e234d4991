package packed

// Pos is a packed grid position: the low nibble holds x, the high nibble
// holds y. Invalid marks "no such position".
type Pos uint8

// Invalid is the sentinel packed position: no valid (x, y) packs to it,
// since the grid is capped at 15x15 and every real coordinate fits in a
// nibble.
const Invalid Pos = 0xFF

// Dir is a move direction, stable-numbered so it can live in a packed Cell
// and so that reversing a direction is the single-bit flip Opposite
// implements.
type Dir int

// The four directions, numbered so opposing pairs differ only in the low
// bit — the (d, d^1) parity relation Opposite relies on.
const (
	DirLeft Dir = iota
	DirRight
	DirUp
	DirDown
)

var dirDelta = [4][2]int{
	DirLeft:  {-1, 0},
	DirRight: {1, 0},
	DirUp:    {0, -1},
	DirDown:  {0, 1},
}

// Opposite returns the reversing direction: (d, d^1) is always a pair.
func (d Dir) Opposite() Dir {
	return d ^ 1
}

// MaxSize is the largest supported board edge length.
const MaxSize = 15

// MaxColors is the largest number of distinct colors a puzzle may have.
const MaxColors = 16

// MaxCells bounds the packed cell array, which is indexed by raw Pos: rows
// are 16 positions apart in the packed layout, so MaxSize rows take
// (MaxSize+1)*MaxSize slots, less the one unused slot after the last valid
// position (14,14). Invalid (0xFF) lies past the end of the array.
const MaxCells = (MaxSize+1)*MaxSize - 1

// PackPos packs (x, y) into a single byte: low nibble x, high nibble y.
// Both x and y must be in [0, 15]; behavior for out-of-range inputs is
// undefined (callers are expected to have validated against a board size
// first, via CoordsValid).
func PackPos(x, y int) Pos {
	return Pos((y&0xF)<<4 | (x & 0xF))
}

// Coords unpacks p back into (x, y).
func (p Pos) Coords() (x, y int) {
	return int(p & 0xF), int(p>>4) & 0xF
}

// CoordsValid reports whether (x, y) lies within a size x size grid.
func CoordsValid(size, x, y int) bool {
	return x >= 0 && x < size && y >= 0 && y < size
}

// Offset returns the position one step from p in direction d, or Invalid
// if that step leaves the size x size grid. It never panics and never
// aliases a valid position for an out-of-range step.
func Offset(size int, p Pos, d Dir) Pos {
	x, y := p.Coords()
	delta := dirDelta[d]
	nx, ny := x+delta[0], y+delta[1]
	if !CoordsValid(size, nx, ny) {
		return Invalid
	}
	return PackPos(nx, ny)
}

// WallDistance is the Chebyshev-style distance from (x, y) to the nearest
// edge of a size x size grid: min(x, size-1-x, y, size-1-y).
func WallDistance(size, x, y int) int {
	d := x
	if v := size - 1 - x; v < d {
		d = v
	}
	if v := y; v < d {
		d = v
	}
	if v := size - 1 - y; v < d {
		d = v
	}
	return d
}

// CellType classifies what a Cell holds.
type CellType int

// The four cell types; a FREE cell is always the all-zero byte.
const (
	Free CellType = iota
	Path
	Init
	Goal
)

// Cell is a packed byte: CCCC DD TT (color, entry direction, type).
type Cell uint8

// PackCell packs a (type, color, direction) triple into a Cell. color
// must be in [0, 15]; dir is only meaningful for Path/Goal cells but is
// still packed for Init (it is simply ignored by readers of an Init cell).
func PackCell(t CellType, color int, d Dir) Cell {
	return Cell((color&0xF)<<4 | (int(d)&0x3)<<2 | (int(t) & 0x3))
}

// Type returns the cell's type.
func (c Cell) Type() CellType {
	return CellType(c & 0x3)
}

// Dir returns the cell's entry direction.
func (c Cell) Dir() Dir {
	return Dir((c >> 2) & 0x3)
}

// Color returns the cell's color index.
func (c Cell) Color() int {
	return int(c>>4) & 0xF
}
