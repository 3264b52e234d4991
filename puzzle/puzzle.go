package puzzle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/flowpath/solver/board"
	"github.com/flowpath/solver/packed"
)

// Sentinel errors for the text puzzle format.
var (
	ErrEmptyInput       = errors.New("puzzle: empty input")
	ErrRowLength        = errors.New("puzzle: row length does not match board size")
	ErrRowCount         = errors.New("puzzle: row count does not match board size")
	ErrTooManyColors    = errors.New("puzzle: too many occurrences of a color letter")
	ErrUnpairedEndpoint = errors.New("puzzle: color has a start but no end")
	ErrUnknownChar      = errors.New("puzzle: unrecognized letter")
)

// colorDict is the curated input-letter table, in palette-index order:
// red, blue, yellow, green, orange, cyan, magenta, maroon, purple, gray,
// white, bright green, tan, dark blue, dark cyan, pink.
var colorDict = [packed.MaxColors]byte{
	'R', 'B', 'Y', 'G', 'O', 'C', 'M', 'm',
	'P', 'A', 'W', 'g', 'T', 'b', 'c', 'p',
}

func curatedColorID(c byte) int {
	for i, d := range colorDict {
		if d == c {
			return i
		}
	}
	return -1
}

// reader carries parse state across the staged helpers below: a small
// struct threaded through named steps instead of one monolithic function.
type reader struct {
	size      int
	alternate bool
	tbl       map[byte]int
	ids       []int
	initPos   []packed.Pos
	goalPos   []packed.Pos
	numColors int
}

// Read parses a puzzle from its text form: the first line's length fixes
// the board size, every subsequent line must match it, and each letter is
// either a color's first occurrence (tentative init) or its second
// (goal). Two letter dialects are auto-detected: when every letter in the
// file is an uppercase A..P, letters map directly to palette indices
// (id = c - 'A'); otherwise each letter is looked up in the curated
// colorDict table.
func Read(r io.Reader) (*board.PuzzleInfo, board.GameState, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, board.GameState{}, err
	}
	if len(lines) == 0 {
		return nil, board.GameState{}, ErrEmptyInput
	}

	rd := &reader{
		size:      len(lines[0]),
		alternate: detectAlternate(lines),
		tbl:       make(map[byte]int, packed.MaxColors),
	}

	// The board is square: the first line fixes the size, and the file
	// must carry exactly that many rows.
	if len(lines) != rd.size {
		return nil, board.GameState{}, fmt.Errorf("%w: got %d rows, want %d", ErrRowCount, len(lines), rd.size)
	}

	info := &board.PuzzleInfo{Size: rd.size, ColorTbl: rd.tbl}
	st := board.GameState{LastColor: board.NoColor}

	for y, line := range lines {
		if len(line) != rd.size {
			return nil, board.GameState{}, fmt.Errorf("%w: row %d has length %d, want %d", ErrRowLength, y, len(line), rd.size)
		}
		for x := 0; x < rd.size; x++ {
			c := line[x]
			if !isAlpha(c) {
				st.NumFree++
				continue
			}
			if err := rd.placeLetter(&st, c, x, y); err != nil {
				return nil, board.GameState{}, err
			}
		}
	}

	if rd.numColors == 0 {
		return nil, board.GameState{}, ErrEmptyInput
	}

	info.NumColors = rd.numColors
	info.ColorIDs = rd.ids
	info.InitPos = rd.initPos
	info.GoalPos = rd.goalPos
	info.ColorOrder = make([]int, info.NumColors)
	for i := range info.ColorOrder {
		info.ColorOrder[i] = i
	}

	for c := 0; c < info.NumColors; c++ {
		if info.GoalPos[c] == packed.Invalid {
			return nil, board.GameState{}, fmt.Errorf("%w: color %d", ErrUnpairedEndpoint, c)
		}
	}

	rd.normalizeWallDistance(info, &st)

	return info, st, nil
}

// placeLetter records c's first or second occurrence at (x, y). A third
// occurrence of the same letter is rejected.
func (rd *reader) placeLetter(st *board.GameState, c byte, x, y int) error {
	pos := packed.PackPos(x, y)
	color, seen := rd.tbl[c]
	if !seen {
		id := curatedColorID(c)
		if rd.alternate {
			id = int(c - 'A')
		}
		if id < 0 || id >= packed.MaxColors {
			return fmt.Errorf("%w: %q", ErrUnknownChar, c)
		}
		if rd.numColors >= packed.MaxColors {
			return ErrTooManyColors
		}

		color = rd.numColors
		rd.numColors++
		rd.tbl[c] = color
		rd.ids = append(rd.ids, id)
		rd.initPos = append(rd.initPos, pos)
		rd.goalPos = append(rd.goalPos, packed.Invalid)

		st.Cells[pos] = packed.PackCell(packed.Init, color, packed.DirLeft)
		st.HeadPos[color] = pos

		return nil
	}

	if rd.goalPos[color] != packed.Invalid {
		return fmt.Errorf("%w: %q", ErrTooManyColors, c)
	}
	rd.goalPos[color] = pos
	st.Cells[pos] = packed.PackCell(packed.Goal, color, packed.DirLeft)

	return nil
}

// normalizeWallDistance makes InitPos the endpoint nearer a wall and
// GoalPos the farther one, ties broken by keeping the position already
// assigned as init. Two reads of the same board then always produce the
// same search tree, regardless of which endpoint the file lists first.
func (rd *reader) normalizeWallDistance(info *board.PuzzleInfo, st *board.GameState) {
	for c := 0; c < info.NumColors; c++ {
		initDist := wallDist(info, info.InitPos[c])
		goalDist := wallDist(info, info.GoalPos[c])
		if goalDist < initDist {
			info.InitPos[c], info.GoalPos[c] = info.GoalPos[c], info.InitPos[c]
			st.Cells[info.InitPos[c]] = packed.PackCell(packed.Init, c, packed.DirLeft)
			st.Cells[info.GoalPos[c]] = packed.PackCell(packed.Goal, c, packed.DirLeft)
			st.HeadPos[c] = info.InitPos[c]
		}
	}
}

func wallDist(info *board.PuzzleInfo, p packed.Pos) int {
	x, y := p.Coords()
	return info.WallDistance(x, y)
}

// readLines splits r into lines, stripping a trailing \r before any
// length or content checks so CRLF input parses the same as LF.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("puzzle: reading input: %w", err)
	}
	return lines, nil
}

// detectAlternate reports whether every letter across lines is an
// uppercase A..P, in which case the direct dialect (id = c - 'A') applies
// instead of the curated colorDict table.
func detectAlternate(lines []string) bool {
	maxLetter := byte('A')
	for _, line := range lines {
		for i := 0; i < len(line); i++ {
			c := line[i]
			if isAlpha(c) && c > maxLetter {
				maxLetter = c
			}
		}
	}
	return int(maxLetter-'A') < packed.MaxColors
}

func isAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// Render renders st as a plain grid dump: a "#" border, the puzzle's
// original letter for INIT/GOAL/PATH cells, and "." for FREE cells. It is
// the debugging and test counterpart of Read; colorized or SVG output is
// a caller's concern.
func Render(info *board.PuzzleInfo, st *board.GameState) string {
	letters := make(map[int]byte, info.NumColors)
	for ch, color := range info.ColorTbl {
		letters[color] = ch
	}

	var b strings.Builder
	border := strings.Repeat("#", info.Size+2)

	b.WriteString(border)
	b.WriteByte('\n')
	for y := 0; y < info.Size; y++ {
		b.WriteByte('#')
		for x := 0; x < info.Size; x++ {
			cell := st.Cells[packed.PackPos(x, y)]
			if cell.Type() == packed.Free {
				b.WriteByte('.')
				continue
			}
			b.WriteByte(letters[cell.Color()])
		}
		b.WriteByte('#')
		b.WriteByte('\n')
	}
	b.WriteString(border)
	b.WriteByte('\n')

	return b.String()
}
