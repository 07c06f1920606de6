package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	EmptyMarker = ""

	BoardSize    = 9
	CenterSquare = 5
)

// Line - three square indices that win the round when they carry one marker.
type Line [3]int

// WinningLines - rows, columns, diagonals. Scan order decides which line wins a tie-break.
var WinningLines = [8]Line{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
	{1, 4, 7},
	{2, 5, 8},
	{3, 6, 9},
	{1, 5, 9},
	{3, 5, 7},
}

// Cell - a single square of the board.
type Cell struct {
	Marker string
}

func (that Cell) IsMarked() bool {
	return that.Marker != EmptyMarker
}

// Board - 3x3 grid with squares numbered 1..9, left to right, top to bottom.
type Board struct {
	cells [BoardSize]Cell
}

func NewBoard() *Board {
	return &Board{}
}

// Set - marks a square. The index must be in range and unmarked, use Mark when that is not guaranteed.
func (that *Board) Set(index int, marker string) {
	that.cells[index-1].Marker = marker
}

// Mark - marks a square after checking the index and the marker.
func (that *Board) Mark(index int, marker string) error {
	if index < 1 || index > BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	if marker == EmptyMarker {
		return apperror.ErrInvalidMarker
	}

	if that.cells[index-1].IsMarked() {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
	}

	that.Set(index, marker)

	return nil
}

func (that *Board) Get(index int) string {
	if index < 1 || index > BoardSize {
		return EmptyMarker
	}

	return that.cells[index-1].Marker
}

func (that *Board) IsUnmarked(index int) bool {
	if index < 1 || index > BoardSize {
		return false
	}

	return !that.cells[index-1].IsMarked()
}

func (that *Board) UnmarkedIndices() []int {
	indices := make([]int, 0, BoardSize)
	for i, cell := range that.cells {
		if !cell.IsMarked() {
			indices = append(indices, i+1)
		}
	}

	return indices
}

func (that *Board) IsFull() bool {
	return len(that.UnmarkedIndices()) == 0
}

func (that *Board) IsEmpty() bool {
	return len(that.UnmarkedIndices()) == BoardSize
}

// WinningMarker - returns the marker of the first completed line or EmptyMarker.
func (that *Board) WinningMarker() string {
	for _, line := range WinningLines {
		a, b, c := that.Get(line[0]), that.Get(line[1]), that.Get(line[2])
		if a != EmptyMarker && a == b && b == c {
			return a
		}
	}

	return EmptyMarker
}

func (that *Board) SomeoneWon() bool {
	return that.WinningMarker() != EmptyMarker
}

// LinesWithTwoAndEmpty - lines holding two cells with the same marker and one empty cell, nil if none.
func (that *Board) LinesWithTwoAndEmpty() []Line {
	var lines []Line

	for _, line := range WinningLines {
		if that.isTwinMarkedWithEmpty(line) {
			lines = append(lines, line)
		}
	}

	return lines
}

// EmptyCellOf - the first unmarked index of the line, 0 when all three are marked.
func (that *Board) EmptyCellOf(line Line) int {
	for _, index := range line {
		if that.IsUnmarked(index) {
			return index
		}
	}

	return 0
}

func (that *Board) Cells() [BoardSize]string {
	var markers [BoardSize]string
	for i, cell := range that.cells {
		markers[i] = cell.Marker
	}

	return markers
}

func (that *Board) Reset() {
	that.cells = [BoardSize]Cell{}
}

func (that *Board) isTwinMarkedWithEmpty(line Line) bool {
	distinct := make(map[string]struct{}, len(line))
	unmarked := 0

	for _, index := range line {
		marker := that.Get(index)
		distinct[marker] = struct{}{}

		if marker == EmptyMarker {
			unmarked++
		}
	}

	return len(distinct) == 2 && unmarked == 1
}
