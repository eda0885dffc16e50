package game

// Board is the 3x3 grid stored row-major:
//
//	0 1 2
//	3 4 5
//	6 7 8
type Board [9]PlayerMark

// WinningLines lists the 3 rows, 3 columns and 2 diagonals.
var WinningLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// HasWin reports whether mark occupies all three cells of any winning line.
// mark must not be None.
func HasWin(board Board, mark PlayerMark) bool {
	for _, line := range WinningLines {
		if board[line[0]] == mark && board[line[1]] == mark && board[line[2]] == mark {
			return true
		}
	}
	return false
}

// IsFull reports whether no empty cell is left.
func IsFull(board Board) bool {
	for _, cell := range board {
		if cell == None {
			return false
		}
	}
	return true
}

// EmptyCells returns the indices of empty cells in ascending order.
func EmptyCells(board Board) []int {
	cells := make([]int, 0, len(board))
	for i, cell := range board {
		if cell == None {
			cells = append(cells, i)
		}
	}
	return cells
}
