package bot

import (
	"ctchen222/tictactoe-engine/internal/game"
	"math"
	"math/rand/v2"
)

const (
	winScore  = 10
	drawScore = 0
)

// RandomStrategy makes a completely random move.
type RandomStrategy struct{}

func (s *RandomStrategy) SelectMove(board game.Board, _ game.PlayerMark) (int, bool) {
	return randomMove(board)
}

// HeuristicStrategy will win if it can, block if it must, otherwise move randomly.
type HeuristicStrategy struct{}

func (s *HeuristicStrategy) SelectMove(board game.Board, botMark game.PlayerMark) (int, bool) {
	// 1. Win
	if index, found := findWinningMove(board, botMark); found {
		return index, true
	}

	// 2. Block
	if index, found := findWinningMove(board, botMark.Opponent()); found {
		return index, true
	}

	// 3. Random
	return randomMove(board)
}

// OptimalStrategy searches the whole game tree with minimax. Faster wins and
// slower losses score better; among equal scores the lowest index is kept.
type OptimalStrategy struct{}

func (s *OptimalStrategy) SelectMove(board game.Board, botMark game.PlayerMark) (int, bool) {
	bestScore := math.MinInt
	bestMove := -1

	for _, i := range game.EmptyCells(board) {
		board[i] = botMark
		score := minimax(&board, botMark, 0, false)
		board[i] = game.None

		if score > bestScore {
			bestScore = score
			bestMove = i
		}
	}
	return bestMove, bestMove != -1
}

// minimax scores board from botMark's point of view. depth counts the plies
// placed below the root move.
func minimax(board *game.Board, botMark game.PlayerMark, depth int, maximizing bool) int {
	opponentMark := botMark.Opponent()

	if game.HasWin(*board, botMark) {
		return winScore - depth
	}
	if game.HasWin(*board, opponentMark) {
		return depth - winScore
	}
	if game.IsFull(*board) {
		return drawScore
	}

	if maximizing {
		best := math.MinInt
		for i := range board {
			if board[i] != game.None {
				continue
			}
			board[i] = botMark
			best = max(best, minimax(board, botMark, depth+1, false))
			board[i] = game.None
		}
		return best
	}

	best := math.MaxInt
	for i := range board {
		if board[i] != game.None {
			continue
		}
		board[i] = opponentMark
		best = min(best, minimax(board, botMark, depth+1, true))
		board[i] = game.None
	}
	return best
}

func randomMove(board game.Board) (int, bool) {
	availableMoves := game.EmptyCells(board)
	if len(availableMoves) == 0 {
		return -1, false // No moves left
	}
	return availableMoves[rand.IntN(len(availableMoves))], true
}

// findWinningMove returns the first empty cell, ascending, where mark would
// complete a line. Each probe is undone before the next one.
func findWinningMove(board game.Board, mark game.PlayerMark) (int, bool) {
	for _, i := range game.EmptyCells(board) {
		board[i] = mark
		won := game.HasWin(board, mark)
		board[i] = game.None
		if won {
			return i, true
		}
	}
	return -1, false
}
