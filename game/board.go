package game

import (
	"fmt"
	"strings"

	"knucklebones/meta"
	"knucklebones/utils"
)

// Column holds up to meta.CAPACITY dice in play order.
type Column struct {
	dice [meta.CAPACITY]int
	size int
}

// Side is one player's columns.
type Side [meta.COLUMNS]Column

// Board is stored as a value: copying a Board copies every column, so a copy
// never aliases the original.
type Board struct {
	sides [meta.SIDES]Side
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// NewBoardFrom builds a board from dice listed per column in play order.
func NewBoardFrom(side0, side1 [meta.COLUMNS][]int) (Board, error) {
	b := NewBoard()
	for side, columns := range [meta.SIDES][meta.COLUMNS][]int{side0, side1} {
		for c, dice := range columns {
			if len(dice) > meta.CAPACITY {
				return Board{}, fmt.Errorf("side %d column %d: %w", side, c, ErrColumnFull)
			}
			for _, die := range dice {
				if !validDie(die) {
					return Board{}, fmt.Errorf("side %d column %d: %w: %d", side, c, ErrInvalidDie, die)
				}
				b.sides[side][c].push(die)
			}
		}
	}
	return b, nil
}

func (c Column) Len() int {
	return c.size
}

func (c Column) Full() bool {
	return c.size >= meta.CAPACITY
}

// Dice returns a copy of the column's dice in play order.
func (c Column) Dice() []int {
	out := make([]int, c.size)
	copy(out, c.dice[:c.size])
	return out
}

func (c Column) Count(die int) int {
	return utils.Count(c.dice[:c.size], die)
}

func (c Column) Contains(die int) bool {
	return utils.FindIndex(c.dice[:c.size], die) >= 0
}

// Score sums value × count² over the distinct values in the column.
func (c Column) Score() int {
	var counts [meta.FACES + 1]int
	for _, d := range c.dice[:c.size] {
		counts[d]++
	}
	score := 0
	for value, n := range counts {
		score += value * n * n
	}
	return score
}

func (c *Column) push(die int) bool {
	if c.Full() {
		return false
	}
	c.dice[c.size] = die
	c.size++
	return true
}

// remove filters every occurrence of die out of the column, keeping the
// survivors in order, and returns how many were removed.
func (c *Column) remove(die int) int {
	kept := utils.Filter(c.dice[:c.size], func(d int) bool { return d != die })
	removed := c.size - len(kept)
	c.dice = [meta.CAPACITY]int{}
	c.size = copy(c.dice[:], kept)
	return removed
}

func (s Side) Len() int {
	n := 0
	for _, c := range s {
		n += c.Len()
	}
	return n
}

func (s Side) Full() bool {
	for _, c := range s {
		if !c.Full() {
			return false
		}
	}
	return true
}

func (s Side) Score() int {
	score := 0
	for _, c := range s {
		score += c.Score()
	}
	return score
}

// Side returns a copy of the given side's columns.
func (b Board) Side(side int) Side {
	return b.sides[side]
}

// Column returns a copy of a single column.
func (b Board) Column(side, column int) Column {
	return b.sides[side][column]
}

// Place appends die to the side's column and eliminates every matching die
// from the opposing column. It reports false without mutating the board when
// the placement is not possible.
func (b *Board) Place(side, column, die int) bool {
	_, err := b.TryPlace(side, column, die)
	return err == nil
}

// TryPlace is Place with the reason for a rejected placement and a record of
// the applied one.
func (b *Board) TryPlace(side, column, die int) (Placement, error) {
	if err := checkPlacement(side, column, die); err != nil {
		return Placement{}, err
	}
	if !b.sides[side][column].push(die) {
		return Placement{}, fmt.Errorf("side %d column %d: %w", side, column, ErrColumnFull)
	}
	removed := b.sides[Other(side)][column].remove(die)
	return Placement{Side: side, Column: column, Die: die, Removed: removed}, nil
}

// Score is recomputed on every call.
func (b Board) Score(side int) int {
	return b.sides[side].Score()
}

// ColumnScores returns the score of every column, indexed by side then column.
func (b Board) ColumnScores() [meta.SIDES][meta.COLUMNS]int {
	var scores [meta.SIDES][meta.COLUMNS]int
	for s, side := range b.sides {
		for c, column := range side {
			scores[s][c] = column.Score()
		}
	}
	return scores
}

// IsTerminal reports whether either side is full.
func (b Board) IsTerminal() bool {
	return b.sides[0].Full() || b.sides[1].Full()
}

// ValidColumns returns the indexes of the side's columns that can take a die.
func (b Board) ValidColumns(side int) []int {
	var columns []int
	for c, column := range b.sides[side] {
		if !column.Full() {
			columns = append(columns, c)
		}
	}
	return columns
}

// CloneFromPerspective copies the board so that side becomes side 0.
func (b Board) CloneFromPerspective(side int) Board {
	clone := b
	if side == 1 {
		clone.sides[0], clone.sides[1] = b.sides[1], b.sides[0]
	}
	return clone
}

func (b Board) String() string {
	var sb strings.Builder
	for s := range b.sides {
		fmt.Fprintf(&sb, "side %d (%d):", s, b.Score(s))
		for _, column := range b.sides[s] {
			fmt.Fprintf(&sb, " %v", column.Dice())
		}
		if s == 0 {
			sb.WriteString(" | ")
		}
	}
	return sb.String()
}
