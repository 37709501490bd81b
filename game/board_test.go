package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, side0, side1 [3][]int) Board {
	t.Helper()
	b, err := NewBoardFrom(side0, side1)
	require.NoError(t, err)
	return b
}

func TestColumnScore(t *testing.T) {
	tests := []struct {
		name string
		dice []int
		want int
	}{
		{"empty column", nil, 0},
		{"single die", []int{4}, 4},
		{"pair and single", []int{6, 6, 2}, 26},
		{"triple", []int{5, 5, 5}, 45},
		{"all distinct", []int{1, 2, 3}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, [3][]int{tt.dice, nil, nil}, [3][]int{})
			require.Equal(t, tt.want, b.Column(0, 0).Score())
			require.Equal(t, tt.want, b.Score(0))
		})
	}
}

func TestBoardScore(t *testing.T) {
	b := mustBoard(t,
		[3][]int{{6, 6, 2}, {3}, {1, 1}},
		[3][]int{{4, 4, 4}, {}, {2, 5}},
	)

	require.Equal(t, 26+3+4, b.Score(0), "Should sum column scores")
	require.Equal(t, 36+7, b.Score(1), "Should sum column scores")
	require.Equal(t, [2][3]int{{26, 3, 4}, {36, 0, 7}}, b.ColumnScores())
}

func TestPlace(t *testing.T) {
	t.Run("appending to an open column", func(t *testing.T) {
		b := NewBoard()

		require.True(t, b.Place(0, 1, 3))
		require.True(t, b.Place(0, 1, 5))
		require.Equal(t, []int{3, 5}, b.Column(0, 1).Dice(), "Dice should keep play order")
	})

	t.Run("rejecting a full column", func(t *testing.T) {
		b := mustBoard(t, [3][]int{{1, 2, 3}, {}, {}}, [3][]int{{1}, {}, {}})
		before := b

		require.False(t, b.Place(0, 0, 1), "Full column should reject the die")
		require.Equal(t, before, b, "Board should not change")
		require.Equal(t, 3, b.Column(0, 0).Len())
	})

	t.Run("rejecting a ninth die on a full side", func(t *testing.T) {
		b := NewBoard()
		for c := 0; c < 3; c++ {
			for i := 0; i < 3; i++ {
				require.True(t, b.Place(0, c, c+1))
			}
		}
		before := b

		for c := 0; c < 3; c++ {
			require.False(t, b.Place(0, c, 6))
		}
		require.Equal(t, before, b, "Board should not change")
	})

	t.Run("eliminating every matching opponent die", func(t *testing.T) {
		b := mustBoard(t, [3][]int{}, [3][]int{{4, 4, 6}, {}, {}})

		require.True(t, b.Place(0, 0, 4))
		require.Equal(t, []int{6}, b.Column(1, 0).Dice(), "Both 4s should be removed")
		require.Equal(t, []int{4}, b.Column(0, 0).Dice())
	})

	t.Run("preserving the order of surviving dice", func(t *testing.T) {
		b := mustBoard(t, [3][]int{{2, 5, 3}, {}, {}}, [3][]int{})

		require.True(t, b.Place(1, 0, 5))
		require.Equal(t, []int{2, 3}, b.Column(0, 0).Dice())
	})

	t.Run("leaving other columns untouched", func(t *testing.T) {
		b := mustBoard(t, [3][]int{}, [3][]int{{4}, {4}, {4}})

		require.True(t, b.Place(0, 1, 4))
		require.Equal(t, []int{4}, b.Column(1, 0).Dice())
		require.Empty(t, b.Column(1, 1).Dice())
		require.Equal(t, []int{4}, b.Column(1, 2).Dice())
	})

	t.Run("rejecting an out of range column", func(t *testing.T) {
		b := NewBoard()

		require.False(t, b.Place(0, 3, 1))
		require.False(t, b.Place(0, -1, 1))
		require.Equal(t, NewBoard(), b)
	})
}

func TestTryPlace(t *testing.T) {
	t.Run("reporting eliminated dice", func(t *testing.T) {
		b := mustBoard(t, [3][]int{}, [3][]int{{}, {}, {2, 2}})

		p, err := b.TryPlace(0, 2, 2)

		require.NoError(t, err)
		require.Equal(t, Placement{Side: 0, Column: 2, Die: 2, Removed: 2}, p)
	})

	t.Run("reporting a full column", func(t *testing.T) {
		b := mustBoard(t, [3][]int{{1, 1, 1}, {}, {}}, [3][]int{})

		_, err := b.TryPlace(0, 0, 1)

		require.ErrorIs(t, err, ErrColumnFull)
	})

	t.Run("reporting invalid input", func(t *testing.T) {
		b := NewBoard()

		_, err := b.TryPlace(0, 5, 1)
		require.ErrorIs(t, err, ErrColumnOutOfRange)
		_, err = b.TryPlace(0, 0, 7)
		require.ErrorIs(t, err, ErrInvalidDie)
		_, err = b.TryPlace(2, 0, 1)
		require.ErrorIs(t, err, ErrInvalidSide)
	})
}

func TestIsTerminal(t *testing.T) {
	full := [3][]int{{1, 2, 3}, {4, 5, 6}, {1, 1, 1}}

	t.Run("empty board", func(t *testing.T) {
		require.False(t, NewBoard().IsTerminal())
	})

	t.Run("one side full and the other empty", func(t *testing.T) {
		require.True(t, mustBoard(t, full, [3][]int{}).IsTerminal())
		require.True(t, mustBoard(t, [3][]int{}, full).IsTerminal())
	})

	t.Run("eight dice on each side", func(t *testing.T) {
		partial := [3][]int{{1, 2, 3}, {4, 5, 6}, {1, 1}}
		require.False(t, mustBoard(t, partial, partial).IsTerminal())
	})

	t.Run("becoming terminal on the ninth die", func(t *testing.T) {
		b := mustBoard(t, [3][]int{{1, 2, 3}, {4, 5, 6}, {1, 1}}, [3][]int{})

		require.True(t, b.Place(0, 2, 1))
		require.True(t, b.IsTerminal())
	})
}

func TestCloneFromPerspective(t *testing.T) {
	b := mustBoard(t, [3][]int{{1}, {2}, {}}, [3][]int{{6, 6}, {}, {3}})

	t.Run("keeping orientation for side 0", func(t *testing.T) {
		clone := b.CloneFromPerspective(0)
		require.Equal(t, b, clone)
	})

	t.Run("swapping orientation for side 1", func(t *testing.T) {
		clone := b.CloneFromPerspective(1)
		require.Equal(t, b.Side(1), clone.Side(0))
		require.Equal(t, b.Side(0), clone.Side(1))
		require.Equal(t, b.Score(1), clone.Score(0))
	})

	t.Run("mutating the clone never affects the original", func(t *testing.T) {
		before := b
		for _, side := range []int{0, 1} {
			clone := b.CloneFromPerspective(side)
			require.True(t, clone.Place(0, 0, 6))
			require.True(t, clone.Place(1, 2, 1))
		}
		require.Equal(t, before, b)
		require.Equal(t, []int{6, 6}, b.Column(1, 0).Dice())
	})
}

func TestValidColumns(t *testing.T) {
	b := mustBoard(t, [3][]int{{1, 2, 3}, {}, {4, 4, 4}}, [3][]int{})

	require.Equal(t, []int{1}, b.ValidColumns(0))
	require.Equal(t, []int{0, 1, 2}, b.ValidColumns(1))
}

func TestNewBoardFrom(t *testing.T) {
	_, err := NewBoardFrom([3][]int{{1, 2, 3, 4}, {}, {}}, [3][]int{})
	require.ErrorIs(t, err, ErrColumnFull)

	_, err = NewBoardFrom([3][]int{}, [3][]int{{0}, {}, {}})
	require.ErrorIs(t, err, ErrInvalidDie)
}

func TestScenario(t *testing.T) {
	b := NewBoard()

	require.True(t, b.Place(0, 1, 3))
	require.Equal(t, []int{3}, b.Column(0, 1).Dice())

	require.True(t, b.Place(1, 2, 3))
	require.Equal(t, []int{3}, b.Column(1, 2).Dice())

	require.True(t, b.Place(0, 2, 6))
	require.Equal(t, []int{6}, b.Column(0, 2).Dice())
	require.Equal(t, []int{3}, b.Column(1, 2).Dice(), "Different values should not eliminate")

	require.True(t, b.Place(1, 2, 6))
	require.Equal(t, []int{3, 6}, b.Column(1, 2).Dice())
	require.Empty(t, b.Column(0, 2).Dice())
	require.Equal(t, 0, b.Column(0, 2).Score())
	require.Equal(t, 9, b.Column(1, 2).Score())
}
