package agent

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"knucklebones/game"
	"knucklebones/meta"
)

var ErrNoInput = errors.New("no more input")

// Human reads column choices from a text stream, re-prompting until the
// choice is a legal column.
type Human struct {
	Name    string
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHuman(name string, in io.Reader, out io.Writer) *Human {
	return &Human{
		Name:    name,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (h *Human) Decide(die int, view game.Board, turn int) (int, error) {
	fmt.Fprintf(h.out, "%s, it's your turn! You rolled a %d.\n", h.Name, die)
	fmt.Fprintln(h.out, view)
	for {
		fmt.Fprintf(h.out, "Select a column to place your die (1-%d): ", meta.COLUMNS)
		if !h.scanner.Scan() {
			if err := h.scanner.Err(); err != nil {
				return 0, fmt.Errorf("failed to read column: %w", err)
			}
			return 0, ErrNoInput
		}

		choice, err := strconv.Atoi(strings.TrimSpace(h.scanner.Text()))
		if err != nil {
			fmt.Fprintln(h.out, "Invalid input. Please enter a number.")
			continue
		}
		column := choice - 1
		if column < 0 || column >= meta.COLUMNS {
			fmt.Fprintf(h.out, "Invalid column. Please select 1 to %d.\n", meta.COLUMNS)
			continue
		}
		if view.Column(0, column).Full() {
			fmt.Fprintln(h.out, "That column is full. Please select a different column.")
			continue
		}
		return column, nil
	}
}
