// meta/meta.go
package meta

// FACES defines the number of faces on a die.
const FACES = 6

// COLUMNS defines the number of columns on each side of the board.
const COLUMNS = 3

// CAPACITY defines the number of dice a column holds.
const CAPACITY = 3

// SIDES defines the number of players.
const SIDES = 2

// SLOTS defines the number of dice that fill one side.
const SLOTS = COLUMNS * CAPACITY

// GAMES defines the default number of games per matchup.
const GAMES = 1000

// WORKERS defines the default number of goroutines playing matchup games.
const WORKERS = 8
