package game

// Placement records an applied move.
type Placement struct {
	Side    int
	Column  int
	Die     int
	Removed int // Opponent dice eliminated by the placement
}
