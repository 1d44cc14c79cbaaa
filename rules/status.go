package rules

// GameStatus is the lifecycle state of a game.
type GameStatus string

const (
	// GameStatusRunning represents a game that still accepts ticks
	GameStatusRunning GameStatus = "running"
	// GameStatusTerminated represents a game that ended by collision or quit
	GameStatusTerminated GameStatus = "terminated"
)
