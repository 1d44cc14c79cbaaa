package rules

const (
	// DeathCauseWallCollision is when any part of the snake touches the wall
	DeathCauseWallCollision = "wall-collision"
	// DeathCauseQuit is when the player ends the session
	DeathCauseQuit = "quit"
)

// DeathCauseInterrupted is when the host stops the session, e.g. on SIGINT
const DeathCauseInterrupted = "interrupted"
