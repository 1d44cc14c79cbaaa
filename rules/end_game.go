package rules

// CheckForGameOver checks if the game has ended.
func CheckForGameOver(g *Game) bool {
	return g.Status == GameStatusTerminated
}

// EndGame terminates the game. The first cause recorded is kept.
func EndGame(g *Game, cause string) {
	if g.Status == GameStatusTerminated {
		return
	}
	g.Status = GameStatusTerminated
	g.Cause = cause
}
