package engine

// ResetBonus sets the bonus back to its ceiling.
func (g *Game) ResetBonus() { g.bonus = g.Rules.TimeToMatch }

// DecBonus lowers the bonus by one, never below zero.
func (g *Game) DecBonus() {
	if g.bonus > 0 {
		g.bonus--
	}
}

// rewardMatch scores a found set and restarts the bonus clock.
func (g *Game) rewardMatch() {
	g.score += g.Rules.MatchReward + g.bonus
	g.ResetBonus()
}

// penalizeMismatch scores a failed match.
func (g *Game) penalizeMismatch() {
	g.score -= g.Rules.MismatchPenalty + g.bonus
}

// penalize deducts base plus the current bonus and records it on ch.
func (g *Game) penalize(ch *Change, kind PenaltyKind, base int) {
	points := base + g.bonus
	g.score -= points
	ch.Penalties = append(ch.Penalties, Penalty{Kind: kind, Points: points})
}
