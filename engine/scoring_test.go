package engine

import "testing"

func TestDecBonusSaturates(t *testing.T) {
	g := NewGame(1, DefaultHouseRules())
	for i := 0; i < 15; i++ {
		g.DecBonus()
	}
	if g.Bonus() != 0 {
		t.Errorf("Bonus() = %d, want 0", g.Bonus())
	}
	g.ResetBonus()
	if g.Bonus() != 10 {
		t.Errorf("Bonus() after reset = %d, want 10", g.Bonus())
	}
}

// TestScoringTable checks each scoring path against the default rules at a
// given bonus.
func TestScoringTable(t *testing.T) {
	cases := []struct {
		name  string
		ticks int
		play  func(g *Game)
		want  int
	}{
		{"match at full bonus", 0, func(g *Game) { g.Choose(0); g.Choose(1); g.Choose(2) }, 13},
		{"match at zero bonus", 12, func(g *Game) { g.Choose(0); g.Choose(1); g.Choose(2) }, 3},
		{"mismatch at full bonus", 0, func(g *Game) { g.Choose(0); g.Choose(1); g.Choose(3) }, -11},
		{"mismatch after ticks", 4, func(g *Game) { g.Choose(0); g.Choose(1); g.Choose(3) }, -7},
		{"deal with set visible", 0, func(g *Game) { g.DealCards(3, false) }, -11},
		{"deal after ticks", 9, func(g *Game) { g.DealCards(3, false) }, -2},
		// Reward uses the bonus before the match, penalty too.
		{"cheat nets minus one", 5, func(g *Game) { g.Cheat() }, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newOrderedGame(t, DefaultHouseRules())
			for i := 0; i < tc.ticks; i++ {
				g.Tick()
			}
			tc.play(g)
			if g.Score() != tc.want {
				t.Errorf("Score() = %d, want %d", g.Score(), tc.want)
			}
		})
	}
}

func TestMatchResetsBonus(t *testing.T) {
	g := newOrderedGame(t, DefaultHouseRules())
	g.Tick()
	g.Tick()
	g.Choose(0)
	g.Choose(1)
	ch := g.Choose(3)
	if ch.BonusReset || g.Bonus() != 8 {
		t.Errorf("mismatch touched the bonus: %d reset=%v", g.Bonus(), ch.BonusReset)
	}
	g.Choose(2) // clears the failed group
	g.Choose(0)
	ch = g.Choose(1)
	if !ch.BonusReset || g.Bonus() != 10 {
		t.Errorf("match did not reset the bonus: %d reset=%v", g.Bonus(), ch.BonusReset)
	}
}

func TestCustomRuleWeights(t *testing.T) {
	hr := DefaultHouseRules()
	hr.MatchReward = 5
	hr.TimeToMatch = 0
	g := newOrderedGame(t, hr)
	g.Choose(0)
	g.Choose(1)
	g.Choose(2)
	if g.Score() != 5 {
		t.Errorf("Score() = %d, want 5", g.Score())
	}
}
