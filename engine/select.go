package engine

// Choose toggles the selection of a dealt card and resolves the selection once
// it holds a full group. Choosing a further card while a resolved group is
// still flagged clears that group first: a matched group is discarded and
// replaced, a failed one is deselected. The new card then starts the next
// selection. Ids not on the board are ignored.
func (g *Game) Choose(id int) Change {
	ch := g.begin(ActionChoose)
	if g.deck.inPlay(id) {
		ch.Card = id
		g.choose(id, &ch)
	}
	return g.finish(ch)
}

func (g *Game) choose(id int, ch *Change) {
	m := g.space.GroupSize()
	c := g.deck.card(id)
	if len(g.selectedIDs()) < m {
		c.Selected = !c.Selected
	} else {
		c.Selected = true
	}

	g.matchSelected(ch)

	if len(g.selectedIDs()) > m {
		g.resolvePending(ch)
		// A matched group never contains id, so it is still on the board.
		g.deck.card(id).Selected = true
	}
}

// matchSelected evaluates a full selection that has not been resolved yet.
func (g *Game) matchSelected(ch *Change) {
	sel := g.selectedIDs()
	if len(sel) != g.space.GroupSize() || len(g.matchedIDs()) > 0 || len(g.failedIDs()) > 0 {
		return
	}
	group := make([]Vector, len(sel))
	for i, id := range sel {
		group[i] = g.deck.cards[id].Attrs
	}
	if g.space.IsMatch(group) {
		for _, id := range sel {
			g.deck.cards[id].Matched = true
		}
		g.rewardMatch()
		ch.Matched = sel
		ch.BonusReset = true
		return
	}
	for _, id := range sel {
		g.deck.cards[id].FailedMatch = true
	}
	g.penalizeMismatch()
	ch.Failed = sel
}

// resolvePending clears the current selection. If it holds a matched group the
// group is discarded and replaced from the undealt pool; reports whether that
// happened.
func (g *Game) resolvePending(ch *Change) bool {
	matched := g.matchedIDs()
	g.deselect(g.selectedIDs())
	if len(matched) != g.space.GroupSize() {
		return false
	}
	var discarded, dealt []int
	if g.Rules.ReplaceInPlace {
		discarded, dealt = g.deck.ReplaceMany(matched)
	} else {
		discarded = g.deck.DiscardMany(matched)
		dealt = g.deck.Deal(len(matched))
	}
	ch.Discarded = append(ch.Discarded, discarded...)
	ch.Dealt = append(ch.Dealt, dealt...)
	return true
}

func (g *Game) deselect(ids []int) {
	for _, id := range ids {
		g.deck.cards[id].clearFlags()
	}
}

// DealCards deals n more cards. Dealing while a set is visible and no match is
// pending costs DealPenalty plus the bonus. A pending matched group is
// replaced instead of drawing n cards; a pending failed group is deselected
// first. Nothing happens once the undealt pool is empty. isInitialDeal skips
// the penalty check.
func (g *Game) DealCards(n int, isInitialDeal bool) Change {
	ch := g.begin(ActionDeal)
	if g.deck.NoMoreCards() {
		return g.finish(ch)
	}

	if !isInitialDeal && len(g.matchedIDs()) == 0 && g.findSet() != nil {
		g.penalize(&ch, PenaltyMissedSet, g.Rules.DealPenalty)
	}

	if len(g.selectedIDs()) == g.space.GroupSize() && g.resolvePending(&ch) {
		return g.finish(ch)
	}

	ch.Dealt = append(ch.Dealt, g.deck.Deal(n)...)
	return g.finish(ch)
}

// Cheat reveals a set by choosing it, at a cost of CheatPenalty plus the bonus
// on top of the usual match reward. Any pending group is cleared first. While
// the board holds no set, DealCount cards are dealt and the search repeats;
// when the pool runs dry without a set, NoMoreCheats becomes true.
func (g *Game) Cheat() Change {
	ch := g.begin(ActionCheat)
	if len(g.selectedIDs()) == g.space.GroupSize() {
		g.resolvePending(&ch)
	}

	for {
		set := g.findSet()
		if set != nil {
			penalty := g.Rules.CheatPenalty + g.bonus
			g.deselect(g.selectedIDs())
			for _, id := range set {
				g.choose(id, &ch)
			}
			g.score -= penalty
			ch.Penalties = append(ch.Penalties, Penalty{Kind: PenaltyCheat, Points: penalty})
			ch.Hint = set
			break
		}
		if g.deck.NoMoreCards() {
			g.noMoreCheats = true
			break
		}
		ch.Dealt = append(ch.Dealt, g.deck.Deal(g.Rules.dealCount())...)
	}
	return g.finish(ch)
}

// Tick is the bonus clock. It decrements the bonus while fewer than a full
// group of cards is selected and may be called at any interval.
func (g *Game) Tick() Change {
	ch := g.begin(ActionTick)
	if len(g.selectedIDs()) < g.space.GroupSize() {
		g.DecBonus()
	}
	return g.finish(ch)
}
