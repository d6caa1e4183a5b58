// Package engine implements the rules of the Set card-matching game.
//
// A Game owns a deck of cards carrying independent attributes, tracks which
// cards are selected, resolves selections of a full group into matches or
// failed matches, and keeps score with a time-decaying bonus. The engine has
// no I/O and no internal concurrency; every command runs to completion and
// returns a Change describing its effect.
package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidOrder is returned when an explicit deck order is not a
// permutation of the card ids.
var ErrInvalidOrder = errors.New("invalid deck order")

// Game holds the complete state of one Set game. It is not safe for
// concurrent use; callers serialise access.
type Game struct {
	Rules HouseRules

	space        Space
	deck         *Deck
	rng          uint64
	score        int
	bonus        int
	noMoreCheats bool
	content      ContentFunc
}

// ---------------------------------------------------------------------------
// xorshift64 RNG
// ---------------------------------------------------------------------------

func (g *Game) seed(seed uint64) {
	g.rng = seed
	if g.rng == 0 {
		g.rng = 1 // xorshift can't start at 0
	}
}

func (g *Game) nextRand() uint64 {
	x := g.rng
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	g.rng = x
	return x
}

// shuffledOrder returns a uniformly shuffled permutation of the card ids.
func (g *Game) shuffledOrder() []int {
	order := make([]int, g.space.TotalCards())
	for i := range order {
		order[i] = i
	}
	// Fisher-Yates shuffle.
	for i := len(order) - 1; i > 0; i-- {
		j := int(g.nextRand() % uint64(i+1))
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// ---------------------------------------------------------------------------
// Construction
// ---------------------------------------------------------------------------

// NewGame generates and shuffles a deck for the given rules. No cards are
// dealt until Start is called.
func NewGame(seed uint64, rules HouseRules) *Game {
	g := &Game{Rules: rules, space: rules.space()}
	g.seed(seed)
	g.deck = newDeck(g.space, g.shuffledOrder())
	g.bonus = rules.TimeToMatch
	return g
}

// NewGameWithOrder builds a game whose undealt pool is exactly order, front
// first. order must contain every card id once.
func NewGameWithOrder(order []int, rules HouseRules) (*Game, error) {
	space := rules.space()
	if err := validateOrder(order, space.TotalCards()); err != nil {
		return nil, err
	}
	g := &Game{Rules: rules, space: space}
	g.seed(1)
	g.deck = newDeck(space, append([]int(nil), order...))
	g.bonus = rules.TimeToMatch
	return g, nil
}

func validateOrder(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("%w: got %d cards, want %d", ErrInvalidOrder, len(order), n)
	}
	seen := make([]bool, n)
	for pos, id := range order {
		if id < 0 || id >= n {
			return fmt.Errorf("%w: card %d at position %d out of range", ErrInvalidOrder, id, pos)
		}
		if seen[id] {
			return fmt.Errorf("%w: card %d appears twice", ErrInvalidOrder, id)
		}
		seen[id] = true
	}
	return nil
}

// Start performs the initial deal.
func (g *Game) Start() Change {
	return g.DealCards(g.Rules.initialDeal(), true)
}

// Reset starts a new game in place: a freshly shuffled deck, zero score, a
// full bonus and the initial deal. A zero seed continues the current random
// sequence. The active ContentFunc is kept.
func (g *Game) Reset(seed uint64) Change {
	if seed != 0 {
		g.seed(seed)
	}
	g.deck = newDeck(g.space, g.shuffledOrder())
	g.score = 0
	g.bonus = g.Rules.TimeToMatch
	g.noMoreCheats = false
	g.applyContent()

	ch := g.Start()
	ch.Action = ActionNewGame
	ch.ScoreDelta = 0
	return ch
}

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// Space returns the attribute space of the game.
func (g *Game) Space() Space { return g.space }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Bonus returns the current time bonus.
func (g *Game) Bonus() int { return g.bonus }

// NoMoreCards reports whether the undealt pool is exhausted.
func (g *Game) NoMoreCards() bool { return g.deck.NoMoreCards() }

// NoMoreCheats reports whether cheat has run out of cards and sets.
func (g *Game) NoMoreCheats() bool { return g.noMoreCheats }

// DealtCards returns the board in play order.
func (g *Game) DealtCards() []Card { return g.deck.snapshot(g.deck.dealt) }

// UndealtCards returns the undealt pool, next card first.
func (g *Game) UndealtCards() []Card { return g.deck.snapshot(g.deck.undealt) }

// DiscardedCards returns the discard pile, most recent first.
func (g *Game) DiscardedCards() []Card { return g.deck.snapshot(g.deck.discard) }

// SelectedCards returns the selected cards in board order.
func (g *Game) SelectedCards() []Card { return g.deck.snapshot(g.selectedIDs()) }

// Counts returns the size of the undealt, dealt and discard partitions.
func (g *Game) Counts() (undealt, dealt, discard int) { return g.deck.Counts() }

// Card returns the card with the given id and where it is.
func (g *Game) Card(id int) (Card, Location, bool) {
	if !g.deck.valid(id) {
		return Card{}, 0, false
	}
	return g.deck.cards[id].clone(), g.deck.loc[id], true
}

// SetsOnBoard returns the number of sets among the dealt cards.
func (g *Game) SetsOnBoard() int { return g.space.CountSets(g.deck.dealtCards()) }

// CheckInvariants verifies the deck partitions.
func (g *Game) CheckInvariants() error { return g.deck.CheckInvariants() }

// ---------------------------------------------------------------------------
// Theme
// ---------------------------------------------------------------------------

// UpdateTheme re-derives the content of every card, in every partition, from
// its attributes. The function is kept and applied again on Reset.
func (g *Game) UpdateTheme(fn ContentFunc) {
	g.content = fn
	g.applyContent()
}

func (g *Game) applyContent() {
	if g.content == nil {
		return
	}
	for i := range g.deck.cards {
		c := &g.deck.cards[i]
		c.Content = g.content(c.Attrs.Clone())
	}
}

// ---------------------------------------------------------------------------
// Internal helpers
// ---------------------------------------------------------------------------

// idsWhere returns the dealt ids whose card satisfies pred, in board order.
func (g *Game) idsWhere(pred func(*Card) bool) []int {
	var ids []int
	for _, id := range g.deck.dealt {
		if pred(&g.deck.cards[id]) {
			ids = append(ids, id)
		}
	}
	return ids
}

func (g *Game) selectedIDs() []int {
	return g.idsWhere(func(c *Card) bool { return c.Selected })
}

func (g *Game) matchedIDs() []int {
	return g.idsWhere(func(c *Card) bool { return c.Matched })
}

func (g *Game) failedIDs() []int {
	return g.idsWhere(func(c *Card) bool { return c.FailedMatch })
}

// findSet searches the board for a set.
func (g *Game) findSet() []int { return g.space.FindSet(g.deck.dealtCards()) }

func (g *Game) begin(a Action) Change {
	return Change{Action: a, Card: -1, startScore: g.score}
}

// finish fills the observable fields of ch from the current state.
func (g *Game) finish(ch Change) Change {
	ch.Selected = g.selectedIDs()
	ch.ScoreDelta = g.score - ch.startScore
	ch.Score = g.score
	ch.Bonus = g.bonus
	ch.NoMoreCards = g.deck.NoMoreCards()
	ch.NoMoreCheats = g.noMoreCheats
	return ch
}
