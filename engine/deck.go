package engine

import "fmt"

// Deck owns every card of a game and partitions them into the undealt pool,
// the dealt board and the discard pile. Cards are stored once, indexed by id;
// the partitions are ordered id lists.
type Deck struct {
	space Space
	cards []Card     // indexed by card id
	loc   []Location // indexed by card id

	undealt []int
	dealt   []int
	discard []int // most recently discarded first
}

// newDeck builds all cards of the space and places them in the undealt pool
// in the given order, which must be a permutation of the card ids.
func newDeck(space Space, order []int) *Deck {
	n := space.TotalCards()
	d := &Deck{
		space:   space,
		cards:   make([]Card, n),
		loc:     make([]Location, n),
		undealt: order,
		dealt:   make([]int, 0, n),
		discard: make([]int, 0, n),
	}
	for id := range d.cards {
		d.cards[id] = Card{ID: id, Attrs: space.Encode(id)}
	}
	return d
}

// NoMoreCards reports whether the undealt pool is empty.
func (d *Deck) NoMoreCards() bool { return len(d.undealt) == 0 }

// Counts returns the size of each partition.
func (d *Deck) Counts() (undealt, dealt, discard int) {
	return len(d.undealt), len(d.dealt), len(d.discard)
}

// Deal moves up to n cards from the front of the undealt pool to the end of
// the board, face up. Returns the ids actually dealt.
func (d *Deck) Deal(n int) []int {
	if n > len(d.undealt) {
		n = len(d.undealt)
	}
	if n <= 0 {
		return nil
	}
	ids := make([]int, n)
	copy(ids, d.undealt[:n])
	d.undealt = d.undealt[n:]
	for _, id := range ids {
		d.loc[id] = LocDealt
		d.cards[id].FaceUp = true
	}
	d.dealt = append(d.dealt, ids...)
	return ids
}

// DiscardMany moves the given dealt cards to the front of the discard pile and
// clears their selection flags. Ids not on the board are ignored. Returns the
// ids actually discarded.
func (d *Deck) DiscardMany(ids []int) []int {
	moved := make([]int, 0, len(ids))
	for _, id := range ids {
		if !d.inPlay(id) {
			continue
		}
		d.toDiscard(id)
		moved = append(moved, id)
	}
	if len(moved) > 0 {
		d.dealt = removeIDs(d.dealt, moved)
	}
	return moved
}

// ReplaceMany discards the given dealt cards like DiscardMany, filling each
// vacated board slot with the next undealt card. Slots left without a
// replacement are closed up.
func (d *Deck) ReplaceMany(ids []int) (discarded, dealt []int) {
	var closed []int
	for _, id := range ids {
		if !d.inPlay(id) {
			continue
		}
		pos := indexOf(d.dealt, id)
		d.toDiscard(id)
		discarded = append(discarded, id)

		if len(d.undealt) == 0 {
			closed = append(closed, id)
			continue
		}
		next := d.undealt[0]
		d.undealt = d.undealt[1:]
		d.loc[next] = LocDealt
		d.cards[next].FaceUp = true
		d.dealt[pos] = next
		dealt = append(dealt, next)
	}
	if len(closed) > 0 {
		d.dealt = removeIDs(d.dealt, closed)
	}
	return discarded, dealt
}

// toDiscard marks a card discarded and pushes it on top of the discard pile.
// The caller removes it from the board.
func (d *Deck) toDiscard(id int) {
	d.cards[id].clearFlags()
	d.loc[id] = LocDiscard
	d.discard = append(d.discard, 0)
	copy(d.discard[1:], d.discard)
	d.discard[0] = id
}

func (d *Deck) valid(id int) bool { return id >= 0 && id < len(d.cards) }

func (d *Deck) inPlay(id int) bool { return d.valid(id) && d.loc[id] == LocDealt }

func (d *Deck) card(id int) *Card { return &d.cards[id] }

// snapshot copies the cards named by ids, in order.
func (d *Deck) snapshot(ids []int) []Card {
	out := make([]Card, len(ids))
	for i, id := range ids {
		out[i] = d.cards[id].clone()
	}
	return out
}

// dealtCards returns the board in order without copying attribute vectors.
// For internal read-only use.
func (d *Deck) dealtCards() []Card {
	out := make([]Card, len(d.dealt))
	for i, id := range d.dealt {
		out[i] = d.cards[id]
	}
	return out
}

// CheckInvariants verifies that the three partitions are disjoint, agree with
// the location index and together hold every card exactly once.
func (d *Deck) CheckInvariants() error {
	total := d.space.TotalCards()
	if got := len(d.undealt) + len(d.dealt) + len(d.discard); got != total {
		return fmt.Errorf("partition sizes sum to %d, want %d", got, total)
	}
	seen := make([]bool, total)
	check := func(ids []int, want Location) error {
		for _, id := range ids {
			if !d.valid(id) {
				return fmt.Errorf("%s holds out-of-range card %d", want, id)
			}
			if seen[id] {
				return fmt.Errorf("card %d appears in more than one place", id)
			}
			seen[id] = true
			if d.loc[id] != want {
				return fmt.Errorf("card %d is in %s but indexed as %s", id, want, d.loc[id])
			}
		}
		return nil
	}
	if err := check(d.undealt, LocUndealt); err != nil {
		return err
	}
	if err := check(d.dealt, LocDealt); err != nil {
		return err
	}
	return check(d.discard, LocDiscard)
}

func indexOf(ids []int, id int) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

// removeIDs filters drop out of ids in place, preserving order.
func removeIDs(ids, drop []int) []int {
	out := ids[:0]
	for _, id := range ids {
		if indexOf(drop, id) < 0 {
			out = append(out, id)
		}
	}
	return out
}
