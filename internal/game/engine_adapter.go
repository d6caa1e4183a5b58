// internal/game/engine_adapter.go
package game

import (
	"github.com/sirupsen/logrus"

	"github.com/mgriebling/set/engine"
)

// eventCard builds the event view of a card, with its board position when
// it is on the board.
// Assumes lock is held by caller.
func (s *Session) eventCard(id int, board map[int]int) EventCard {
	ev := EventCard{ID: id}
	if c, _, ok := s.Engine.Card(id); ok {
		ev.Content = c.Content
	}
	if idx, ok := board[id]; ok {
		ev.Idx = &idx
	}
	return ev
}

func (s *Session) eventCards(ids []int, board map[int]int) []EventCard {
	out := make([]EventCard, len(ids))
	for i, id := range ids {
		out[i] = s.eventCard(id, board)
	}
	return out
}

// boardIndex maps each dealt card id to its board position.
func (s *Session) boardIndex() map[int]int {
	dealt := s.Engine.DealtCards()
	idx := make(map[int]int, len(dealt))
	for i, c := range dealt {
		idx[c.ID] = i
	}
	return idx
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// applyChange sends the events for a completed engine command and ends the
// game once cheat has run out of sets.
// Assumes lock is held by caller.
func (s *Session) applyChange(ch engine.Change, prevBonus int) {
	board := s.boardIndex()

	if ch.Action == engine.ActionNewGame {
		s.logAction(string(EventNewGame), nil)
		s.fireEvent(GameEvent{Type: EventNewGame})
	}

	if len(ch.Discarded) > 0 {
		s.logAction(string(EventCardsDiscarded), logrus.Fields{"cards": ch.Discarded})
		s.fireEvent(GameEvent{Type: EventCardsDiscarded, Cards: s.eventCards(ch.Discarded, board)})
	}
	if len(ch.Dealt) > 0 {
		s.logAction(string(EventCardsDealt), logrus.Fields{"cards": ch.Dealt})
		s.fireEvent(GameEvent{Type: EventCardsDealt, Cards: s.eventCards(ch.Dealt, board)})
	}

	if ch.Action == engine.ActionChoose && ch.Card >= 0 {
		typ := EventCardDeselected
		if contains(ch.Selected, ch.Card) {
			typ = EventCardSelected
		}
		s.fireEvent(GameEvent{
			Type:    typ,
			Cards:   []EventCard{s.eventCard(ch.Card, board)},
			Payload: map[string]interface{}{"selected": ch.Selected},
		})
	}

	// Match and failure deltas exclude the separately reported penalties.
	groupDelta := ch.ScoreDelta
	for _, p := range ch.Penalties {
		groupDelta += p.Points
	}
	if len(ch.Matched) > 0 {
		s.logAction(string(EventSetMatched), logrus.Fields{"cards": ch.Matched, "delta": groupDelta})
		s.fireEvent(GameEvent{Type: EventSetMatched, Cards: s.eventCards(ch.Matched, board), ScoreDelta: groupDelta})
	}
	if len(ch.Failed) > 0 {
		s.logAction(string(EventSetFailed), logrus.Fields{"cards": ch.Failed, "delta": groupDelta})
		s.fireEvent(GameEvent{Type: EventSetFailed, Cards: s.eventCards(ch.Failed, board), ScoreDelta: groupDelta})
	}

	for _, p := range ch.Penalties {
		ev := GameEvent{
			ScoreDelta: -p.Points,
			Payload:    map[string]interface{}{"points": p.Points, "kind": p.Kind.String()},
		}
		switch p.Kind {
		case engine.PenaltyCheat:
			ev.Type = EventCheatUsed
			ev.Cards = s.eventCards(ch.Hint, board)
		default:
			ev.Type = EventDealPenalty
		}
		s.logAction(string(ev.Type), logrus.Fields{"points": p.Points})
		s.fireEvent(ev)
	}

	if ch.Action == engine.ActionTick && ch.Bonus != prevBonus {
		s.fireEvent(GameEvent{Type: EventBonusTick})
	}

	if ch.NoMoreCards && !s.deckEmpty {
		s.deckEmpty = true
		s.log.Info("Deck exhausted")
		s.fireEvent(GameEvent{Type: EventDeckEmpty})
	}

	if ch.NoMoreCheats {
		s.logAction(string(EventNoMoreCheats), nil)
		s.fireEvent(GameEvent{Type: EventNoMoreCheats})
		s.endGame()
	}
}
