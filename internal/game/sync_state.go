// internal/game/sync_state.go
package game

import (
	"github.com/google/uuid"

	"github.com/mgriebling/set/engine"
)

// CardView represents a card for client synchronisation.
type CardView struct {
	ID          int      `json:"id"`
	Content     string   `json:"content"`
	Attributes  []string `json:"attributes"` // Theme names, one per dimension.
	Selected    bool     `json:"selected,omitempty"`
	Matched     bool     `json:"matched,omitempty"`
	FailedMatch bool     `json:"failedMatch,omitempty"`
}

// SyncState is a snapshot of everything a client needs to draw the game.
type SyncState struct {
	GameID       uuid.UUID         `json:"gameId"`
	Theme        string            `json:"theme"`
	Board        []CardView        `json:"board"`
	UndealtCount int               `json:"undealtCount"`
	DiscardCount int               `json:"discardCount"`
	DiscardTop   *CardView         `json:"discardTop,omitempty"`
	Score        int               `json:"score"`
	Bonus        int               `json:"bonus"`
	SetsOnBoard  int               `json:"setsOnBoard"`
	NoMoreCards  bool              `json:"noMoreCards"`
	NoMoreCheats bool              `json:"noMoreCheats"`
	GameOver     bool              `json:"gameOver"`
	HouseRules   engine.HouseRules `json:"houseRules"`
}

func (s *Session) cardView(c engine.Card) CardView {
	return CardView{
		ID:          c.ID,
		Content:     c.Content,
		Attributes:  s.Theme.Describe(c.Attrs),
		Selected:    c.Selected,
		Matched:     c.Matched,
		FailedMatch: c.FailedMatch,
	}
}

// currentSyncState reads the snapshot from the engine.
// This function assumes the game lock is HELD by the caller.
func (s *Session) currentSyncState() SyncState {
	undealt, _, discard := s.Engine.Counts()
	state := SyncState{
		GameID:       s.ID,
		Theme:        s.Theme.Name,
		UndealtCount: undealt,
		DiscardCount: discard,
		Score:        s.Engine.Score(),
		Bonus:        s.Engine.Bonus(),
		SetsOnBoard:  s.Engine.SetsOnBoard(),
		NoMoreCards:  s.Engine.NoMoreCards(),
		NoMoreCheats: s.Engine.NoMoreCheats(),
		GameOver:     s.GameOver,
		HouseRules:   s.Engine.Rules,
	}

	dealt := s.Engine.DealtCards()
	state.Board = make([]CardView, len(dealt))
	for i, c := range dealt {
		state.Board[i] = s.cardView(c)
	}

	// Most recent discard first.
	if pile := s.Engine.DiscardedCards(); len(pile) > 0 {
		top := s.cardView(pile[0])
		state.DiscardTop = &top
	}
	return state
}
