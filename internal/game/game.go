// internal/game/game.go
package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mgriebling/set/engine"
	"github.com/mgriebling/set/internal/config"
	"github.com/mgriebling/set/internal/theme"
)

// OnGameEndFunc defines the signature for a callback executed when a game ends.
// It receives the session ID and the final score.
type OnGameEndFunc func(gameID uuid.UUID, score int)

// GameEventType represents the type of a game event.
type GameEventType string

// Constants defining the GameEvent types.
const (
	EventCardSelected   GameEventType = "card_selected"
	EventCardDeselected GameEventType = "card_deselected"
	EventSetMatched     GameEventType = "set_matched"
	EventSetFailed      GameEventType = "set_failed"
	EventCardsDealt     GameEventType = "cards_dealt"
	EventCardsDiscarded GameEventType = "cards_discarded"
	EventDealPenalty    GameEventType = "deal_penalty" // Dealt while a set was visible.
	EventCheatUsed      GameEventType = "cheat_used"   // Cards hold the revealed set.
	EventBonusTick      GameEventType = "bonus_tick"
	EventNewGame        GameEventType = "new_game"
	EventThemeChanged   GameEventType = "theme_changed"
	EventDeckEmpty      GameEventType = "deck_empty"
	EventNoMoreCheats   GameEventType = "no_more_cheats"
	EventGameEnd        GameEventType = "game_end"
	EventSyncState      GameEventType = "sync_state" // Full state snapshot.
)

// EventCard identifies a card within a GameEvent.
type EventCard struct {
	ID      int    `json:"id"`
	Content string `json:"content,omitempty"`
	Idx     *int   `json:"idx,omitempty"` // Board position, if on the board.
}

// GameEvent is the structure broadcast for every state change.
type GameEvent struct {
	Type       GameEventType `json:"type"`
	ID         uuid.UUID     `json:"id"`
	Cards      []EventCard   `json:"cards,omitempty"`
	ScoreDelta int           `json:"scoreDelta,omitempty"`
	Score      int           `json:"score"`
	Bonus      int           `json:"bonus"`

	Payload map[string]interface{} `json:"payload,omitempty"`

	State *SyncState `json:"state,omitempty"` // Set on sync events only.
}

// Session owns one engine game and serialises every command on it.
type Session struct {
	ID     uuid.UUID
	Engine *engine.Game
	Theme  theme.Theme
	Config config.Config

	GameOver bool // No set is left and the deck is exhausted.

	Mu sync.Mutex // Protects everything above and the engine.

	// Communication Callbacks. Both run with Mu held.
	BroadcastFn func(ev GameEvent)
	OnGameEnd   OnGameEndFunc

	actionIndex int
	deckEmpty   bool
	log         *logrus.Entry

	timerMu sync.Mutex
	stop    chan struct{}
	done    chan struct{}
}

// NewSession resolves the configured theme, builds the engine and performs
// the initial deal.
func NewSession(cfg config.Config) (*Session, error) {
	th, err := theme.Lookup(cfg.Theme)
	if err != nil {
		return nil, err
	}
	id, _ := uuid.NewRandom()
	s := &Session{
		ID:     id,
		Theme:  th,
		Config: cfg,
		log:    logrus.WithField("game", id),
	}
	seed := cfg.GameSeed()
	s.Engine = engine.NewGame(seed, cfg.HouseRules())
	s.Engine.UpdateTheme(th.ContentFunc())
	s.Engine.Start()
	s.deckEmpty = s.Engine.NoMoreCards()

	s.log.WithFields(logrus.Fields{"seed": seed, "theme": th.Name}).Info("Session created")
	return s, nil
}

// Choose toggles the selection of a dealt card.
func (s *Session) Choose(id int) {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	if s.GameOver {
		s.log.WithField("card", id).Debug("Choose ignored (game over)")
		return
	}
	if _, loc, ok := s.Engine.Card(id); !ok || loc != engine.LocDealt {
		s.log.WithField("card", id).Debug("Choose ignored (card not on the board)")
		return
	}
	prevBonus := s.Engine.Bonus()
	s.applyChange(s.Engine.Choose(id), prevBonus)
}

// Deal asks for more cards.
func (s *Session) Deal() {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	if s.GameOver {
		s.log.Debug("Deal ignored (game over)")
		return
	}
	prevBonus := s.Engine.Bonus()
	s.applyChange(s.Engine.DealCards(s.dealCount(), false), prevBonus)
}

// Cheat reveals a set at a cost.
func (s *Session) Cheat() {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	if s.GameOver {
		s.log.Debug("Cheat ignored (game over)")
		return
	}
	prevBonus := s.Engine.Bonus()
	s.applyChange(s.Engine.Cheat(), prevBonus)
}

// Tick advances the bonus clock by one step.
func (s *Session) Tick() {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	if s.GameOver {
		return
	}
	prevBonus := s.Engine.Bonus()
	s.applyChange(s.Engine.Tick(), prevBonus)
}

// NewGame discards the current game and deals a fresh one, keeping the theme.
func (s *Session) NewGame() {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	prevBonus := s.Engine.Bonus()
	ch := s.Engine.Reset(0)
	s.GameOver = false
	s.deckEmpty = s.Engine.NoMoreCards()
	s.log.Info("New game started")
	s.applyChange(ch, prevBonus)
	s.broadcastSyncState()
}

// SetTheme switches the presentation theme of every card.
func (s *Session) SetTheme(name string) error {
	th, err := theme.Lookup(name)
	if err != nil {
		return err
	}

	s.Mu.Lock()
	defer s.Mu.Unlock()

	s.Theme = th
	s.Engine.UpdateTheme(th.ContentFunc())
	s.logAction(string(EventThemeChanged), logrus.Fields{"theme": th.Name})
	s.fireEvent(GameEvent{
		Type:    EventThemeChanged,
		Payload: map[string]interface{}{"theme": th.Name},
	})
	s.broadcastSyncState()
	return nil
}

// Snapshot returns the current state.
func (s *Session) Snapshot() SyncState {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.currentSyncState()
}

// Sync broadcasts the current state.
func (s *Session) Sync() {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.broadcastSyncState()
}

// StartBonusTimer ticks the bonus clock every interval until Stop is called.
// A running timer is replaced.
func (s *Session) StartBonusTimer(interval time.Duration) {
	s.Stop()
	if interval <= 0 {
		return
	}
	stop, done := make(chan struct{}), make(chan struct{})
	s.timerMu.Lock()
	s.stop, s.done = stop, done
	s.timerMu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				s.Tick()
			}
		}
	}()
	s.log.WithField("interval", interval).Debug("Bonus timer started")
}

// Stop halts the bonus timer and waits for it to exit. It must not be called
// from BroadcastFn or OnGameEnd.
func (s *Session) Stop() {
	s.timerMu.Lock()
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.timerMu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// fireEvent stamps and broadcasts an event via the BroadcastFn callback.
// Assumes lock is held by caller.
func (s *Session) fireEvent(ev GameEvent) {
	ev.ID = uuid.New()
	ev.Score = s.Engine.Score()
	ev.Bonus = s.Engine.Bonus()
	if s.BroadcastFn != nil {
		s.BroadcastFn(ev)
	} else {
		s.log.WithField("event", ev.Type).Trace("BroadcastFn is nil, event dropped")
	}
}

// broadcastSyncState sends the full state to listeners.
// Assumes lock is held by caller.
func (s *Session) broadcastSyncState() {
	state := s.currentSyncState()
	s.fireEvent(GameEvent{Type: EventSyncState, State: &state})
}

// endGame finalises the game once no set can be found any more, broadcasts
// the result and triggers the OnGameEnd callback.
// Assumes lock is held by caller.
func (s *Session) endGame() {
	if s.GameOver {
		return
	}
	s.GameOver = true
	score := s.Engine.Score()
	_, dealt, discard := s.Engine.Counts()

	s.logAction(string(EventGameEnd), logrus.Fields{"score": score, "discarded": discard, "left": dealt})
	s.fireEvent(GameEvent{
		Type: EventGameEnd,
		Payload: map[string]interface{}{
			"score":     score,
			"discarded": discard,
			"left":      dealt,
		},
	})

	if s.OnGameEnd != nil {
		s.OnGameEnd(s.ID, score)
	}
	s.log.WithField("score", score).Info("Game ended")
}

// logAction records a game action with a sequential index.
// Assumes lock is held by caller.
func (s *Session) logAction(actionType string, fields logrus.Fields) {
	s.actionIndex++
	s.log.WithFields(fields).WithFields(logrus.Fields{
		"action": actionType,
		"index":  s.actionIndex,
	}).Debug("Game action")
}

// dealCount is the number of cards a player deal asks for.
func (s *Session) dealCount() int {
	if n := s.Engine.Rules.DealCount; n > 0 {
		return n
	}
	return s.Engine.Space().GroupSize()
}
