// Rule scenarios using godog.
//
// These tests load features/setgame.feature and drive the engine through its
// public API only.
package engine_test

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/mgriebling/set/engine"
)

type ctxKey struct{}

// scenario holds the state for a single scenario.
type scenario struct {
	game *engine.Game
}

func current(ctx context.Context) *scenario {
	return ctx.Value(ctxKey{}).(*scenario)
}

// parseIDs reads a list like "0, 1, 2".
func parseIDs(list string) ([]int, error) {
	var ids []int
	for _, f := range strings.Split(list, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		id, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad card id %q: %w", f, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// deckOrder puts first at the top of the deck and the rest in id order.
func deckOrder(total int, first []int) []int {
	order := append([]int(nil), first...)
	used := make(map[int]bool)
	for _, id := range first {
		used[id] = true
	}
	for id := 0; id < total; id++ {
		if !used[id] {
			order = append(order, id)
		}
	}
	return order
}

func startGame(ctx context.Context, rules engine.HouseRules, list string) error {
	first, err := parseIDs(list)
	if err != nil {
		return err
	}
	total := engine.Space{Values: rules.Values, Dimensions: rules.Dimensions}.TotalCards()
	g, err := engine.NewGameWithOrder(deckOrder(total, first), rules)
	if err != nil {
		return err
	}
	g.Start()
	current(ctx).game = g
	return nil
}

func sameSet(got, want []int) bool {
	if len(got) != len(want) {
		return false
	}
	a := append([]int(nil), got...)
	b := append([]int(nil), want...)
	sort.Ints(a)
	sort.Ints(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func idsOf(cards []engine.Card) []int {
	out := make([]int, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

// --- Step Definitions ---

func aStandardGameWhoseDeckStartsWith(ctx context.Context, list string) error {
	return startGame(ctx, engine.DefaultHouseRules(), list)
}

func aSmallGameWhoseDeckStartsWith(ctx context.Context, values, dims int, list string) error {
	rules := engine.DefaultHouseRules()
	rules.Values = values
	rules.Dimensions = dims
	rules.InitialDeal = 4
	return startGame(ctx, rules, list)
}

func theBonusHasTickedDown(ctx context.Context, n int) error {
	g := current(ctx).game
	for i := 0; i < n; i++ {
		g.Tick()
	}
	return nil
}

func iChooseCards(ctx context.Context, list string) error {
	ids, err := parseIDs(list)
	if err != nil {
		return err
	}
	for _, id := range ids {
		current(ctx).game.Choose(id)
	}
	return nil
}

func iDealCards(ctx context.Context, n int) error {
	current(ctx).game.DealCards(n, false)
	return nil
}

func iCheat(ctx context.Context) error {
	current(ctx).game.Cheat()
	return nil
}

func iCheatUntilNoSetsRemain(ctx context.Context) error {
	g := current(ctx).game
	for i := 0; i < g.Space().TotalCards() && !g.NoMoreCheats(); i++ {
		g.Cheat()
	}
	if !g.NoMoreCheats() {
		return fmt.Errorf("cheat never ran out")
	}
	return nil
}

func cardsAreMarked(ctx context.Context, list, state string) error {
	ids, err := parseIDs(list)
	if err != nil {
		return err
	}
	g := current(ctx).game
	for _, id := range ids {
		c, loc, ok := g.Card(id)
		if !ok || loc != engine.LocDealt {
			return fmt.Errorf("card %d is not on the board", id)
		}
		if !c.Selected {
			return fmt.Errorf("card %d is not selected", id)
		}
		switch state {
		case "matched":
			if !c.Matched || c.FailedMatch {
				return fmt.Errorf("card %d is not marked matched: %+v", id, c)
			}
		case "failed":
			if !c.FailedMatch || c.Matched {
				return fmt.Errorf("card %d is not marked failed: %+v", id, c)
			}
		}
	}
	if got := idsOf(g.SelectedCards()); !sameSet(got, ids) {
		return fmt.Errorf("selected cards are %v, expected %v", got, ids)
	}
	return nil
}

func theScoreIs(ctx context.Context, want int) error {
	if got := current(ctx).game.Score(); got != want {
		return fmt.Errorf("score is %d, expected %d", got, want)
	}
	return nil
}

func theBonusIs(ctx context.Context, want int) error {
	if got := current(ctx).game.Bonus(); got != want {
		return fmt.Errorf("bonus is %d, expected %d", got, want)
	}
	return nil
}

func cardsAreUndealtAndDealt(ctx context.Context, undealt, dealt int) error {
	u, d, _ := current(ctx).game.Counts()
	if u != undealt || d != dealt {
		return fmt.Errorf("%d undealt and %d dealt, expected %d and %d", u, d, undealt, dealt)
	}
	return nil
}

func theSelectedCardsAre(ctx context.Context, list string) error {
	want, err := parseIDs(list)
	if err != nil {
		return err
	}
	if got := idsOf(current(ctx).game.SelectedCards()); !sameSet(got, want) {
		return fmt.Errorf("selected cards are %v, expected %v", got, want)
	}
	return nil
}

func theDiscardPileHolds(ctx context.Context, list string) error {
	want, err := parseIDs(list)
	if err != nil {
		return err
	}
	if got := idsOf(current(ctx).game.DiscardedCards()); !sameSet(got, want) {
		return fmt.Errorf("discard pile holds %v, expected %v", got, want)
	}
	return nil
}

func theDeckPartitionsAreConsistent(ctx context.Context) error {
	return current(ctx).game.CheckInvariants()
}

func cheatingIsStillPossible(ctx context.Context) error {
	if current(ctx).game.NoMoreCheats() {
		return fmt.Errorf("cheat reported no more sets")
	}
	return nil
}

func cheatingIsNoLongerPossible(ctx context.Context) error {
	if !current(ctx).game.NoMoreCheats() {
		return fmt.Errorf("cheat still available")
	}
	return nil
}

// InitializeScenario sets up the godog scenario context.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return context.WithValue(ctx, ctxKey{}, &scenario{}), nil
	})

	// Given steps
	ctx.Step(`^a standard game whose deck starts with cards ([\d, ]+)$`, aStandardGameWhoseDeckStartsWith)
	ctx.Step(`^a game with (\d+) values and (\d+) dimensions whose deck starts with cards ([\d, ]+)$`, aSmallGameWhoseDeckStartsWith)
	ctx.Step(`^the bonus has ticked down (\d+) times$`, theBonusHasTickedDown)

	// When steps
	ctx.Step(`^I choose cards? ([\d, ]+)$`, iChooseCards)
	ctx.Step(`^I deal (\d+) cards$`, iDealCards)
	ctx.Step(`^I cheat$`, iCheat)
	ctx.Step(`^I cheat until no sets remain$`, iCheatUntilNoSetsRemain)

	// Then steps
	ctx.Step(`^cards ([\d, ]+) are marked (matched|failed)$`, cardsAreMarked)
	ctx.Step(`^the score is (-?\d+)$`, theScoreIs)
	ctx.Step(`^the bonus is (\d+)$`, theBonusIs)
	ctx.Step(`^(\d+) cards are undealt and (\d+) are dealt$`, cardsAreUndealtAndDealt)
	ctx.Step(`^the selected cards are ([\d, ]+)$`, theSelectedCardsAre)
	ctx.Step(`^the discard pile holds cards ([\d, ]+)$`, theDiscardPileHolds)
	ctx.Step(`^the deck partitions are consistent$`, theDeckPartitionsAreConsistent)
	ctx.Step(`^cheating is still possible$`, cheatingIsStillPossible)
	ctx.Step(`^cheating is no longer possible$`, cheatingIsNoLongerPossible)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features/setgame.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
