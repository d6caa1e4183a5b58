package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/wsxiaoys/terminal/color"

	"github.com/mgriebling/set/internal/config"
	"github.com/mgriebling/set/internal/game"
	"github.com/mgriebling/set/internal/theme"
)

const help = `letters  choose cards by tag, e.g. "abf"
d        deal more cards
c        cheat: reveal a set
n        new game
t NAME   switch theme (%s)
q        quit
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load config")
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.WithError(err).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	s, err := game.NewSession(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create session")
	}
	s.BroadcastFn = announce
	s.OnGameEnd = func(id uuid.UUID, score int) {
		logrus.WithFields(logrus.Fields{"game": id, "score": score}).Info("Game finished")
	}
	s.StartBonusTimer(cfg.Tick)
	defer s.Stop()

	ui := &terminalUI{session: s, color: cfg.Color}
	ui.run(bufio.NewScanner(os.Stdin))
}

type terminalUI struct {
	session *game.Session
	color   bool
}

func (u *terminalUI) run(in *bufio.Scanner) {
	u.printBoard()
	for {
		fmt.Print("\n> ")
		if !in.Scan() {
			return
		}
		line := strings.TrimSpace(in.Text())
		switch {
		case line == "":
			u.printBoard()
		case line == "q":
			return
		case line == "?":
			fmt.Printf(help, strings.Join(theme.Names(), ", "))
		case line == "d":
			u.session.Deal()
			u.printBoard()
		case line == "c":
			u.session.Cheat()
			u.printBoard()
		case line == "n":
			u.session.NewGame()
			u.printBoard()
		case strings.HasPrefix(line, "t "):
			if err := u.session.SetTheme(strings.TrimSpace(line[2:])); err != nil {
				fmt.Println(err)
				continue
			}
			u.printBoard()
		default:
			u.choose(line)
			u.printBoard()
		}
	}
}

// choose maps letter tags to board cards and chooses them in order.
func (u *terminalUI) choose(tags string) {
	board := u.session.Snapshot().Board
	for _, r := range tags {
		i := int(r - 'a')
		if i < 0 || i >= len(board) {
			fmt.Printf("No card %q.\n", r)
			return
		}
		u.session.Choose(board[i].ID)
	}
}

func (u *terminalUI) printBoard() {
	state := u.session.Snapshot()
	s := u.session.Engine.Space()
	th := u.session.Theme

	numCards := len(state.Board)
	numCols := (numCards + 2) / 3
	fmt.Println()
	for i, c := range state.Board {
		mark := " "
		switch {
		case c.Matched:
			mark = "+"
		case c.FailedMatch:
			mark = "x"
		case c.Selected:
			mark = "*"
		}
		label := c.Content
		if u.color {
			label = color.Sprint(th.Glyph(s.Encode(c.ID)))
		}
		fmt.Printf("%c.%s[%-9s]", 'a'+i, mark, label)
		if (i+1)%numCols == 0 || i == numCards-1 {
			fmt.Println()
		} else {
			fmt.Print("  ")
		}
	}
	fmt.Printf("\nscore %d  bonus %d  deck %d  sets %d\n", state.Score, state.Bonus, state.UndealtCount, state.SetsOnBoard)
	if state.GameOver {
		fmt.Println("No more sets. Press n for a new game.")
	}
}

// announce prints the events a player should notice.
func announce(ev game.GameEvent) {
	switch ev.Type {
	case game.EventSetMatched:
		fmt.Printf("Set! %+d\n", ev.ScoreDelta)
	case game.EventSetFailed:
		fmt.Printf("Not a set. %+d\n", ev.ScoreDelta)
	case game.EventDealPenalty:
		fmt.Printf("There was a set on the board. %+d\n", ev.ScoreDelta)
	case game.EventCheatUsed:
		fmt.Printf("Cheat used. %+d\n", ev.ScoreDelta)
	case game.EventDeckEmpty:
		fmt.Println("The deck is empty.")
	case game.EventGameEnd:
		fmt.Printf("Game over. Final score %d.\n", ev.Score)
	}
}
