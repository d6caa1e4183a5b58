package engine

// Action identifies the command that produced a Change.
type Action uint8

const (
	ActionChoose Action = iota
	ActionDeal
	ActionCheat
	ActionTick
	ActionNewGame
)

func (a Action) String() string {
	switch a {
	case ActionChoose:
		return "choose"
	case ActionDeal:
		return "deal"
	case ActionCheat:
		return "cheat"
	case ActionTick:
		return "tick"
	case ActionNewGame:
		return "new_game"
	default:
		return "unknown"
	}
}

// PenaltyKind names a score penalty that is not a failed match.
type PenaltyKind uint8

const (
	PenaltyMissedSet PenaltyKind = iota // dealt while a set was visible
	PenaltyCheat                        // used cheat
)

func (k PenaltyKind) String() string {
	switch k {
	case PenaltyMissedSet:
		return "missed_set"
	case PenaltyCheat:
		return "cheat"
	default:
		return "unknown"
	}
}

// Penalty records points deducted during an operation.
type Penalty struct {
	Kind   PenaltyKind
	Points int
}

// Change describes the effect of one command on the game. The engine returns
// it so the presentation layer can update without diffing state.
type Change struct {
	Action Action
	Card   int // chosen card, -1 when not a choose

	Selected  []int // selection after the operation
	Matched   []int // group that resolved as a set
	Failed    []int // group that resolved as a failed match
	Hint      []int // set revealed by cheat
	Dealt     []int
	Discarded []int
	Penalties []Penalty

	ScoreDelta   int
	Score        int
	Bonus        int
	BonusReset   bool
	NoMoreCards  bool
	NoMoreCheats bool

	startScore int
}

