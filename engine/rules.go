package engine

// HouseRules holds configurable game rule settings.
type HouseRules struct {
	Values      int // attribute values per dimension; 0 treated as 3
	Dimensions  int // card dimensions; 0 treated as 4
	InitialDeal int // cards dealt at the start of a game; 0 treated as 12
	DealCount   int // cards dealt by cheat when no set is visible; 0 treated as Values

	TimeToMatch     int // bonus ceiling, counted down once per tick
	MatchReward     int // base points for a match
	MismatchPenalty int // base points lost for a failed match
	CheatPenalty    int // base points lost for using cheat
	DealPenalty     int // base points lost for dealing while a set is visible

	ReplaceInPlace bool // matched cards are replaced in their board slots
}

// DefaultHouseRules returns the standard Set rules.
func DefaultHouseRules() HouseRules {
	return HouseRules{
		Values:          3,
		Dimensions:      4,
		InitialDeal:     12,
		DealCount:       3,
		TimeToMatch:     10,
		MatchReward:     3,
		MismatchPenalty: 1,
		CheatPenalty:    4,
		DealPenalty:     1,
		ReplaceInPlace:  true,
	}
}

// space returns the effective attribute space.
func (r *HouseRules) space() Space {
	s := Space{Values: r.Values, Dimensions: r.Dimensions}
	if s.Values < 2 {
		s.Values = 3
	}
	if s.Values > maxValues {
		s.Values = maxValues
	}
	if s.Dimensions < 1 {
		s.Dimensions = 4
	}
	return s
}

func (r *HouseRules) initialDeal() int {
	if r.InitialDeal <= 0 {
		return 12
	}
	return r.InitialDeal
}

func (r *HouseRules) dealCount() int {
	if r.DealCount <= 0 {
		return r.space().Values
	}
	return r.DealCount
}
