package engine

// Dimension indices of the standard game.
const (
	DimColour = 0
	DimShape  = 1
	DimFill   = 2
	DimNumber = 3
)

// maxValues bounds the attribute domain so a dimension fits a uint64 bitmask.
const maxValues = 64

// Space describes the attribute domain: Values distinct values in each of
// Dimensions dimensions. The number of values is also the size of a set.
type Space struct {
	Values     int
	Dimensions int
}

// StandardSpace returns the 3-value, 4-dimension space of the standard game.
func StandardSpace() Space {
	return Space{Values: 3, Dimensions: 4}
}

// TotalCards returns Values^Dimensions, the size of a full deck.
func (s Space) TotalCards() int {
	n := 1
	for i := 0; i < s.Dimensions; i++ {
		n *= s.Values
	}
	return n
}

// GroupSize returns the number of cards that form a set.
func (s Space) GroupSize() int { return s.Values }

// Encode maps a card id to its attribute vector using a mixed-radix
// decomposition in base Values: v[i] = (id / Values^i) mod Values.
// Returns nil for an id outside [0, TotalCards()).
func (s Space) Encode(id int) Vector {
	if id < 0 || id >= s.TotalCards() {
		return nil
	}
	v := make(Vector, s.Dimensions)
	div := 1
	for i := range v {
		v[i] = Attribute((id / div) % s.Values)
		div *= s.Values
	}
	return v
}

// Decode is the inverse of Encode. Returns -1 if v does not belong to the space.
func (s Space) Decode(v Vector) int {
	if len(v) != s.Dimensions {
		return -1
	}
	id, mul := 0, 1
	for _, a := range v {
		if int(a) >= s.Values {
			return -1
		}
		id += int(a) * mul
		mul *= s.Values
	}
	return id
}
