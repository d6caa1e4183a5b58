package engine

import "strconv"

// Attribute is one value of a card dimension. Attributes are only ever
// compared for equality.
type Attribute uint8

// attributeNames mirrors the three-valued domain of the standard game.
var attributeNames = [...]string{"one", "two", "three"}

func (a Attribute) String() string {
	if int(a) < len(attributeNames) {
		return attributeNames[a]
	}
	return strconv.Itoa(int(a) + 1)
}

// Vector holds one Attribute per card dimension.
type Vector []Attribute

// Equal reports whether two vectors hold the same values.
func (v Vector) Equal(o Vector) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of v that shares no storage with it.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Card is a single card of the deck. ID and Attrs are fixed when the deck is
// generated; the remaining fields are presentation state.
type Card struct {
	ID      int
	Attrs   Vector
	Content string // derived from Attrs by the active ContentFunc

	Selected    bool
	Matched     bool
	FailedMatch bool
	FaceUp      bool
}

// clone returns a copy of c that does not share its attribute vector.
func (c Card) clone() Card {
	c.Attrs = c.Attrs.Clone()
	return c
}

// clearFlags resets the selection state of a card leaving play.
func (c *Card) clearFlags() {
	c.Selected = false
	c.Matched = false
	c.FailedMatch = false
}

// Location is the partition a card currently belongs to.
type Location uint8

const (
	LocUndealt Location = iota // face-down pool
	LocDealt                   // in play
	LocDiscard                 // removed after a confirmed match
)

func (l Location) String() string {
	switch l {
	case LocUndealt:
		return "undealt"
	case LocDealt:
		return "dealt"
	case LocDiscard:
		return "discard"
	default:
		return "unknown"
	}
}

// ContentFunc derives presentation content from a card's attributes. It must
// be pure: the same vector always yields the same content.
type ContentFunc func(Vector) string
