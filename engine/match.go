package engine

import "math/bits"

// IsMatch reports whether group forms a set: exactly Values vectors such that,
// in every dimension, the values are either all equal or all distinct.
func (s Space) IsMatch(group []Vector) bool {
	if s.Values < 2 || s.Values > maxValues || len(group) != s.Values {
		return false
	}
	for dim := 0; dim < s.Dimensions; dim++ {
		var seen uint64
		for _, v := range group {
			if len(v) != s.Dimensions || int(v[dim]) >= s.Values {
				return false
			}
			seen |= 1 << uint(v[dim])
		}
		allSame := seen&(seen-1) == 0
		allDiff := bits.OnesCount64(seen) == len(group)
		if !allSame && !allDiff {
			return false
		}
	}
	return true
}
