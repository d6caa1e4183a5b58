package engine

// eachGroup calls fn with the board indices of every combination of
// GroupSize distinct cards, in lexicographic order. Enumeration stops as soon
// as fn returns false.
func (s Space) eachGroup(n int, fn func(idx []int) bool) {
	k := s.GroupSize()
	if k < 1 || n < k {
		return
	}
	idx := make([]int, k)
	var recurse func(depth, next int) bool
	recurse = func(depth, next int) bool {
		for i := next; i <= n-(k-depth); i++ {
			idx[depth] = i
			if depth == k-1 {
				if !fn(idx) {
					return false
				}
				continue
			}
			if !recurse(depth+1, i+1) {
				return false
			}
		}
		return true
	}
	recurse(0, 0)
}

// FindSet returns the ids of the first set among cards, searching
// combinations in the order the cards are given, or nil if there is none.
func (s Space) FindSet(cards []Card) []int {
	group := make([]Vector, s.GroupSize())
	var found []int
	s.eachGroup(len(cards), func(idx []int) bool {
		for i, c := range idx {
			group[i] = cards[c].Attrs
		}
		if !s.IsMatch(group) {
			return true
		}
		found = make([]int, len(idx))
		for i, c := range idx {
			found[i] = cards[c].ID
		}
		return false
	})
	return found
}

// CountSets returns the number of distinct sets among cards.
func (s Space) CountSets(cards []Card) int {
	group := make([]Vector, s.GroupSize())
	count := 0
	s.eachGroup(len(cards), func(idx []int) bool {
		for i, c := range idx {
			group[i] = cards[c].Attrs
		}
		if s.IsMatch(group) {
			count++
		}
		return true
	})
	return count
}
