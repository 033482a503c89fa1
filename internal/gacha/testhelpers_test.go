package gacha

// maxSource always returns the top of the range: every roll loses unless its weight
// reaches the cutoff, and every uniform choice takes the last element.
type maxSource struct{}

func (maxSource) IntN(n int) int { return n - 1 }

// zeroSource always returns 0: the first weighted slot and the first list element win.
type zeroSource struct{}

func (zeroSource) IntN(int) int { return 0 }

// scriptedSource replays values (reduced modulo n) and then behaves like zeroSource.
type scriptedSource struct {
	values []int
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}

func contains(list []int, id int) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
