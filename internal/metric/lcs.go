package metric

// lcSubstrMetric scores by the length of the longest common substring
// (contiguous run) shared with the query, negated so a longer match
// sorts first into the bounded max-heap alongside the edit-distance
// metrics' "lower is better" convention.
type lcSubstrMetric struct {
	query []rune
	rows  [2][]int32
}

func newLCSubstrMetric(query []rune) *lcSubstrMetric {
	m := &lcSubstrMetric{query: query}
	m.rows[0] = make([]int32, len(query)+1)
	m.rows[1] = make([]int32, len(query)+1)
	return m
}

func (m *lcSubstrMetric) Score(candidate []rune) (int32, bool) {
	n := len(m.query)
	if cap(m.rows[0]) < n+1 {
		m.rows[0] = make([]int32, n+1)
		m.rows[1] = make([]int32, n+1)
	}
	prev, cur := m.rows[0][:n+1], m.rows[1][:n+1]
	for j := range prev {
		prev[j] = 0
	}
	var best int32
	for i := 1; i <= len(candidate); i++ {
		cur[0] = 0
		for j := 1; j <= n; j++ {
			if candidate[i-1] == m.query[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > best {
					best = cur[j]
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}
	return -best, true
}

// lcSubseqMetric scores by a length-normalized longest common subsequence
// ratio: weight = -floor(2000*lcs/(len(query)+len(candidate))), the
// Dice-coefficient-style normalization that keeps short and long
// candidates comparable on the same heap.
type lcSubseqMetric struct {
	query []rune
	rows  [2][]int32
}

func newLCSubseqMetric(query []rune) *lcSubseqMetric {
	m := &lcSubseqMetric{query: query}
	m.rows[0] = make([]int32, len(query)+1)
	m.rows[1] = make([]int32, len(query)+1)
	return m
}

func (m *lcSubseqMetric) Score(candidate []rune) (int32, bool) {
	n := len(m.query)
	if cap(m.rows[0]) < n+1 {
		m.rows[0] = make([]int32, n+1)
		m.rows[1] = make([]int32, n+1)
	}
	prev, cur := m.rows[0][:n+1], m.rows[1][:n+1]
	for j := range prev {
		prev[j] = 0
	}
	for i := 1; i <= len(candidate); i++ {
		cur[0] = 0
		for j := 1; j <= n; j++ {
			if candidate[i-1] == m.query[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	lcs := prev[n]
	total := n + len(candidate)
	if total == 0 {
		return 0, true
	}
	ratio := int32(2000*int(lcs)/total) * -1
	return ratio, true
}
