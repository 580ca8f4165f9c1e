package lexsearch

import "testing"

func TestMatchGlob(t *testing.T) {
	cases := []struct {
		pattern, str string
		want         bool
	}{
		{"cat", "cat", true},
		{"cat", "cats", false},
		{"c?t", "cat", true},
		{"c?t", "ct", false},
		{"c*r", "cater", true},
		{"c*r", "cat", false},
		{"*oo*", "door", true},
		{"*er", "cater", true},
		{"[abc]at", "cat", true},
		{"[abc]at", "dat", false},
		{"[^abc]at", "dat", true},
		{"[a-c]at", "bat", true},
		{"[a-c]at", "dat", false},
		{"[]]at", "]at", true},
		{"[abc", "cat", false},
		{"café", "café", true},
		{"c?fé", "café", true},
	}
	for _, c := range cases {
		got := matchGlob([]rune(c.pattern), []rune(c.str))
		if got != c.want {
			t.Errorf("matchGlob(%q, %q) = %v, want %v", c.pattern, c.str, got, c.want)
		}
	}
}
