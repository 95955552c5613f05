package automaton

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// StateSet is an immutable set of states. It is the identity of a state of a
// deterministic automaton created by subset construction: two StateSets are
// the same DFA state if and only if they contain the same states, which is
// reflected by Key().
type StateSet struct {
	set *treeset.Set
}

// NewStateSet creates a set of states.
func NewStateSet(states ...string) StateSet {
	set := treeset.NewWithStringComparator()
	for _, q := range states {
		set.Add(q)
	}
	return StateSet{set: set}
}

// Size returns the number of states in s.
func (s StateSet) Size() int {
	if s.set == nil {
		return 0
	}
	return s.set.Size()
}

// Contains is true if q ∈ s.
func (s StateSet) Contains(q string) bool {
	return s.set != nil && s.set.Contains(q)
}

// Values returns the states of s in lexicographic order.
func (s StateSet) Values() []string {
	if s.set == nil {
		return nil
	}
	values := make([]string, 0, s.set.Size())
	for _, v := range s.set.Values() {
		values = append(values, v.(string))
	}
	return values
}

// Intersects is true if at least one state of s satisfies member.
func (s StateSet) Intersects(member func(string) bool) bool {
	for _, q := range s.Values() {
		if member(q) {
			return true
		}
	}
	return false
}

// Key returns a canonical representation of s, suitable as a map key.
// Every state is prefixed by its length, thus no state name can pose as
// a sequence of states.
func (s StateSet) Key() string {
	var b strings.Builder
	for _, q := range s.Values() {
		b.WriteString(strconv.Itoa(len(q)))
		b.WriteByte(':')
		b.WriteString(q)
	}
	return b.String()
}

func (s StateSet) String() string {
	return "{" + strings.Join(s.Values(), ", ") + "}"
}

// compareStateSets orders state sets by size first, then lexicographically
// by their sorted states. It is a gods utils.Comparator.
func compareStateSets(a, b interface{}) int {
	s1, s2 := a.(StateSet).Values(), b.(StateSet).Values()
	if len(s1) != len(s2) {
		return len(s1) - len(s2)
	}
	for i := range s1 {
		if c := strings.Compare(s1[i], s2[i]); c != 0 {
			return c
		}
	}
	return 0
}
