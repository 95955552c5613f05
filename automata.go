package chomsky

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	pool "github.com/jolestar/go-commons-pool"
)

// Delta is the transition relation of a finite automaton. Destinations
// returns the states reachable from state by reading symbol, or nil
// if there is no move.
type Delta interface {
	Destinations(state string, symbol rune) []string
}

// A Frontier is the set of states an automaton may be in after having
// consumed a prefix of its input. Frontiers are used to simulate
// non-deterministic automata without backtracking, and as the state sets
// of subset construction.
//
// A Frontier belongs to the call which borrowed it. It must not be
// shared and must not be used after Release().
type Frontier struct {
	states *hashset.Set
}

// NewFrontier creates a new Frontier, initially containing states.
// This is rarely used, as clients rather should call NewPooledFrontier().
func NewFrontier(states ...string) *Frontier {
	f := &Frontier{states: hashset.New()}
	f.Add(states...)
	return f
}

// Frontiers are short-lived objects. To avoid multiple allocation of
// small objects we will pool them.
type frontierPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalFrontierPool *frontierPool

func init() {
	globalFrontierPool = &frontierPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return NewFrontier(), nil
		})
	globalFrontierPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalFrontierPool.opool = pool.NewObjectPool(globalFrontierPool.ctx, factory, config)
}

// NewPooledFrontier returns an empty Frontier from the pool, pre-filled
// with states. Clients must call Release() when done with it.
func NewPooledFrontier(states ...string) *Frontier {
	o, err := globalFrontierPool.opool.BorrowObject(globalFrontierPool.ctx)
	if err != nil {
		CT().Errorf("cannot borrow frontier from pool: %v", err)
		return NewFrontier(states...)
	}
	f := o.(*Frontier)
	f.Add(states...)
	return f
}

// Release clears the Frontier and puts it back into the pool.
func (f *Frontier) Release() {
	f.states.Clear()
	_ = globalFrontierPool.opool.ReturnObject(globalFrontierPool.ctx, f)
}

// Add puts states into the frontier.
func (f *Frontier) Add(states ...string) {
	for _, s := range states {
		f.states.Add(s)
	}
}

// Contains is true if state is a member of the frontier.
func (f *Frontier) Contains(state string) bool {
	return f.states.Contains(state)
}

// Size returns the number of states in the frontier.
func (f *Frontier) Size() int {
	return f.states.Size()
}

// Empty is true for a frontier without any states. An automaton with an
// empty frontier has died: no input can lead to acceptance any more.
func (f *Frontier) Empty() bool {
	return f.states.Empty()
}

// Clear removes all states from the frontier.
func (f *Frontier) Clear() {
	f.states.Clear()
}

// Values returns the states of the frontier in lexicographic order.
func (f *Frontier) Values() []string {
	values := make([]string, 0, f.states.Size())
	for _, v := range f.states.Values() {
		values = append(values, v.(string))
	}
	sort.Strings(values)
	return values
}

// Advance computes the states reachable from any state of f by reading
// symbol and stores them into next. next is cleared first. f and next
// must not be identical.
func (f *Frontier) Advance(delta Delta, symbol rune, next *Frontier) {
	if f == next {
		panic("frontier cannot advance into itself")
	}
	next.Clear()
	for _, v := range f.states.Values() {
		next.Add(delta.Destinations(v.(string), symbol)...)
	}
}

// Intersects is true if at least one state of the frontier satisfies
// member, usually a test for final states.
func (f *Frontier) Intersects(member func(string) bool) bool {
	for _, v := range f.states.Values() {
		if member(v.(string)) {
			return true
		}
	}
	return false
}

// Simple stringer for debugging purposes.
func (f *Frontier) String() string {
	if f == nil {
		return "{nil frontier}"
	}
	return fmt.Sprintf("{%s}", strings.Join(f.Values(), ", "))
}
