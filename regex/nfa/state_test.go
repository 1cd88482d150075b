package nfa_test

import (
	"testing"

	"github.com/pelanor/wordforge/regex/nfa"
	"github.com/stretchr/testify/require"
)

func TestStateAcceptsByKind(t *testing.T) {
	lit := nfa.NewLiteral('A')
	require.True(t, lit.Accepts('A'))
	require.False(t, lit.Accepts('B'))

	set := nfa.NewSet([]rune{'A', 'B', 'C'})
	require.True(t, set.Accepts('B'))
	require.False(t, set.Accepts('D'))

	wild := nfa.NewWildcard()
	require.True(t, wild.Accepts('Z'))

	dummy := nfa.NewDummy()
	require.False(t, dummy.Accepts('A'))
}

func TestStateIDsAreDistinct(t *testing.T) {
	a := nfa.NewLiteral('A')
	b := nfa.NewLiteral('A')
	require.NotEqual(t, a.ID(), b.ID())
}

func TestStrongSuccessorResolves(t *testing.T) {
	a := nfa.NewLiteral('A')
	b := nfa.NewLiteral('B')
	a.AddStrongSuccessor(b)
	succ := a.Successors()
	require.Len(t, succ, 1)
	require.Equal(t, b.ID(), succ[0].ID())
}

func TestWeakSuccessorResolvesWhileTargetReachable(t *testing.T) {
	a := nfa.NewLiteral('A')
	b := nfa.NewLiteral('B')
	// Keep a, the weak edge's target, alive via a strong chain rooted
	// elsewhere, mirroring how a `*` loop's entry dummy is always
	// strongly reachable from Start.
	root := nfa.NewDummy()
	root.AddStrongSuccessor(a)
	b.AddWeakSuccessor(a)

	succ := b.Successors()
	require.Len(t, succ, 1)
	require.Equal(t, a.ID(), succ[0].ID())
}
