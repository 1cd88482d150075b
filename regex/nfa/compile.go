package nfa

import "github.com/pelanor/wordforge/regex"

// fragment is an in-progress piece of the graph under construction: Start
// is where a predecessor should attach its outgoing edge, End is where
// this fragment's continuation should attach its incoming edge. For a
// single atom (literal/set/wildcard), Start and End are the same state,
// since the state itself both awaits input and determines what follows
// once it is consumed.
type fragment struct {
	Start *State
	End   *State
}

// Compile compiles a parsed pattern into an NFA graph with exactly one
// Start and one Accept state, per Thompson construction.
func Compile(pat regex.Pattern) *Graph {
	body := compileSequence(pat.Elements)

	accept := newState(KindAccept)
	body.End.AddStrongSuccessor(accept)

	start := newState(KindStart)
	start.AddStrongSuccessor(body.Start)

	return &Graph{start: start, accept: accept}
}

// CompilePattern parses and compiles s in one step.
func CompilePattern(s string) (*Graph, error) {
	pat, err := regex.Parse(s)
	if err != nil {
		return nil, err
	}
	return Compile(pat), nil
}

func compileSequence(elems []regex.Element) fragment {
	frags := make([]fragment, len(elems))
	for i, e := range elems {
		frags[i] = compileElement(e)
	}
	for i := 0; i < len(frags)-1; i++ {
		frags[i].End.AddStrongSuccessor(frags[i+1].Start)
	}
	return fragment{Start: frags[0].Start, End: frags[len(frags)-1].End}
}

func compileElement(e regex.Element) fragment {
	switch v := e.(type) {
	case regex.Literal:
		s := NewLiteral(rune(v))
		return fragment{Start: s, End: s}
	case regex.Wildcard:
		s := NewWildcard()
		return fragment{Start: s, End: s}
	case regex.Set:
		s := NewSet([]rune(v))
		return fragment{Start: s, End: s}
	case regex.Group:
		return compileGroup(v)
	case regex.Repeat:
		return compileRepeat(v)
	case regex.Optional:
		return compileOptional(v)
	default:
		panic("nfa: unknown regex.Element type")
	}
}

// compileGroup builds an epsilon-fork into each alternative and an
// epsilon-join back to a shared exit, so the fragment presents a single
// Start/End pair to its caller regardless of how many alternatives it has.
func compileGroup(g regex.Group) fragment {
	fork := NewDummy()
	join := NewDummy()
	for _, alt := range g.Alternatives {
		f := compileSequence(alt.Elements)
		fork.AddStrongSuccessor(f.Start)
		f.End.AddStrongSuccessor(join)
	}
	return fragment{Start: fork, End: join}
}

// compileRepeat implements `*`: an entry dummy that can either step into
// the body or skip straight to exit (the skip-edge), and a weak back-edge
// from the body's end to entry (so the loop can run again or exit).
func compileRepeat(r regex.Repeat) fragment {
	body := compileElement(r.Elem)
	entry := NewDummy()
	exit := NewDummy()

	entry.AddStrongSuccessor(body.Start)
	entry.AddStrongSuccessor(exit)
	body.End.AddWeakSuccessor(entry)

	return fragment{Start: entry, End: exit}
}

// compileOptional implements `?`: an entry dummy that can step into the
// body or skip directly to exit. Unlike `*`, there is no back-edge.
func compileOptional(o regex.Optional) fragment {
	body := compileElement(o.Elem)
	entry := NewDummy()
	exit := NewDummy()

	entry.AddStrongSuccessor(body.Start)
	entry.AddStrongSuccessor(exit)
	body.End.AddStrongSuccessor(exit)

	return fragment{Start: entry, End: exit}
}
