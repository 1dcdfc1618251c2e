package automaton

import "sort"

// Builder accumulates patterns into a trie. It is single-use: after Build
// the builder must not be reused
type Builder struct {
	nodes    []node
	patterns []Pattern
	built    bool
}

// NewBuilder returns a builder holding only the root node
func NewBuilder() *Builder {
	return &Builder{nodes: []node{newNode()}}
}

func newNode() node { return node{next: make(map[rune]int32)} }

// Add inserts p codepoint by codepoint from the root. Empty patterns are ignored
// and reported by the false return
func (b *Builder) Add(p Pattern) bool {
	if b.built {
		panic("automaton: Add after Build")
	}
	if len(p.Runes) == 0 {
		return false
	}
	state := int32(root)
	for _, r := range p.Runes {
		nxt, ok := b.nodes[state].next[r]
		if !ok {
			nxt = int32(len(b.nodes))
			b.nodes = append(b.nodes, newNode())
			b.nodes[state].next[r] = nxt
		}
		state = nxt
	}
	idx := int32(len(b.patterns))
	b.patterns = append(b.patterns, Pattern{
		ID:       p.ID,
		Runes:    append([]rune(nil), p.Runes...),
		Original: p.Original,
	})
	b.nodes[state].out = append(b.nodes[state].out, idx)
	return true
}

// Build finalizes failure links breadth first and merges outputs along them
func (b *Builder) Build() *Automaton {
	if b.built {
		panic("automaton: Build called twice")
	}
	b.built = true

	// depth-1 nodes fail to the root
	q := make([]int32, 0, len(b.nodes))
	for _, r := range sortedKeys(b.nodes[root].next) {
		s := b.nodes[root].next[r]
		b.nodes[s].fail = root
		q = append(q, s)
	}

	for qi := 0; qi < len(q); qi++ {
		parent := q[qi]
		for _, r := range sortedKeys(b.nodes[parent].next) {
			child := b.nodes[parent].next[r]
			q = append(q, child)

			f := b.nodes[parent].fail
			for f != root {
				if _, ok := b.nodes[f].next[r]; ok {
					break
				}
				f = b.nodes[f].fail
			}
			target := int32(root)
			if nxt, ok := b.nodes[f].next[r]; ok {
				target = nxt
			}
			b.nodes[child].fail = target

			// merge output
			if inherited := b.nodes[target].out; len(inherited) > 0 {
				own := b.nodes[child].out
				merged := make([]int32, 0, len(own)+len(inherited))
				merged = append(merged, own...)
				merged = append(merged, inherited...)
				b.nodes[child].out = merged
			}
		}
	}

	a := &Automaton{nodes: b.nodes, patterns: b.patterns}
	b.nodes, b.patterns = nil, nil
	return a
}

// sortedKeys keeps construction deterministic regardless of map order
func sortedKeys(m map[rune]int32) []rune {
	keys := make([]rune, 0, len(m))
	for r := range m {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
