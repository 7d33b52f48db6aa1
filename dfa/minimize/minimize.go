// Package minimize reduces a DFA to its minimal equivalent by the
// table-filling (Moore) algorithm: a pair of states is marked distinct as
// soon as any evidence separates them, and whatever is never marked
// distinct is provably equivalent.
package minimize

import (
	"sort"

	"github.com/coregx/retafsm/dfa"
	"github.com/coregx/retafsm/internal/unionfind"
)

const dead = -1

// Minimize reduces d to its minimal equivalent, renumbering states in
// canonical order (merged classes first, by minimum original member index,
// then singletons in original index order). A DFA with fewer than two
// states is returned unchanged.
func Minimize(d *dfa.DFA) *dfa.DFA {
	n := d.States()
	if n < 2 {
		return d
	}

	alpha := alphabet(d)
	distinct := fillTable(d, alpha, n)

	uf := unionfind.New(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !distinct[i][j] {
				uf.Union(i, j)
			}
		}
	}

	classOf, order := canonicalClasses(uf, n)
	return emit(d, alpha, classOf, order)
}

// fillTable computes, for each pair i < j, whether states i and j are
// distinguishable: initialized by accept-status mismatch, then refined
// until a fixed point by propagating distinguishability of successor pairs
// back to their predecessors.
func fillTable(d *dfa.DFA, alpha []dfa.Symbol, n int) [][]bool {
	table := make([][]bool, n)
	for i := range table {
		table[i] = make([]bool, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if d.IsAccept(dfa.StateID(i)) != d.IsAccept(dfa.StateID(j)) {
				table[i][j] = true
			}
		}
	}

	for changed := true; changed; {
		changed = false
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if table[i][j] {
					continue
				}
				for _, sym := range alpha {
					pi := target(d, dfa.StateID(i), sym)
					pj := target(d, dfa.StateID(j), sym)

					if (pi == dead) != (pj == dead) {
						table[i][j] = true
						changed = true
						break
					}
					if pi == dead {
						continue
					}
					lo, hi := pi, pj
					if lo > hi {
						lo, hi = hi, lo
					}
					if lo != hi && table[lo][hi] {
						table[i][j] = true
						changed = true
						break
					}
				}
			}
		}
	}

	return table
}

func target(d *dfa.DFA, s dfa.StateID, sym dfa.Symbol) int {
	to, ok := d.State(s).Next(sym)
	if !ok {
		return dead
	}
	return int(to)
}

// canonicalClasses partitions [0, n) by uf and assigns each state its new
// class index. Classes with more than one member ("merged") are ordered
// first, by their minimum original member index; singleton classes follow,
// in original index order. order[newIdx] is the class's original member
// list.
func canonicalClasses(uf *unionfind.UnionFind, n int) (classOf []int, order [][]int) {
	members := make(map[int][]int)
	for s := 0; s < n; s++ {
		root := uf.Find(s)
		members[root] = append(members[root], s)
	}

	var merged, singleton [][]int
	for _, ms := range members {
		if len(ms) > 1 {
			merged = append(merged, ms)
		} else {
			singleton = append(singleton, ms)
		}
	}

	sort.Slice(merged, func(i, j int) bool { return merged[i][0] < merged[j][0] })
	sort.Slice(singleton, func(i, j int) bool { return singleton[i][0] < singleton[j][0] })

	order = append(merged, singleton...)

	classOf = make([]int, n)
	for idx, ms := range order {
		for _, s := range ms {
			classOf[s] = idx
		}
	}
	return classOf, order
}

// emit builds the minimized DFA from the equivalence classes computed by
// canonicalClasses.
func emit(d *dfa.DFA, alpha []dfa.Symbol, classOf []int, order [][]int) *dfa.DFA {
	states := make([]dfa.State, len(order))
	var accept []dfa.StateID

	for idx, ms := range order {
		rep := ms[0]
		var trs []dfa.Transition
		for _, sym := range alpha {
			to := target(d, dfa.StateID(rep), sym)
			if to == dead {
				continue
			}
			trs = append(trs, dfa.Transition{Symbol: sym, Target: dfa.StateID(classOf[to])})
		}
		sort.Slice(trs, func(i, j int) bool { return trs[i].Symbol < trs[j].Symbol })
		states[idx] = dfa.NewState(dfa.StateID(idx), trs)

		for _, s := range ms {
			if d.IsAccept(dfa.StateID(s)) {
				accept = append(accept, dfa.StateID(idx))
				break
			}
		}
	}

	sort.Slice(accept, func(i, j int) bool { return accept[i] < accept[j] })
	return dfa.New(states, dfa.StateID(classOf[d.Start()]), accept)
}
