package model

import (
	"fmt"
	"slices"

	"bem-translator/internal/graph"
)

// Closure returns root and every object reachable from it through
// relationships, in discovery order with root first.
func Closure(root *Object) []*Object {
	seen := map[*Object]bool{root: true}
	out := []*Object{root}

	for i := 0; i < len(out); i++ {
		for _, t := range out[i].Targets() {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}

	return out
}

// Extract clones the dependency closure of root into a fresh model. Clones get
// fresh handles and are added so every object follows the objects it relates
// to. It returns the scratch model and the clone of root.
func Extract(root *Object) (*Model, *Object, error) {
	if root == nil {
		return nil, nil, fmt.Errorf("extract: nil root")
	}

	nodes := Closure(root)

	index := make(map[*Object]int, len(nodes))
	for i, o := range nodes {
		index[o] = i
	}

	order, err := graph.TopoSort(len(nodes), func(i int) []int {
		var deps []int
		for _, t := range nodes[i].Targets() {
			deps = append(deps, index[t])
		}

		return deps
	})
	if err != nil {
		return nil, nil, fmt.Errorf("extract %s: %w", root.Description(), err)
	}

	scratch := New()
	clones := make([]*Object, len(nodes))

	for _, i := range order {
		src := nodes[i]

		c, err := NewObject(src.Type(), src.name)
		if err != nil {
			return nil, nil, err
		}

		for k, v := range src.attrs {
			c.attrs[k] = v
		}

		for _, g := range src.groups {
			c.groups = append(c.groups, slices.Clone(g))
		}

		for slot, targets := range src.rels {
			mapped := make([]*Object, len(targets))
			for j, t := range targets {
				mapped[j] = clones[index[t]]
			}

			c.rels[slot] = mapped
		}

		if err := scratch.Add(c); err != nil {
			return nil, nil, fmt.Errorf("extract %s: %w", root.Description(), err)
		}

		clones[i] = c
	}

	return scratch, clones[0], nil
}
