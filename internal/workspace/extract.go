package workspace

import (
	"fmt"

	"bem-translator/internal/graph"
)

// Closure returns rec and every record it reaches through resolvable
// reference fields, in discovery order with rec first.
func (ws *Workspace) Closure(rec *Record) []*Record {
	seen := map[*Record]bool{rec: true}
	out := []*Record{rec}

	for i := 0; i < len(out); i++ {
		for _, target := range ws.targets(out[i]) {
			if !seen[target] {
				seen[target] = true
				out = append(out, target)
			}
		}
	}

	return out
}

// Extract copies the reference closure of rec into a fresh Workspace over
// the same catalog. Referenced records are added before the records naming
// them. It returns the scratch Workspace and the copy of rec.
func (ws *Workspace) Extract(rec *Record) (*Workspace, *Record, error) {
	nodes := ws.Closure(rec)

	index := make(map[*Record]int, len(nodes))
	for i, r := range nodes {
		index[r] = i
	}

	order, err := graph.TopoSort(len(nodes), func(i int) []int {
		var deps []int
		for _, t := range ws.targets(nodes[i]) {
			deps = append(deps, index[t])
		}

		return deps
	})
	if err != nil {
		return nil, nil, fmt.Errorf("extract %s: %w", rec.Description(), err)
	}

	scratch := New(ws.catalog)
	copies := make([]*Record, len(nodes))

	for _, i := range order {
		c := nodes[i].clone()
		if err := scratch.Add(c); err != nil {
			return nil, nil, fmt.Errorf("extract %s: %w", rec.Description(), err)
		}

		copies[i] = c
	}

	return scratch, copies[0], nil
}

func (ws *Workspace) targets(rec *Record) []*Record {
	var out []*Record

	for _, ref := range rec.References() {
		if target, ok := ws.LookupAny(ref.Name, ref.Field.Refs...); ok {
			out = append(out, target)
		}
	}

	return out
}
