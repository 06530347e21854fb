package workspace

import "fmt"

// Dangling is a reference field naming a record that does not exist among
// the field's target types.
type Dangling struct {
	Record   *Record
	Field    string
	Position int
	Name     string
}

func (d Dangling) String() string {
	return fmt.Sprintf("%s: %s (field %d) names missing record %q", d.Record.Description(), d.Field, d.Position, d.Name)
}

// CheckReferences returns every dangling reference in ws, in record order.
func CheckReferences(ws *Workspace) []Dangling {
	var out []Dangling

	for _, rec := range ws.records {
		for _, ref := range rec.References() {
			if _, ok := ws.LookupAny(ref.Name, ref.Field.Refs...); ok {
				continue
			}

			out = append(out, Dangling{
				Record:   rec,
				Field:    ref.Field.Name,
				Position: ref.Position,
				Name:     ref.Name,
			})
		}
	}

	return out
}
