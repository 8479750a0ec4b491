package components

import "github.com/yohamta/donburi"

// Ref is a non-owning handle to another entity. A zero Ref points at nothing.
type Ref struct {
	Entity donburi.Entity
	Set    bool
}

func RefTo(e donburi.Entity) Ref {
	return Ref{Entity: e, Set: true}
}

// Resolve returns the referenced entry if it is still alive.
func (r Ref) Resolve(w donburi.World) (*donburi.Entry, bool) {
	if !r.Set || !w.Valid(r.Entity) {
		return nil, false
	}
	return w.Entry(r.Entity), true
}
