// Package checkmark keeps the set of words the user flagged as known.
//
// The set is loaded once when the registry opens and written back in full on
// every change. Storage failures never reach the user: a set that cannot be
// loaded starts empty, and a failed write leaves the in-memory set in charge
// for the rest of the process.
package checkmark

import (
	"log"
	"sort"
)

type Store interface {
	Load() (map[string]bool, error)
	Save(map[string]bool) error
}

type Registry struct {
	store Store
	set   map[string]bool
}

func Open(store Store) *Registry {
	r := &Registry{store: store, set: map[string]bool{}}
	set, err := store.Load()
	if err != nil {
		log.Printf("checkmark: load failed, starting empty: %s", err)
		return r
	}
	for id, ok := range set {
		if ok {
			r.set[id] = true
		}
	}
	return r
}

func (r *Registry) IsChecked(id string) bool {
	return r.set[id]
}

// Toggle flips id and reports whether it is checked now.
func (r *Registry) Toggle(id string) bool {
	if r.set[id] {
		delete(r.set, id)
	} else {
		r.set[id] = true
	}
	r.flush()
	return r.set[id]
}

func (r *Registry) Checked() []string {
	ids := make([]string, 0, len(r.set))
	for id := range r.set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (r *Registry) Len() int {
	return len(r.set)
}

// Clear unchecks everything. Unlike Toggle it reports the write error, since
// it only runs from the command line.
func (r *Registry) Clear() error {
	r.set = map[string]bool{}
	return r.store.Save(r.snapshot())
}

func (r *Registry) flush() {
	err := r.store.Save(r.snapshot())
	if err != nil {
		log.Printf("checkmark: save failed, keeping %d in memory: %s", len(r.set), err)
	}
}

func (r *Registry) snapshot() map[string]bool {
	set := make(map[string]bool, len(r.set))
	for id := range r.set {
		set[id] = true
	}
	return set
}
