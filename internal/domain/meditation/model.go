// Package meditation describes the catalog of practice types a record can be
// logged against. The catalog is owned externally: it is fetched from the
// server when possible and falls back to the built-in defaults offline.
package meditation

import "errors"

var ErrNotFound = errors.New("meditation not found")

// Meditation is a named category of loggable practice.
type Meditation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Defaults returns the built-in ngöndro catalog used when the server catalog
// is unavailable.
func Defaults() []Meditation {
	return []Meditation{
		{ID: "prostrations", Name: "Prostrations"},
		{ID: "diamond-mind", Name: "Diamond Mind"},
		{ID: "mandala", Name: "Mandala"},
		{ID: "guru-yoga", Name: "Guru Yoga"},
	}
}

// Find looks a meditation up by id.
func Find(list []Meditation, id string) (Meditation, error) {
	for _, m := range list {
		if m.ID == id {
			return m, nil
		}
	}
	return Meditation{}, ErrNotFound
}
