// Package template maps template ids to background color schemes.
//
// The canonical table has ids 1-5. Unknown ids resolve to template 1.
package template

import (
	"sort"

	"github.com/nguyentantai21042004/quiz-reel/internal/models"
)

const DefaultID = 1

var table = map[int]struct {
	name string
	hex  string
}{
	1: {"blue", "#1e3a8a"},
	2: {"purple", "#7c3aed"},
	3: {"green", "#059669"},
	4: {"red", "#dc2626"},
	5: {"orange", "#ea580c"},
}

// Resolver looks up templates by id.
type Resolver interface {
	Resolve(id int) models.Template
	All() []models.Template
}

type implResolver struct {
	templates map[int]models.Template
}

// New builds a Resolver over the canonical table.
func New() Resolver {
	templates := make(map[int]models.Template, len(table))
	for id, t := range table {
		bg, err := models.ParseHex(t.hex)
		if err != nil {
			panic(err)
		}
		templates[id] = models.Template{ID: id, Name: t.name, Background: bg}
	}
	return &implResolver{templates: templates}
}

func (r *implResolver) Resolve(id int) models.Template {
	if t, ok := r.templates[id]; ok {
		return t
	}
	return r.templates[DefaultID]
}

func (r *implResolver) All() []models.Template {
	out := make([]models.Template, 0, len(r.templates))
	for _, t := range r.templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}
