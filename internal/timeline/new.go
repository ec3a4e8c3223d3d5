package timeline

import "github.com/nguyentantai21042004/quiz-reel/internal/template"

type implAssembler struct {
	layout    Layout
	templates template.Resolver
}

// New creates an Assembler for the given layout and template table.
func New(layout Layout, templates template.Resolver) Assembler {
	return &implAssembler{
		layout:    layout,
		templates: templates,
	}
}
