// Package doctor provides diagnostic output for debugging Bailey.
package doctor

import "io"

// Section is one block of a diagnostic report.
type Section interface {
	// Name returns the heading shown above the section, such as
	// "Container Runtime".
	Name() string

	// Print writes the section's diagnostics to w. Sensitive values
	// (tokens, keys) must never be written.
	Print(w io.Writer) error
}

// Registry holds sections in presentation order.
type Registry struct {
	sections []Section
}

// NewRegistry creates a registry holding the given sections.
func NewRegistry(sections ...Section) *Registry {
	return &Registry{sections: sections}
}

// Register appends a section to the report.
func (r *Registry) Register(s Section) {
	r.sections = append(r.sections, s)
}

// Sections returns the registered sections in order.
func (r *Registry) Sections() []Section {
	return r.sections
}
