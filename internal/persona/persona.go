// Package persona defines the fixed catalog of simulated Indian car buyers
// and renders the system prompts that put the model in character.
package persona

import "strings"

// Field is one demographics entry. A slice of fields keeps the authoring
// order, which flows into prompts and summary lines.
type Field struct {
	Key   string
	Value string
}

// Persona is a fixed description of a simulated customer archetype.
// Instances are created once at startup and never mutated.
type Persona struct {
	ID                 string
	Name               string
	Label              string
	Demographics       []Field
	Background         string
	KeyConcerns        []string
	PurchaseBehavior   []string
	CommunicationStyle []string
	PainPoints         []string
}

// Demographic returns the value for a demographics key, or "".
func (p Persona) Demographic(key string) string {
	for _, f := range p.Demographics {
		if f.Key == key {
			return f.Value
		}
	}
	return ""
}

/// SummaryLine renders the short card line shown under a persona's name:
// age, location and occupation joined by " | ", absent fields omitted.
func (p Persona) SummaryLine() string {
	var parts []string
	if age := p.Demographic("Age"); age != "" {
		parts = append(parts, "Age "+age)
	}
	if loc := p.Demographic("Location"); loc != "" {
		parts = append(parts, loc)
	}
	if occ := p.Demographic("Occupation"); occ != "" {
		parts = append(parts, occ)
	}
	return strings.Join(parts, " | ")
}

// FirstName returns the persona's given name for chat prompts.
func (p Persona) FirstName() string {
	name, _, _ := strings.Cut(p.Name, " ")
	return name
}

// Initials returns up to two uppercase initials for the avatar badge.
func (p Persona) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(p.Name) {
		b.WriteString(strings.ToUpper(part[:1]))
		if b.Len() == 2 {
			break
		}
	}
	return b.String()
}

// ByID looks up a persona in the catalog. The second return reports
// whether the id is known.
func ByID(id string) (Persona, bool) {
	for _, p := range Catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Persona{}, false
}
