package meta

import (
	"regexp"
	"strings"

	"github.com/stoewer/go-strcase"
)

// memberName is the legal alphabet for member names.
var memberName = regexp.MustCompile(`^\w+$`)

// MemberKind distinguishes the three descriptor kinds sharing a class's
// merged name space.
type MemberKind int

const (
	KindAttribute MemberKind = iota + 1
	KindMethod
	KindConstructor
)

// String returns the string representation of the member kind
func (k MemberKind) String() string {
	switch k {
	case KindAttribute:
		return "attribute"
	case KindMethod:
		return "method"
	case KindConstructor:
		return "constructor"
	default:
		return "unknown"
	}
}

// MemberRef identifies one member in a class's interleaved declaration order.
type MemberRef struct {
	Kind MemberKind
	Name string
}

// Member carries the fields shared by every descriptor kind: the member's
// name, its owning class, a description, a display label, and its visibility.
type Member struct {
	name        string
	owner       string
	description string
	label       string
	visibility  Visibility
}

// newMember validates the shared descriptor fields and applies defaults.
func newMember(owner, name, description, label string, vis Visibility) (Member, error) {
	if name == "" || !memberName.MatchString(name) {
		return Member{}, memberError(ErrInvalidName, owner, name,
			"invalid member name %q: must contain only letters, digits, and underscores", name)
	}
	if vis == 0 {
		vis = DefaultVisibility
	}
	if !vis.Valid() {
		return Member{}, memberError(ErrInvalidEnumValue, owner, name,
			"member %s: invalid visibility %d", name, vis)
	}
	if label == "" {
		label = labelFor(name)
	}
	return Member{
		name:        name,
		owner:       owner,
		description: description,
		label:       label,
		visibility:  vis,
	}, nil
}

// Name returns the member's name, unique within its class.
func (m *Member) Name() string { return m.name }

// Owner returns the name of the class the member was registered on.
func (m *Member) Owner() string { return m.owner }

// Description returns the member's description.
func (m *Member) Description() string { return m.description }

// Label returns the member's display label. When the registration spec left
// it empty, the label is derived from the name ("created_at" -> "Created At").
func (m *Member) Label() string { return m.label }

// Visibility returns the member's declared visibility.
func (m *Member) Visibility() Visibility { return m.visibility }

// labelFor derives a display label from a member or class name.
func labelFor(name string) string {
	words := strings.Split(strcase.SnakeCase(name), "_")
	out := words[:0]
	for _, w := range words {
		if w == "" {
			continue
		}
		out = append(out, strings.ToUpper(w[:1])+w[1:])
	}
	return strings.Join(out, " ")
}
