package diag

import "strconv"

// Code identifies a diagnostic template.
type Code uint16

const (
	UnknownCode Code = 0

	// Generic
	ActualIsNil Code = 1

	// Byte sequences
	ShouldHaveLength        Code = 100
	ContentsShouldBeEqualTo Code = 101
	ContentsShouldContain   Code = 102

	// Ordering
	ShouldBeAfter           Code = 200
	ShouldBeAfterOrEqualTo  Code = 201
	ShouldBeBefore          Code = 202
	ShouldBeBeforeOrEqualTo Code = 203
	ShouldBeEqual           Code = 204

	// Numbers
	ShouldBeGreater        Code = 300
	ShouldBeGreaterOrEqual Code = 301
	ShouldBeLess           Code = 302
	ShouldBeLessOrEqual    Code = 303
)

type template struct {
	name  string
	text  string
	arity int
}

var templates = map[Code]template{
	ActualIsNil: {
		name: "ActualIsNil",
		text: "%nExpecting actual not to be nil",
	},
	ShouldHaveLength: {
		name:  "ShouldHaveLength",
		text:  "%nExpected%n  <%s>%nto have length%n  <%s>%nbut was%n  <%s>%n",
		arity: 3,
	},
	ContentsShouldBeEqualTo: {
		name:  "ContentsShouldBeEqualTo",
		text:  "%nExpecting contents of:%n  <%s>%nto be equal to:%n  <%s>%nbut was not.",
		arity: 2,
	},
	ContentsShouldContain: {
		name:  "ContentsShouldContain",
		text:  "%nExpecting contents of:%n  <%s>%nto contain:%n  <%s>%nbut did not.",
		arity: 2,
	},
	ShouldBeAfter: {
		name:  "ShouldBeAfter",
		text:  "%nExpecting:%n  <%s>%nto be strictly after:%n  <%s>",
		arity: 2,
	},
	ShouldBeAfterOrEqualTo: {
		name:  "ShouldBeAfterOrEqualTo",
		text:  "%nExpecting:%n  <%s>%nto be after or equals to:%n  <%s>",
		arity: 2,
	},
	ShouldBeBefore: {
		name:  "ShouldBeBefore",
		text:  "%nExpecting:%n  <%s>%nto be strictly before:%n  <%s>",
		arity: 2,
	},
	ShouldBeBeforeOrEqualTo: {
		name:  "ShouldBeBeforeOrEqualTo",
		text:  "%nExpecting:%n  <%s>%nto be before or equals to:%n  <%s>",
		arity: 2,
	},
	ShouldBeEqual: {
		name:  "ShouldBeEqual",
		text:  "%nExpecting:%n  <%s>%nto be equal to:%n  <%s>%nbut was not.",
		arity: 2,
	},
	ShouldBeGreater: {
		name:  "ShouldBeGreater",
		text:  "%nExpecting:%n  <%s>%nto be greater than:%n  <%s>",
		arity: 2,
	},
	ShouldBeGreaterOrEqual: {
		name:  "ShouldBeGreaterOrEqual",
		text:  "%nExpecting:%n  <%s>%nto be greater than or equal to:%n  <%s>",
		arity: 2,
	},
	ShouldBeLess: {
		name:  "ShouldBeLess",
		text:  "%nExpecting:%n  <%s>%nto be less than:%n  <%s>",
		arity: 2,
	},
	ShouldBeLessOrEqual: {
		name:  "ShouldBeLessOrEqual",
		text:  "%nExpecting:%n  <%s>%nto be less than or equal to:%n  <%s>",
		arity: 2,
	},
}

// String returns the template name, e.g. "ShouldBeAfterOrEqualTo".
func (c Code) String() string {
	if t, ok := templates[c]; ok {
		return t.name
	}

	return "Code(" + strconv.Itoa(int(c)) + ")"
}

// Template returns the raw template text, or "" for an unknown code.
func (c Code) Template() string {
	return templates[c].text
}

// Arity returns the number of values the template expects.
func (c Code) Arity() int {
	return templates[c].arity
}

// Codes returns every known code in ascending order.
func Codes() []Code {
	return []Code{
		ActualIsNil,
		ShouldHaveLength,
		ContentsShouldBeEqualTo,
		ContentsShouldContain,
		ShouldBeAfter,
		ShouldBeAfterOrEqualTo,
		ShouldBeBefore,
		ShouldBeBeforeOrEqualTo,
		ShouldBeEqual,
		ShouldBeGreater,
		ShouldBeGreaterOrEqual,
		ShouldBeLess,
		ShouldBeLessOrEqual,
	}
}
