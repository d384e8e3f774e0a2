package regular

import "strings"

// Result is the outcome of checking one type.
type Result struct {
	TypeName  string   `yaml:"type" json:"type"`
	Passed    bool     `yaml:"passed" json:"passed"`
	Violation Property `yaml:"violation,omitempty" json:"violation,omitempty"`
	Message   string   `yaml:"message,omitempty" json:"message,omitempty"`
	Location  Location `yaml:"-" json:"-"`
}

func pass() Result {
	return Result{Passed: true}
}

// fail builds a failed Result whose message starts with the description
// of p, followed by details such as "\n    Failed for: example1".
func fail(p Property, details ...string) Result {
	var b strings.Builder
	b.WriteString(p.Description())
	for _, d := range details {
		b.WriteString(d)
	}
	return Result{Violation: p, Message: b.String()}
}

// Report formats a failed Result the way Expect and Assert print it.
func (r Result) Report() string {
	if r.Passed {
		return ""
	}
	var b strings.Builder
	b.WriteString("Type expected to be regular: '")
	b.WriteString(r.TypeName)
	b.WriteString("'\n  ")
	b.WriteString(r.Message)
	if loc := r.Location.String(); loc != "" {
		b.WriteString("\n  Location: ")
		b.WriteString(loc)
	}
	return b.String()
}
