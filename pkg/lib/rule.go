package lib

import (
	"regexp"
	"strings"

	"github.com/pg-sharding/nullscan/pkg/plan"
)

// Rule decides whether the walk stack matches a pattern. Cost returns -1 when
// it does not, otherwise the length of the matched stack suffix: the larger,
// the more specific the match.
type Rule interface {
	Name() string
	Cost(stack []plan.Node) int
}

const nameSep = "%"

// RuleRegExp matches a regular expression against operator names of the
// stack, e.g. "TS%.*FIL%". The match always ends at the current node; the
// shortest matching suffix is used.
type RuleRegExp struct {
	name    string
	pattern *regexp.Regexp
}

var _ Rule = &RuleRegExp{}

func NewRuleRegExp(name, pattern string) (*RuleRegExp, error) {
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, err
	}
	return &RuleRegExp{name: name, pattern: re}, nil
}

func MustRuleRegExp(name, pattern string) *RuleRegExp {
	r, err := NewRuleRegExp(name, pattern)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *RuleRegExp) Name() string {
	return r.name
}

func (r *RuleRegExp) Cost(stack []plan.Node) int {
	suffix := ""
	for i := len(stack) - 1; i >= 0; i-- {
		suffix = stack[i].Name() + nameSep + suffix
		if r.pattern.MatchString(suffix) {
			return len(suffix)
		}
	}
	return -1
}

// RuleExactPath matches when the stack ends with exactly the given operator names.
type RuleExactPath struct {
	name  string
	names []string
}

var _ Rule = &RuleExactPath{}

func NewRuleExactPath(name string, names ...string) *RuleExactPath {
	return &RuleExactPath{name: name, names: names}
}

func (r *RuleExactPath) Name() string {
	return r.name
}

func (r *RuleExactPath) Cost(stack []plan.Node) int {
	if len(r.names) == 0 || len(stack) < len(r.names) {
		return -1
	}
	tail := stack[len(stack)-len(r.names):]
	for i, nd := range tail {
		if nd.Name() != r.names[i] {
			return -1
		}
	}
	return len(strings.Join(r.names, nameSep) + nameSep)
}

// RuleKind matches the current node by kind only.
type RuleKind struct {
	name string
	kind plan.OperatorKind
}

var _ Rule = &RuleKind{}

func NewRuleKind(name string, kind plan.OperatorKind) *RuleKind {
	return &RuleKind{name: name, kind: kind}
}

func (r *RuleKind) Name() string {
	return r.name
}

func (r *RuleKind) Cost(stack []plan.Node) int {
	if len(stack) == 0 || stack[len(stack)-1].Kind() != r.kind {
		return -1
	}
	return len(r.kind.String() + nameSep)
}
