package templater

import "strings"

// Identity tokens found in the skeleton's template files.
const (
	TokenPackageUnderscored = "@@@package_underscored@@@"
	TokenPackageDotted      = "@@@package_dotted@@@"
	TokenPackageSlashed     = "@@@package_slashed@@@"
	TokenAppName            = "@@@app_name@@@"
)

// Rule replaces every literal occurrence of Token with Value.
type Rule struct {
	Token string
	Value string
}

// Mapping is an ordered set of replacement rules with distinct tokens.
// Values must not contain another rule's token.
type Mapping struct {
	rules []Rule
}

// NewMapping builds a mapping from rules; a repeated token overrides the
// earlier value in its original position.
func NewMapping(rules ...Rule) Mapping {
	var m Mapping
	for _, r := range rules {
		m.Add(r.Token, r.Value)
	}
	return m
}

// Add sets the value for token.
func (m *Mapping) Add(token, value string) {
	for i := range m.rules {
		if m.rules[i].Token == token {
			m.rules[i].Value = value
			return
		}
	}
	m.rules = append(m.rules, Rule{Token: token, Value: value})
}

// Rules returns a copy of the rules in order.
func (m Mapping) Rules() []Rule {
	return append([]Rule(nil), m.rules...)
}

// Len returns the number of rules.
func (m Mapping) Len() int {
	return len(m.rules)
}

// Apply replaces all tokens in text in a single left-to-right pass. Where
// two tokens start at the same position the one added first wins.
func (m Mapping) Apply(text string) string {
	if len(m.rules) == 0 {
		return text
	}
	oldnew := make([]string, 0, 2*len(m.rules))
	for _, r := range m.rules {
		if r.Token == "" {
			continue
		}
		oldnew = append(oldnew, r.Token, r.Value)
	}
	return strings.NewReplacer(oldnew...).Replace(text)
}
