package formvalidate

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseRuleSet reads a rule set from a YAML or JSON document shaped as
//
//	name:
//	  required: true
//	  minlength: 3
//	  label: name
//	email:
//	  email: true
//	  label: email address
//
// Fields and rules keep the order in which they appear in the document.
// An empty document yields an empty rule set.
func ParseRuleSet(b []byte) (RuleSet, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse rule set: %w", err)
	}
	if len(doc.Content) == 0 {
		return RuleSet{}, nil
	}

	root := resolve(doc.Content[0])
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return RuleSet{}, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse rule set: line %d: expected a mapping of fields", root.Line)
	}

	rs := make(RuleSet, 0, len(root.Content)/2)
	seen := make(map[string]bool, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], resolve(root.Content[i+1])
		if seen[key.Value] {
			return nil, fmt.Errorf("parse rule set: line %d: duplicate field %q", key.Line, key.Value)
		}
		seen[key.Value] = true

		fr, err := parseFieldRules(key.Value, val)
		if err != nil {
			return nil, fmt.Errorf("parse rule set: %w", err)
		}
		rs = append(rs, fr)
	}
	return rs, nil
}

// LoadRuleSet reads r fully and parses it with [ParseRuleSet].
func LoadRuleSet(r io.Reader) (RuleSet, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read rule set: %w", err)
	}
	return ParseRuleSet(b)
}

func parseFieldRules(name string, n *yaml.Node) (*FieldRules, error) {
	fr := &FieldRules{Name: name}
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return fr, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: field %q: expected a mapping of rules", n.Line, name)
	}

	seen := make(map[string]bool, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], resolve(n.Content[i+1])
		if seen[key.Value] {
			return nil, fmt.Errorf("line %d: field %q: duplicate rule %q", key.Line, name, key.Value)
		}
		seen[key.Value] = true

		if val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: field %q: rule %q must have a scalar condition", val.Line, name, key.Value)
		}
		if key.Value == labelKey {
			fr.Label = val.Value
			continue
		}
		var cond any
		if err := val.Decode(&cond); err != nil {
			return nil, fmt.Errorf("line %d: field %q: rule %q: %w", val.Line, name, key.Value, err)
		}
		fr.Rules = append(fr.Rules, Rule{Name: key.Value, Condition: cond})
	}
	return fr, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
