package parameters

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads the parameters document at path and returns the validated
// Config. Any violation yields a *ConfigError listing every issue found.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		if configErr, ok := err.(*ConfigError); ok {
			configErr.Source = path
		}
		return nil, err
	}
	slog.Default().Debug("loaded parameters",
		slog.String("path", path),
		slog.String("sub_hierarchy", string(cfg.Subassembly.Hierarchy)),
		slog.String("shear_formulation", string(cfg.Elements.ShearFormulation)),
	)
	return cfg, nil
}

// Parse validates a parameters document held in memory.
func Parse(data []byte) (*Config, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &ConfigError{Issues: []Issue{{
			Kind:    KindParse,
			Message: err.Error(),
		}}}
	}

	doc := documentNode(&root)
	checker := shapeChecker{}
	checker.walk(configType, doc, "")
	for _, key := range checker.unknown {
		slog.Default().Warn("ignoring unknown key in parameters document", slog.String("path", key))
	}

	var cfg Config
	var decodeErr error
	if doc != nil && doc.Kind == yaml.MappingNode {
		decodeErr = doc.Decode(&cfg)
	}
	if decodeErr != nil {
		// A TypeError leaves the other fields decoded; anything else stops
		// the decoder part way and the partial Config cannot be validated.
		var typeErr *yaml.TypeError
		if len(checker.issues) == 0 {
			return nil, &ConfigError{Issues: []Issue{{
				Kind:    KindParse,
				Message: decodeErr.Error(),
			}}}
		}
		if !errors.As(decodeErr, &typeErr) {
			return nil, &ConfigError{Issues: checker.issues}
		}
	}

	findings, err := validateConfig(&cfg)
	if err != nil {
		return nil, fmt.Errorf("validateConfig() > %w", err)
	}

	issues := checker.issues
	for _, f := range findings {
		if !checker.covers(f.scope) {
			issues = append(issues, f.issue)
		}
	}
	if len(issues) > 0 {
		return nil, &ConfigError{Issues: issues}
	}
	return &cfg, nil
}

var (
	configType        = reflect.TypeOf(Config{})
	optionalFloatType = reflect.TypeOf(OptionalFloat{})
)

const rootPath = "(document)"

func documentNode(root *yaml.Node) *yaml.Node {
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil
		}
		return resolveAlias(root.Content[0])
	}
	if root.Kind == 0 {
		return nil
	}
	return resolveAlias(root)
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// shapeChecker walks the Config type alongside the YAML node tree and
// reports absent keys and values of the wrong kind before decoding, where
// the decoder would otherwise coerce or silently zero them.
type shapeChecker struct {
	issues  []Issue
	failed  []string
	unknown []string
}

func (c *shapeChecker) walk(t reflect.Type, node *yaml.Node, p string) {
	if node == nil || isNull(node) {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if field.Type != optionalFloatType {
				c.missing(join(p, yamlName(field)))
			}
		}
		return
	}
	if node.Kind != yaml.MappingNode {
		c.mismatch(p, node, "a mapping")
		return
	}

	values, keys := c.entries(node, p)
	known := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := yamlName(field)
		known[name] = true
		c.check(field.Type, values[name], join(p, name))
	}
	for _, key := range keys {
		if !known[key] {
			c.unknown = append(c.unknown, join(p, key))
		}
	}
}

// entries returns the effective keys of a mapping with merge keys (<<)
// expanded. Explicit keys override merged ones, and within a merged
// sequence the first mapping wins.
func (c *shapeChecker) entries(node *yaml.Node, p string) (map[string]*yaml.Node, []string) {
	values := make(map[string]*yaml.Node, len(node.Content)/2)
	var keys []string
	var merged []*yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], resolveAlias(node.Content[i+1])
		if isMergeKey(key) {
			merged = append(merged, value)
			continue
		}
		if _, ok := values[key.Value]; ok {
			c.duplicate(join(p, key.Value), key)
			continue
		}
		values[key.Value] = value
		keys = append(keys, key.Value)
	}

	for _, value := range merged {
		sources := []*yaml.Node{value}
		if value != nil && value.Kind == yaml.SequenceNode {
			sources = value.Content
		}
		for _, source := range sources {
			source = resolveAlias(source)
			if source == nil || source.Kind != yaml.MappingNode {
				c.badMerge(p, value)
				continue
			}
			inner, innerKeys := c.entries(source, p)
			for _, key := range innerKeys {
				if _, ok := values[key]; !ok {
					values[key] = inner[key]
					keys = append(keys, key)
				}
			}
		}
	}
	return values, keys
}

func (c *shapeChecker) check(t reflect.Type, node *yaml.Node, p string) {
	if t == optionalFloatType {
		if node == nil || isNull(node) {
			return
		}
		if !isNumber(node) {
			c.mismatch(p, node, "a finite number or null")
		}
		return
	}
	if node == nil || isNull(node) {
		c.missing(p)
		return
	}

	switch t.Kind() {
	case reflect.Struct:
		c.walk(t, node, p)
	case reflect.Float64:
		if !isNumber(node) {
			c.mismatch(p, node, "a finite number")
		}
	case reflect.Bool:
		if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!bool" {
			c.mismatch(p, node, "a boolean (true or false)")
		}
	case reflect.String:
		if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
			c.mismatch(p, node, "a string")
		}
	}
}

func (c *shapeChecker) missing(p string) {
	c.failed = append(c.failed, p)
	c.issues = append(c.issues, Issue{
		Kind:    KindMissingField,
		Path:    p,
		Message: fmt.Sprintf("%s is required", p),
	})
}

func (c *shapeChecker) mismatch(p string, node *yaml.Node, want string) {
	if p == "" {
		p = rootPath
	}
	c.failed = append(c.failed, p)
	c.issues = append(c.issues, Issue{
		Kind:    KindTypeMismatch,
		Path:    p,
		Value:   describeValue(node),
		Message: fmt.Sprintf("%s = %s must be %s, found %s", p, describeValue(node), want, describeKind(node)),
	})
}

func (c *shapeChecker) duplicate(p string, key *yaml.Node) {
	c.failed = append(c.failed, p)
	c.issues = append(c.issues, Issue{
		Kind:    KindParse,
		Path:    p,
		Message: fmt.Sprintf("%s is defined more than once (line %d)", p, key.Line),
	})
}

func (c *shapeChecker) badMerge(p string, value *yaml.Node) {
	if p == "" {
		p = rootPath
	}
	c.failed = append(c.failed, p)
	c.issues = append(c.issues, Issue{
		Kind:    KindParse,
		Path:    p,
		Message: fmt.Sprintf("%s: a merge key (<<) needs a mapping or a sequence of mappings, found %s", p, describeKind(value)),
	})
}

// covers reports whether any path in scope overlaps a path that already
// failed the shape check.
func (c *shapeChecker) covers(scope []string) bool {
	for _, failed := range c.failed {
		if failed == rootPath {
			return true
		}
		for _, s := range scope {
			if s == failed || strings.HasPrefix(s, failed+".") || strings.HasPrefix(failed, s+".") {
				return true
			}
		}
	}
	return false
}

func isMergeKey(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!merge"
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func isNumber(n *yaml.Node) bool {
	if n.Kind != yaml.ScalarNode {
		return false
	}
	switch n.ShortTag() {
	case "!!int":
		return true
	case "!!float":
		var v float64
		if err := n.Decode(&v); err != nil {
			return false
		}
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	}
	return false
}

func describeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "a mapping"
	case yaml.SequenceNode:
		return "a sequence"
	}
	switch n.ShortTag() {
	case "!!str":
		return "a string"
	case "!!int", "!!float":
		return "a number"
	case "!!bool":
		return "a boolean"
	case "!!null":
		return "null"
	}
	return n.ShortTag()
}

func describeValue(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "{...}"
	case yaml.SequenceNode:
		return "[...]"
	}
	if n.ShortTag() == "!!str" {
		return fmt.Sprintf("%q", n.Value)
	}
	return n.Value
}

func yamlName(field reflect.StructField) string {
	return strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
}

func join(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
