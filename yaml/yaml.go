// Package yaml provides a YAML format for codable trees.
package yaml

import (
	"fmt"

	"github.com/zoobzio/codable"
	"gopkg.in/yaml.v3"
)

const contentType = "application/yaml"

// yamlFormat implements codable.Format for YAML.
type yamlFormat struct{}

// New returns a YAML format. Mapping order is preserved in both directions.
func New() codable.Format {
	return &yamlFormat{}
}

// ContentType returns the MIME type for YAML.
func (f *yamlFormat) ContentType() string {
	return contentType
}

// Marshal encodes n as YAML.
func (f *yamlFormat) Marshal(n *codable.Node) ([]byte, error) {
	out, err := yaml.Marshal(toYAML(n))
	if err != nil {
		return nil, codable.NewFormatError(codable.ErrUnsupported, contentType, "marshal", err)
	}
	return out, nil
}

// Unmarshal decodes YAML data into a tree.
func (f *yamlFormat) Unmarshal(data []byte) (*codable.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, codable.NewFormatError(codable.ErrParse, contentType, "unmarshal", err)
	}
	if doc.Kind == 0 {
		return codable.Null(), nil
	}
	n, err := fromYAML(&doc)
	if err != nil {
		return nil, codable.NewFormatError(codable.ErrUnsupported, contentType, "unmarshal", err)
	}
	return n, nil
}

func toYAML(n *codable.Node) *yaml.Node {
	switch n.Kind() {
	case codable.KindBool:
		b, _ := n.AsBool()
		return scalar("!!bool", fmt.Sprint(b))
	case codable.KindNumber:
		text, _ := n.NumberText()
		if _, ok := n.AsInt(); ok && !hasFraction(text) {
			return scalar("!!int", text)
		}
		return scalar("!!float", text)
	case codable.KindString:
		s, _ := n.AsString()
		return scalar("!!str", s)
	case codable.KindSequence:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i := 0; i < n.Len(); i++ {
			out.Content = append(out.Content, toYAML(n.At(i)))
		}
		return out
	case codable.KindMapping:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for i, k := range n.Keys() {
			out.Content = append(out.Content, scalar("!!str", k), toYAML(n.At(i)))
		}
		return out
	}
	return scalar("!!null", "null")
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func hasFraction(text string) bool {
	for _, c := range text {
		if c == '.' || c == 'e' || c == 'E' {
			return true
		}
	}
	return false
}

func fromYAML(y *yaml.Node) (*codable.Node, error) {
	switch y.Kind {
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return codable.Null(), nil
		}
		return fromYAML(y.Content[0])
	case yaml.AliasNode:
		return fromYAML(y.Alias)
	case yaml.SequenceNode:
		seq := codable.Sequence()
		for _, c := range y.Content {
			v, err := fromYAML(c)
			if err != nil {
				return nil, err
			}
			seq.Append(v)
		}
		return seq, nil
	case yaml.MappingNode:
		m := codable.Mapping()
		for i := 0; i+1 < len(y.Content); i += 2 {
			k := y.Content[i]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key is not a scalar", k.Line)
			}
			v, err := fromYAML(y.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(k.Value, v)
		}
		return m, nil
	case yaml.ScalarNode:
		return fromScalar(y)
	}
	return nil, fmt.Errorf("line %d: unsupported node kind %d", y.Line, y.Kind)
}

func fromScalar(y *yaml.Node) (*codable.Node, error) {
	switch y.ShortTag() {
	case "!!null":
		return codable.Null(), nil
	case "!!bool":
		var b bool
		if err := y.Decode(&b); err != nil {
			return nil, err
		}
		return codable.Bool(b), nil
	case "!!int":
		var i int64
		if err := y.Decode(&i); err == nil {
			return codable.Int(i), nil
		}
		var u uint64
		if err := y.Decode(&u); err != nil {
			return nil, err
		}
		return codable.Uint(u), nil
	case "!!float":
		if n, err := codable.Number(y.Value); err == nil {
			return n, nil
		}
		var f float64
		if err := y.Decode(&f); err != nil {
			return nil, err
		}
		n := codable.Float(f)
		if n == nil {
			return nil, fmt.Errorf("line %d: %s has no JSON form", y.Line, y.Value)
		}
		return n, nil
	}
	return codable.String(y.Value), nil
}
