package target

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LoadOptions reads diagram options from the YAML file at path. Keys not
// present in the file keep their value from DefaultOptions.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options: %w", err)
	}
	opts, err := ParseOptions(data)
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// ParseOptions decodes YAML options over DefaultOptions. Unknown keys are
// an error. The result is validated.
//
//	axismax: 5
//	equalaxes: off
//	markerlabel: [A, B, C]
//	markercolors: {edge: b, face: c}
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("parse options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// UnmarshalYAML accepts on/off in any letter case and YAML booleans.
func (o *OnOff) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w: on/off expected", value.Line, ErrInvalidOption)
	}
	if b, err := strconv.ParseBool(value.Value); err == nil {
		*o = OnOff(b)
		return nil
	}
	v, err := ParseOnOff(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*o = v
	return nil
}

// MarshalYAML writes the switch as "on" or "off".
func (o OnOff) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// UnmarshalYAML decodes a sequence of texts to ordered labels and a
// mapping of text to color to category labels. The order of the mapping
// is kept. An empty value means no labels.
func (l *LabelSource) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var texts []string
		if err := value.Decode(&texts); err != nil {
			return err
		}
		*l = Ordered(texts...)
		return nil
	case yaml.MappingNode:
		cats := make([]Category, 0, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			k, v := value.Content[i], value.Content[i+1]
			if v.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: %w: color of category %q must be a string",
					v.Line, ErrInvalidOption, k.Value)
			}
			cats = append(cats, Category{Text: k.Value, Color: v.Value})
		}
		*l = Categories(cats...)
		return nil
	case yaml.ScalarNode:
		if value.Tag == "!!null" || value.Value == "" {
			*l = LabelSource{}
			return nil
		}
	}
	return fmt.Errorf("line %d: %w: markerlabel must be a list or a mapping",
		value.Line, ErrInvalidOption)
}

// MarshalYAML is the inverse of UnmarshalYAML.
func (l LabelSource) MarshalYAML() (interface{}, error) {
	switch l.kind {
	case OrderedLabels:
		return l.texts, nil
	case CategoryLabels:
		n := &yaml.Node{Kind: yaml.MappingNode}
		for _, c := range l.categories {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: c.Text},
				&yaml.Node{Kind: yaml.ScalarNode, Value: c.Color})
		}
		return n, nil
	}
	return nil, nil
}
