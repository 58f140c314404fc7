package assoc

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrNotMapping is returned by FromYAML when the document root is not a
// mapping.
var ErrNotMapping = errors.New("association document must be a mapping")

// FromYAML parses a YAML mapping into an Association, keeping the document
// order of the top-level keys. An empty document yields an empty Association.
func FromYAML(data []byte) (*Association, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse association")
	}

	if len(doc.Content) == 0 {
		return Empty(), nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}

	kvs := make([]KeyValue, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		var value any
		if err := root.Content[i+1].Decode(&value); err != nil {
			return nil, errors.Wrapf(err, "failed to decode key %q", root.Content[i].Value)
		}
		kvs = append(kvs, KV(root.Content[i].Value, value))
	}

	return Of(kvs...), nil
}

// Decode decodes the whole association into target, which must be a pointer
// to a struct or a map. Field names are matched by their `mapstructure` tag.
func Decode(a *Association, target any) error {
	return decode(a.Map(), target)
}

// DecodeKey decodes the value stored under key into target. It reports false
// when the key is absent, leaving target untouched.
func DecodeKey(a *Association, key string, target any) (bool, error) {
	value, ok := a.Get(key)
	if !ok {
		return false, nil
	}

	if err := decode(value, target); err != nil {
		return true, errors.Wrapf(err, "failed to decode key %q", key)
	}

	return true, nil
}

func decode(input, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return decoder.Decode(input)
}
