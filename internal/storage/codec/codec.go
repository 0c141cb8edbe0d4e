// Package codec holds the textual encodings planner collections are stored in.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
)

const (
	NameJSON = "json"
	NameYAML = "yaml"
)

var ErrUnknownCodec = errors.New("unknown codec")

type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

func ByName(name string) (Codec, error) {
	switch name {
	case NameJSON, "":
		return JSON{}, nil
	case NameYAML:
		return YAML{}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
}

type JSON struct{}

func (JSON) Name() string { return NameJSON }

func (JSON) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}

	return data, nil
}

func (JSON) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}

	return nil
}

type YAML struct{}

func (YAML) Name() string { return NameYAML }

func (YAML) Marshal(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}

	return data, nil
}

func (YAML) Unmarshal(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yaml unmarshal: %w", err)
	}

	return nil
}
