package scenefile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/QPG-MIT/optiverse-sub001/pkg/element"
	"github.com/QPG-MIT/optiverse-sub001/pkg/source"
)

// LoadYAML reads a scene from a YAML file at path. The field set is
// identical to LoadJSON's; the only keys spelled differently are the
// beamsplitter's split_t/split_r (split_T/split_R in JSON).
func LoadYAML(path string) ([]element.OpticalElement, []source.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading scene file: %w", err)
	}
	return DecodeYAML(data)
}

// DecodeYAML parses scene YAML already in memory.
func DecodeYAML(data []byte) ([]element.OpticalElement, []source.Source, error) {
	var doc SceneDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parsing scene YAML: %w", err)
	}
	elements, err := ToElements(doc.Elements)
	if err != nil {
		return nil, nil, err
	}
	return elements, ToSources(doc.Sources), nil
}
