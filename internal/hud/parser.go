package hud

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Node variant tags as they appear in layout documents.
const (
	tagContainer = "container"
	tagLabel     = "label"
	tagImage     = "image"
	tagButton    = "button"
)

// containerBody is the YAML payload of a Container node.
type containerBody struct {
	Transform  Transform `yaml:"transform"`
	Background *Visual   `yaml:"background,omitempty"`
	Children   []*Node   `yaml:"children,omitempty"`
}

// labelBody is the YAML payload of a Label node.
type labelBody struct {
	Transform Transform `yaml:"transform"`
	Text      *Text     `yaml:"text"`
}

// imageBody is the YAML payload of an Image node.
type imageBody struct {
	Transform Transform `yaml:"transform"`
	Image     *Visual   `yaml:"image"`
}

// buttonBody is the YAML payload of a Button node.
type buttonBody struct {
	Transform  Transform `yaml:"transform"`
	Background *Visual   `yaml:"background,omitempty"`
	Text       *Text     `yaml:"text"`
}

// UnmarshalYAML decodes a node from its tagged form: a mapping with exactly
// one key naming the variant (container, label, image, button) whose value
// holds the variant's fields.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return fmt.Errorf("layout node must be a mapping with a single variant tag (line %d)", value.Line)
	}

	tag := value.Content[0].Value
	body := value.Content[1]

	switch strings.ToLower(tag) {
	case tagContainer:
		var b containerBody
		if err := body.Decode(&b); err != nil {
			return fmt.Errorf("container node (line %d): %w", value.Line, err)
		}
		*n = Node{Kind: KindContainer, Transform: b.Transform, Background: b.Background, Children: b.Children}
	case tagLabel:
		var b labelBody
		if err := body.Decode(&b); err != nil {
			return fmt.Errorf("label node (line %d): %w", value.Line, err)
		}
		*n = Node{Kind: KindLabel, Transform: b.Transform, Text: b.Text}
	case tagImage:
		var b imageBody
		if err := body.Decode(&b); err != nil {
			return fmt.Errorf("image node (line %d): %w", value.Line, err)
		}
		*n = Node{Kind: KindImage, Transform: b.Transform, Image: b.Image}
	case tagButton:
		var b buttonBody
		if err := body.Decode(&b); err != nil {
			return fmt.Errorf("button node (line %d): %w", value.Line, err)
		}
		*n = Node{Kind: KindButton, Transform: b.Transform, Background: b.Background, Text: b.Text}
	default:
		return fmt.Errorf("unknown node variant %q (line %d)", tag, value.Line)
	}

	return nil
}

// MarshalYAML encodes a node back into its tagged form. Together with
// UnmarshalYAML this gives round-trip equivalence: encoding a document and
// parsing it again yields the same tree.
func (n *Node) MarshalYAML() (interface{}, error) {
	switch n.Kind {
	case KindContainer:
		return map[string]containerBody{
			tagContainer: {Transform: n.Transform, Background: n.Background, Children: n.Children},
		}, nil
	case KindLabel:
		return map[string]labelBody{
			tagLabel: {Transform: n.Transform, Text: n.Text},
		}, nil
	case KindImage:
		return map[string]imageBody{
			tagImage: {Transform: n.Transform, Image: n.Image},
		}, nil
	case KindButton:
		return map[string]buttonBody{
			tagButton: {Transform: n.Transform, Background: n.Background, Text: n.Text},
		}, nil
	default:
		return nil, fmt.Errorf("cannot encode node with unknown kind %q", n.Kind)
	}
}

// Parse decodes a layout document from YAML bytes and validates it.
func Parse(data []byte) (*Document, error) {
	var root Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse layout document: %w", err)
	}

	doc := &Document{Root: &root}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("layout document validation failed: %w", err)
	}

	return doc, nil
}

// Load reads a layout document from a YAML file and validates it.
//
// Example:
//
//	doc, err := hud.Load("assets/ui/hud.yaml")
//	if err != nil {
//	    log.Fatalf("Failed to load HUD layout: %v", err)
//	}
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file '%s': %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("layout file '%s': %w", path, err)
	}

	return doc, nil
}

// Encode serializes the document back to YAML.
func (d *Document) Encode() ([]byte, error) {
	if d.Root == nil {
		return nil, fmt.Errorf("cannot encode document without a root node")
	}

	data, err := yaml.Marshal(d.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to encode layout document: %w", err)
	}

	return data, nil
}
