package dashboard

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/mafl/internal/domain"
)

// Document is the raw dashboard declaration as authored in config.yml.
// Every field is optional; defaults are merged in after validation.
type Document struct {
	Title        *string       `yaml:"title"`
	Lang         *string       `yaml:"lang" validate:"omitempty,min=2"`
	Theme        *string       `yaml:"theme" validate:"omitempty,oneof=system light dark"`
	CheckUpdates *bool         `yaml:"checkUpdates"`
	Layout       *LayoutDoc    `yaml:"layout"`
	Behaviour    *BehaviourDoc `yaml:"behaviour"`
	Tags         []domain.Tag  `yaml:"tags" validate:"dive"`
	Services     ServicesNode  `yaml:"services"`
}

type LayoutDoc struct {
	Grid *GridDoc `yaml:"grid"`
}

type GridDoc struct {
	Small  *int `yaml:"small" validate:"omitempty,min=1,max=12"`
	Medium *int `yaml:"medium" validate:"omitempty,min=1,max=12"`
	Large  *int `yaml:"large" validate:"omitempty,min=1,max=12"`
	Xlarge *int `yaml:"xlarge" validate:"omitempty,min=1,max=12"`
}

type BehaviourDoc struct {
	Target *string `yaml:"target" validate:"omitempty,oneof=_blank _self _top _parent"`
}

// Draft is one service declaration before normalization: no id yet, and
// tags may be plain names or inline tag objects.
type Draft struct {
	Title       string            `yaml:"title" validate:"required"`
	URL         string            `yaml:"url" validate:"omitempty,url"`
	Description string            `yaml:"description"`
	Icon        string            `yaml:"icon"`
	Target      string            `yaml:"target" validate:"omitempty,oneof=_blank _self _top _parent"`
	Status      string            `yaml:"status"`
	Secrets     map[string]string `yaml:"secrets"`
	Tags        []TagRef          `yaml:"tags" validate:"dive"`
}

type DraftGroup struct {
	Title string
	Items []Draft `validate:"dive"`
}

// TagRef is either a reference to a declared tag by name or a full inline
// tag object. Exactly one of Name / Tag is set after decoding.
type TagRef struct {
	Name string
	Tag  *domain.Tag
}

func (r *TagRef) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return value.Decode(&r.Name)
	case yaml.MappingNode:
		var tag domain.Tag
		if err := value.Decode(&tag); err != nil {
			return err
		}
		r.Tag = &tag
		return nil
	default:
		return fmt.Errorf("line %d: tag must be a name or a tag object", value.Line)
	}
}

// ServicesNode reconciles the two accepted shapes of the services field:
// a flat sequence (one untitled group) or a mapping of group title to
// sequence (one group per entry, declaration order preserved).
type ServicesNode struct {
	Groups []DraftGroup `validate:"dive"`
}

func (s *ServicesNode) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			return nil
		}
		return fmt.Errorf("line %d: services must be a sequence or a mapping", value.Line)

	case yaml.SequenceNode:
		var items []Draft
		if err := value.Decode(&items); err != nil {
			return err
		}
		s.Groups = []DraftGroup{{Items: items}}
		return nil

	case yaml.MappingNode:
		// Content holds key/value node pairs in document order.
		for i := 0; i+1 < len(value.Content); i += 2 {
			var items []Draft
			if err := value.Content[i+1].Decode(&items); err != nil {
				return err
			}
			s.Groups = append(s.Groups, DraftGroup{
				Title: value.Content[i].Value,
				Items: items,
			})
		}
		return nil

	default:
		return fmt.Errorf("line %d: services must be a sequence or a mapping", value.Line)
	}
}

// parseDocument parses raw bytes into a YAML node. Unparseable or empty
// content yields nil, which downstream treats as the empty document.
func parseDocument(raw []byte) *yaml.Node {
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil
	}
	if node.Kind == 0 {
		return nil
	}
	return &node
}
