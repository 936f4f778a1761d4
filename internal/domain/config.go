package domain

// Tag labels a service. Identity is the Name; two tags with the same
// name are the same logical tag regardless of color.
type Tag struct {
	Name  string `json:"name" yaml:"name" validate:"required"`
	Color string `json:"color" yaml:"color"`
}

// Service is the canonical runtime representation of one dashboard entry.
//
// The ID is generated when the raw declaration is normalized and is only
// stable for the lifetime of the process run. Reloading the same document
// produces new IDs.
type Service struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	URL         string            `json:"url"`
	Icon        string            `json:"icon,omitempty"`
	Target      string            `json:"target,omitempty"`
	Status      string            `json:"status,omitempty"`
	Secrets     map[string]string `json:"secrets,omitempty"`
	Tags        []Tag             `json:"tags"`
}

// ServiceGroup is an ordered set of services. Title is empty when the
// source declared a flat list instead of named groups.
type ServiceGroup struct {
	Title string    `json:"title,omitempty"`
	Items []Service `json:"items"`
}

// Grid holds the column count per breakpoint.
type Grid struct {
	Small  int `json:"small"`
	Medium int `json:"medium"`
	Large  int `json:"large"`
	Xlarge int `json:"xlarge"`
}

type Layout struct {
	Grid Grid `json:"grid"`
}

type Behaviour struct {
	Target string `json:"target"`
}

// CompleteConfig is the fully-defaulted dashboard configuration.
//
// Every field carries a value after loading. Error is non-empty only when
// the loader exhausted every fallback tier and had to return defaults.
type CompleteConfig struct {
	Title        string         `json:"title"`
	Lang         string         `json:"lang"`
	Theme        string         `json:"theme"`
	CheckUpdates bool           `json:"checkUpdates"`
	Layout       Layout         `json:"layout"`
	Behaviour    Behaviour      `json:"behaviour"`
	Tags         []Tag          `json:"tags"`
	Services     []ServiceGroup `json:"services"`
	Error        string         `json:"error,omitempty"`
}

// DefaultConfig returns the fixed base configuration. It is both the
// deep-merge base for loaded documents and the last-resort fallback body.
func DefaultConfig() *CompleteConfig {
	return &CompleteConfig{
		Title:        "Mafl Home Page",
		Lang:         "en",
		Theme:        "system",
		CheckUpdates: true,
		Layout: Layout{
			Grid: Grid{Small: 2, Medium: 2, Large: 3, Xlarge: 4},
		},
		Behaviour: Behaviour{Target: "_blank"},
		Tags:      []Tag{},
		Services:  []ServiceGroup{},
	}
}
