package dashboard

import "github.com/MrSnakeDoc/mafl/internal/domain"

// mergeWithDefaults lays the document over the default configuration.
// Scalars present in the document win; layout and behaviour merge field by
// field; the normalized groups replace the defaults' services wholesale.
func mergeWithDefaults(doc *Document, groups []domain.ServiceGroup) *domain.CompleteConfig {
	cfg := domain.DefaultConfig()

	if doc.Title != nil {
		cfg.Title = *doc.Title
	}
	if doc.Lang != nil {
		cfg.Lang = *doc.Lang
	}
	if doc.Theme != nil {
		cfg.Theme = *doc.Theme
	}
	if doc.CheckUpdates != nil {
		cfg.CheckUpdates = *doc.CheckUpdates
	}

	if doc.Layout != nil && doc.Layout.Grid != nil {
		grid := doc.Layout.Grid
		if grid.Small != nil {
			cfg.Layout.Grid.Small = *grid.Small
		}
		if grid.Medium != nil {
			cfg.Layout.Grid.Medium = *grid.Medium
		}
		if grid.Large != nil {
			cfg.Layout.Grid.Large = *grid.Large
		}
		if grid.Xlarge != nil {
			cfg.Layout.Grid.Xlarge = *grid.Xlarge
		}
	}

	if doc.Behaviour != nil && doc.Behaviour.Target != nil {
		cfg.Behaviour.Target = *doc.Behaviour.Target
	}

	if doc.Tags != nil {
		cfg.Tags = append([]domain.Tag{}, doc.Tags...)
	}

	cfg.Services = groups
	return cfg
}
