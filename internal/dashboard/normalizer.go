package dashboard

import (
	"github.com/google/uuid"

	"github.com/MrSnakeDoc/mafl/internal/domain"
)

// Normalizer converts raw service drafts into canonical domain services.
type Normalizer struct {
	newID func() string
}

func NewNormalizer() *Normalizer {
	return &Normalizer{
		newID: uuid.NewString,
	}
}

// Normalize assigns each draft a fresh random identifier and resolves its
// tag references. Identifiers are regenerated on every call; they carry no
// ordering and are not stable across reloads.
func (n *Normalizer) Normalize(drafts []Draft, idx TagIndex) []domain.Service {
	services := make([]domain.Service, 0, len(drafts))
	for _, draft := range drafts {
		tags := make([]domain.Tag, 0, len(draft.Tags))
		for _, ref := range draft.Tags {
			tags = append(tags, ResolveTag(ref, idx))
		}

		services = append(services, domain.Service{
			ID:          n.newID(),
			Title:       draft.Title,
			Description: draft.Description,
			URL:         draft.URL,
			Icon:        draft.Icon,
			Target:      draft.Target,
			Status:      draft.Status,
			Secrets:     draft.Secrets,
			Tags:        tags,
		})
	}
	return services
}

// NormalizeGroups maps every draft group to a canonical group, preserving
// declaration order.
func (n *Normalizer) NormalizeGroups(node ServicesNode, idx TagIndex) []domain.ServiceGroup {
	groups := make([]domain.ServiceGroup, 0, len(node.Groups))
	for _, g := range node.Groups {
		groups = append(groups, domain.ServiceGroup{
			Title: g.Title,
			Items: n.Normalize(g.Items, idx),
		})
	}
	return groups
}
