package dashboard

import (
	"reflect"
	"testing"

	"github.com/MrSnakeDoc/mafl/internal/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestMergeWithDefaultsThemeOnly(t *testing.T) {
	doc := &Document{Theme: strPtr("dark")}

	got := mergeWithDefaults(doc, nil)

	want := domain.DefaultConfig()
	want.Theme = "dark"
	want.Services = nil

	if !reflect.DeepEqual(got, want) {
		t.Errorf("mergeWithDefaults() = %+v, want %+v", got, want)
	}
}

func TestMergeWithDefaultsEmptyDocument(t *testing.T) {
	got := mergeWithDefaults(&Document{}, []domain.ServiceGroup{})

	want := domain.DefaultConfig()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("mergeWithDefaults() = %+v, want defaults %+v", got, want)
	}
	if got.Title != "Mafl Home Page" || got.Lang != "en" || got.Theme != "system" {
		t.Errorf("defaults not applied: %+v", got)
	}
	if !got.CheckUpdates {
		t.Error("checkUpdates default should be true")
	}
}

func TestMergeWithDefaultsGridIsRecursive(t *testing.T) {
	doc := &Document{
		Layout: &LayoutDoc{Grid: &GridDoc{Small: intPtr(1), Xlarge: intPtr(6)}},
	}

	got := mergeWithDefaults(doc, nil)

	if got.Layout.Grid.Small != 1 {
		t.Errorf("grid.small = %d, want 1", got.Layout.Grid.Small)
	}
	if got.Layout.Grid.Medium != 2 || got.Layout.Grid.Large != 3 {
		t.Errorf("unset grid fields should keep defaults: %+v", got.Layout.Grid)
	}
	if got.Layout.Grid.Xlarge != 6 {
		t.Errorf("grid.xlarge = %d, want 6", got.Layout.Grid.Xlarge)
	}
}

func TestMergeWithDefaultsExplicitValuesWin(t *testing.T) {
	doc := &Document{
		Title:        strPtr("My Services"),
		Lang:         strPtr("fr"),
		CheckUpdates: boolPtr(false),
		Behaviour:    &BehaviourDoc{Target: strPtr("_self")},
		Tags:         []domain.Tag{{Name: "infra", Color: "green"}},
	}
	groups := []domain.ServiceGroup{{Title: "Infra", Items: []domain.Service{}}}

	got := mergeWithDefaults(doc, groups)

	if got.Title != "My Services" || got.Lang != "fr" {
		t.Errorf("document scalars should win: %+v", got)
	}
	if got.CheckUpdates {
		t.Error("explicit checkUpdates=false should win over default true")
	}
	if got.Behaviour.Target != "_self" {
		t.Errorf("behaviour.target = %q, want _self", got.Behaviour.Target)
	}
	if len(got.Tags) != 1 || got.Tags[0].Name != "infra" {
		t.Errorf("tags not carried: %+v", got.Tags)
	}
	if len(got.Services) != 1 || got.Services[0].Title != "Infra" {
		t.Errorf("services should replace defaults wholesale: %+v", got.Services)
	}
}
