package docs

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vango-dev/vango/v2/pkg/vtest"
	"golang.org/x/text/language"

	"github.com/nephio-oran/docsite/internal/releases"
)

func TestResolveSupportStatement_BadgesOnly(t *testing.T) {
	view, err := ResolveSupportStatement(language.English, DensityBadgesOnly, false)
	if err != nil {
		t.Fatalf("ResolveSupportStatement returned error: %v", err)
	}

	wantLabels := []string{"O-RAN", "Go", "Nephio", "kpt"}
	if len(view.Badges) != len(wantLabels) {
		t.Fatalf("expected %d badges, got %d", len(wantLabels), len(view.Badges))
	}
	for i, want := range wantLabels {
		if view.Badges[i].Label != want {
			t.Errorf("badge %d: expected %s, got %s", i, want, view.Badges[i].Label)
		}
	}

	if view.Title != "" || view.Intro != "" {
		t.Error("badges-only must carry no descriptive text")
	}
	if len(view.Descriptions) != 0 || len(view.PolicyNotes) != 0 {
		t.Error("badges-only must carry no descriptions or policy notes")
	}
	if view.LastUpdated != "" {
		t.Errorf("expected no last-updated marker, got %q", view.LastUpdated)
	}
}

func TestSupportRequests_BadgesOnlyAreSmall(t *testing.T) {
	for _, req := range supportRequests(DensityBadgesOnly) {
		if req.Size != SizeSmall {
			t.Errorf("component %s: expected small size, got %s", req.Key, req.Size)
		}
	}
}

func TestResolveSupportStatement_Full(t *testing.T) {
	view, err := ResolveSupportStatement(language.English, DensityFull, true)
	if err != nil {
		t.Fatalf("ResolveSupportStatement returned error: %v", err)
	}

	if view.Title == "" {
		t.Error("full density must have a title")
	}
	if view.Intro == "" {
		t.Error("full density must have an intro sentence")
	}
	if len(view.Badges) != 4 || len(view.Descriptions) != 4 {
		t.Fatalf("expected 4 badge+description pairs, got %d/%d", len(view.Badges), len(view.Descriptions))
	}
	for i, desc := range view.Descriptions {
		if desc == "" {
			t.Errorf("description %d is empty", i)
		}
	}
	if len(view.PolicyNotes) != 2 {
		t.Fatalf("expected 2 policy notes, got %d", len(view.PolicyNotes))
	}
	if view.LastUpdated != releases.LastUpdated {
		t.Errorf("expected last-updated %q, got %q", releases.LastUpdated, view.LastUpdated)
	}
}

func TestResolveSupportStatement_Reproducible(t *testing.T) {
	first, err := ResolveSupportStatement(language.English, DensityFull, true)
	if err != nil {
		t.Fatalf("first resolve returned error: %v", err)
	}
	second, err := ResolveSupportStatement(language.English, DensityFull, true)
	if err != nil {
		t.Fatalf("second resolve returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated resolves produced different views")
	}
}

func TestResolveSupportStatement_InvalidDensity(t *testing.T) {
	_, err := ResolveSupportStatement(language.English, Density(7), false)
	if err == nil {
		t.Fatal("expected error for density outside the enumeration")
	}

	var invalid *InvalidVariantError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidVariantError, got %T: %v", err, err)
	}
}

func TestSupportStatement_Localized(t *testing.T) {
	en, err := ResolveSupportStatement(language.English, DensityCompact, false)
	if err != nil {
		t.Fatalf("english resolve returned error: %v", err)
	}
	zh, err := ResolveSupportStatement(language.TraditionalChinese, DensityCompact, false)
	if err != nil {
		t.Fatalf("zh-Hant resolve returned error: %v", err)
	}
	if en.Title == zh.Title {
		t.Errorf("expected localized titles to differ, both %q", en.Title)
	}
}

func TestSupportStatement_FullMarkup(t *testing.T) {
	node, err := SupportStatement(language.English, DensityFull, true)
	if err != nil {
		t.Fatalf("SupportStatement returned error: %v", err)
	}

	vtest.ExpectAttribute(t, node, "data-density", "full")
	vtest.ExpectElement(t, node, "h2")
	vtest.ExpectContains(t, node, "Supported versions")
	vtest.ExpectContains(t, node, releases.LastUpdated)
	vtest.ExpectContains(t, node, "Nephio")
}

func TestSupportStatement_BadgesOnlyMarkup(t *testing.T) {
	node, err := SupportStatement(language.English, DensityBadgesOnly, false)
	if err != nil {
		t.Fatalf("SupportStatement returned error: %v", err)
	}

	vtest.ExpectAttribute(t, node, "data-density", "badges-only")
	vtest.ExpectNotContains(t, node, "Supported versions")
	vtest.ExpectNotContains(t, node, releases.LastUpdated)
	vtest.ExpectNotContains(t, node, "<h2")
}
