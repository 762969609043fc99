package docs

import (
	"errors"
	"testing"

	"github.com/vango-dev/vango/v2/pkg/vtest"

	"github.com/nephio-oran/docsite/internal/releases"
)

func TestResolveBadge_UsesRegistryVersion(t *testing.T) {
	badge, err := ResolveBadge(NewBadgeRequest(releases.Runtime))
	if err != nil {
		t.Fatalf("ResolveBadge returned error: %v", err)
	}

	want := releases.MustResolve(releases.Runtime)
	if badge.Version != want {
		t.Errorf("expected registry version %q, got %q", want, badge.Version)
	}
	if badge.Label != "Go" {
		t.Errorf("expected label Go, got %q", badge.Label)
	}
	if badge.Icon == "" {
		t.Error("expected icon to be populated by default")
	}
}

func TestResolveBadge_OverrideWins(t *testing.T) {
	req := NewBadgeRequest(releases.Runtime)
	req.VersionOverride = "9.9.9"

	badge, err := ResolveBadge(req)
	if err != nil {
		t.Fatalf("ResolveBadge returned error: %v", err)
	}
	if badge.Version != "9.9.9" {
		t.Errorf("expected override 9.9.9, got %q", badge.Version)
	}
}

func TestResolveBadge_IconSuppressedAcrossPresentation(t *testing.T) {
	// ShowIcon=false must leave Icon empty for every variant and size.
	for variant := VariantDefault; variant < numVariants; variant++ {
		for size := SizeSmall; size < numSizes; size++ {
			req := NewBadgeRequest(releases.Runtime)
			req.Variant = variant
			req.Size = size
			req.ShowIcon = false

			badge, err := ResolveBadge(req)
			if err != nil {
				t.Fatalf("ResolveBadge(%s/%s) returned error: %v", variant, size, err)
			}
			if badge.Icon != "" {
				t.Errorf("variant %s size %s: expected empty icon, got %q", variant, size, badge.Icon)
			}
		}
	}
}

func TestResolveBadge_PresentationDoesNotAffectVersion(t *testing.T) {
	base, err := ResolveBadge(NewBadgeRequest(releases.PackageTool))
	if err != nil {
		t.Fatalf("ResolveBadge returned error: %v", err)
	}

	for variant := VariantDefault; variant < numVariants; variant++ {
		for size := SizeSmall; size < numSizes; size++ {
			req := NewBadgeRequest(releases.PackageTool)
			req.Variant = variant
			req.Size = size

			badge, err := ResolveBadge(req)
			if err != nil {
				t.Fatalf("ResolveBadge(%s/%s) returned error: %v", variant, size, err)
			}
			if badge.Version != base.Version {
				t.Errorf("variant %s size %s changed version: %q vs %q", variant, size, badge.Version, base.Version)
			}
		}
	}
}

func TestResolveBadge_UnknownKey(t *testing.T) {
	req := NewBadgeRequest(releases.ComponentKey(42))

	_, err := ResolveBadge(req)
	if err == nil {
		t.Fatal("expected error for key outside the enumeration")
	}

	var unknown *releases.UnknownComponentError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownComponentError, got %T: %v", err, err)
	}
}

func TestResolveBadge_InvalidPresentation(t *testing.T) {
	req := NewBadgeRequest(releases.Runtime)
	req.Variant = Variant(17)

	_, err := ResolveBadge(req)
	var invalid *InvalidVariantError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidVariantError for variant, got %T: %v", err, err)
	}

	req = NewBadgeRequest(releases.Runtime)
	req.Size = Size(-1)

	_, err = ResolveBadge(req)
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidVariantError for size, got %T: %v", err, err)
	}
}

func TestBadge_Markup(t *testing.T) {
	node, err := Badge(NewBadgeRequest(releases.ClusterPlatform))
	if err != nil {
		t.Fatalf("Badge returned error: %v", err)
	}

	vtest.ExpectContains(t, node, "Kubernetes")
	vtest.ExpectContains(t, node, "1.32+")
	vtest.ExpectAttribute(t, node, "data-component", "kubernetes")
}

func TestBadge_NoIconSlotWhenSuppressed(t *testing.T) {
	req := NewBadgeRequest(releases.Runtime)
	req.ShowIcon = false

	node, err := Badge(req)
	if err != nil {
		t.Fatalf("Badge returned error: %v", err)
	}

	entry, _ := releases.Get(releases.Runtime)
	vtest.ExpectNotContains(t, node, entry.Icon)
	vtest.ExpectNotContains(t, node, "aria-hidden")
}

func TestMustBadge_PanicsOnUnknownKey(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown key")
		}
	}()
	MustBadge(NewBadgeRequest(releases.ComponentKey(99)))
}
