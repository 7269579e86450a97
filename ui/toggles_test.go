package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flurry/config"
)

func TestToggleRegistryDefaults(t *testing.T) {
	r := NewToggleRegistry(
		config.RenderConfig{DisplayStar: true, ShowHUD: true},
		config.CameraConfig{Ortho: true},
	)

	tests := []struct {
		id   ToggleID
		want bool
	}{
		{ToggleStar, true},
		{ToggleSparks, false},
		{ToggleTrails, false},
		{ToggleOrtho, true},
		{ToggleHUD, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			if got := r.IsEnabled(tt.id); got != tt.want {
				t.Errorf("IsEnabled(%s) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}

	if cats := r.Categories(); len(cats) != 2 || cats[0] != "scene" || cats[1] != "view" {
		t.Errorf("categories = %v", cats)
	}
	if n := len(r.ByCategory("scene")); n != 3 {
		t.Errorf("scene toggles = %d, want 3", n)
	}
}

func TestToggleRegistryKeys(t *testing.T) {
	r := NewToggleRegistry(config.RenderConfig{}, config.CameraConfig{})

	id, on, ok := r.HandleKeyPress(rl.KeyP)
	if !ok || id != ToggleSparks || !on {
		t.Fatalf("HandleKeyPress(P) = %s, %v, %v", id, on, ok)
	}
	if _, on, _ := r.HandleKeyPress(rl.KeyP); on {
		t.Error("second press should switch sparks off")
	}
	if _, _, ok := r.HandleKeyPress(rl.KeyZ); ok {
		t.Error("unbound key toggled something")
	}

	if r.Toggle("missing") {
		t.Error("unknown toggle reported on")
	}
	r.SetEnabled(ToggleTrails, true)
	if !r.IsEnabled(ToggleTrails) {
		t.Error("SetEnabled had no effect")
	}
}
