package catalog

import "testing"

func TestNewRegistry(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	colors := registry.Colors()
	if len(colors) == 0 {
		t.Fatal("no colors loaded")
	}
	for _, c := range colors {
		if c.Name == "" || c.Light == "" || c.Dark == "" || c.Text == "" {
			t.Errorf("incomplete color entry: %+v", c)
		}
	}

	backgrounds := registry.Backgrounds()
	if len(backgrounds) == 0 {
		t.Fatal("no backgrounds loaded")
	}
	for _, b := range backgrounds {
		if b.Name == "" {
			t.Errorf("background with empty name: %+v", b)
		}
	}
}

func TestColorLookup(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	first := registry.Colors()[0]
	color, ok := registry.Color(first.Name)
	if !ok {
		t.Fatalf("Color(%q) not found", first.Name)
	}
	if color.Light != first.Light {
		t.Errorf("Color(%q).Light = %q, want %q", first.Name, color.Light, first.Light)
	}

	if _, ok := registry.Color("Chartreuse"); ok {
		t.Error("unknown color should not resolve")
	}
}

func TestHasBackground(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	first := registry.Backgrounds()[0]
	if !registry.HasBackground(first.Name) {
		t.Errorf("HasBackground(%q) = false", first.Name)
	}
	if registry.HasBackground("nonexistent") {
		t.Error("HasBackground(nonexistent) = true")
	}
}
