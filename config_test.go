package main

import (
	"encoding/json"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := defaultSettings()
	if s.MeshLevel != "balanced" {
		t.Errorf("MeshLevel = %q, want \"balanced\"", s.MeshLevel)
	}
	if s.Fullscreen {
		t.Error("Fullscreen defaults to true, want false")
	}
	if !s.VSync {
		t.Error("VSync defaults to false, want true")
	}
	if !s.Effects.Shockwave || !s.Effects.Heat || !s.Effects.Turbulence {
		t.Errorf("Effects = %+v, want all enabled", s.Effects)
	}
	if s.ShowStats {
		t.Error("ShowStats defaults to true, want false")
	}
}

func TestSettingsNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"known preset", "dense", "dense"},
		{"unknown preset", "ultra", "balanced"},
		{"empty", "", "balanced"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := defaultSettings()
			s.MeshLevel = tt.in
			s.normalize()
			if s.MeshLevel != tt.want {
				t.Errorf("normalize(%q) = %q, want %q", tt.in, s.MeshLevel, tt.want)
			}
		})
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	in := Settings{
		MeshLevel:  "dense",
		Fullscreen: true,
		VSync:      false,
		Effects:    Effects{Shockwave: false, Heat: true, Turbulence: false},
		ShowStats:  true,
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out Settings
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestSettingsPartialFileKeepsDefaults(t *testing.T) {
	// Loading unmarshals onto the defaults, so fields missing from an old or
	// hand-trimmed file keep their default values.
	s := defaultSettings()
	partial := []byte(`{"meshLevel":"dense","effects":{"turbulence":false}}`)
	if err := json.Unmarshal(partial, &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if s.MeshLevel != "dense" {
		t.Errorf("MeshLevel = %q, want \"dense\"", s.MeshLevel)
	}
	if !s.VSync {
		t.Error("VSync lost its default")
	}
	if !s.Effects.Shockwave || !s.Effects.Heat {
		t.Errorf("Effects = %+v, want shockwave and heat still enabled", s.Effects)
	}
	if s.Effects.Turbulence {
		t.Error("Turbulence = true, want overridden to false")
	}
}

func TestSettingsCandidates(t *testing.T) {
	paths := settingsCandidates()
	if len(paths) == 0 {
		t.Fatal("no candidate paths")
	}
	for _, p := range paths {
		if filepath.Base(p) != settingsFileName {
			t.Errorf("candidate %q does not end in %q", p, settingsFileName)
		}
	}
	if paths[len(paths)-1] != settingsFileName {
		t.Errorf("last candidate = %q, want bare %q for the working directory", paths[len(paths)-1], settingsFileName)
	}
}
