package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// Persisted settings. Loading probes a few locations so a portable install
// (settings next to the executable) works without a config dir; saving
// always targets the per-user config dir.

const settingsFileName = "hexfield.json"

// Effects toggles the optional shader terms. Disabled effects are fed to the
// shader as zeroed uniforms, no program rebuild involved.
type Effects struct {
	Shockwave  bool `json:"shockwave"`
	Heat       bool `json:"heat"`
	Turbulence bool `json:"turbulence"`
}

type Settings struct {
	MeshLevel  string  `json:"meshLevel"`
	Fullscreen bool    `json:"fullscreen"`
	VSync      bool    `json:"vsync"`
	Effects    Effects `json:"effects"`
	ShowStats  bool    `json:"showStats"`
}

func defaultSettings() Settings {
	return Settings{
		MeshLevel:  defaultLevelID,
		Fullscreen: false,
		VSync:      true,
		Effects:    Effects{Shockwave: true, Heat: true, Turbulence: true},
		ShowStats:  false,
	}
}

// normalize maps unknown mesh level ids (stale or hand-edited files) back to
// a known preset.
func (s *Settings) normalize() {
	s.MeshLevel = levelByID(s.MeshLevel).ID
}

// settingsCandidates lists the probed locations, most specific first: the
// user config dir, the executable's directory, the working directory.
func settingsCandidates() []string {
	var out []string
	if dir, err := os.UserConfigDir(); err == nil {
		out = append(out, filepath.Join(dir, "hexfield", settingsFileName))
	}
	if exe, err := os.Executable(); err == nil {
		out = append(out, filepath.Join(filepath.Dir(exe), settingsFileName))
	}
	return append(out, settingsFileName)
}

// loadSettings returns the first readable settings file, or the defaults
// when none exists. A file that fails to parse is skipped with a log line
// rather than aborting a purely decorative program.
func loadSettings() Settings {
	for _, path := range settingsCandidates() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		s := defaultSettings()
		if err := json.Unmarshal(data, &s); err != nil {
			log.Println("Ignoring unreadable settings file", path+":", err)
			continue
		}
		s.normalize()
		return s
	}
	return defaultSettings()
}

// saveSettings writes the settings to the per-user config dir, creating it
// on first use.
func saveSettings(s Settings) error {
	base, err := os.UserConfigDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(base, "hexfield")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, settingsFileName), data, 0o644)
}
