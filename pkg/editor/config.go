package editor

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the editing-session settings.
type Config struct {
	// CellSize is the width of one grid cell in canvas pixels.
	CellSize float64 `json:"cell_size"`

	// CanvasW and CanvasH are the logical pixel dimensions shared by
	// the six editing canvases.
	CanvasW float64 `json:"canvas_w"`
	CanvasH float64 `json:"canvas_h"`

	// ModelID is the entity id the session edits.
	ModelID string `json:"model_id"`

	// SavePath is the SQLite database used by save/load.
	SavePath string `json:"save_path"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		CellSize: 48,
		CanvasW:  480,
		CanvasH:  480,
		ModelID:  "model",
		SavePath: "orthovox.db",
	}
}

// LoadConfig reads a JSON config file, falling back to defaults when
// the file does not exist.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("editor: read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("editor: parse config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes the config as indented JSON.
func (c Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("editor: encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("editor: write config %s: %w", path, err)
	}
	return nil
}
