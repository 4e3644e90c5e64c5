package main

import (
	"embed"
	"log"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/voxtools/orthovox/pkg/editor"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := editor.LoadConfig("orthovox.json")
	if err != nil {
		log.Printf("config: %v, using defaults", err)
		cfg = editor.DefaultConfig()
	}

	app := newAppWithConfig(cfg)

	err = wails.Run(&options.App{
		Title:  "Orthovox",
		Width:  1200,
		Height: 860,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		OnStartup: app.startup,
		Bind: []interface{}{
			app,
		},
	})
	if err != nil {
		log.Fatalf("wails: %v", err)
	}
}
