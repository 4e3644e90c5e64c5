package main

import (
	"context"
	"log"

	"github.com/voxtools/orthovox/pkg/editor"
	"github.com/voxtools/orthovox/pkg/export"
	"github.com/voxtools/orthovox/pkg/mesh"
	"github.com/voxtools/orthovox/pkg/placer"
	"github.com/voxtools/orthovox/pkg/script"
	"github.com/voxtools/orthovox/pkg/store"
	"github.com/voxtools/orthovox/pkg/view"
)

// App is the Wails backend. It exposes the editing session to the
// frontend via bindings; the frontend owns all drawing.
type App struct {
	ctx     context.Context
	store   *store.ModelStore
	session *editor.Session
	engine  *script.Engine
}

// MeshData is the JSON-serializable mesh snapshot sent to the frontend.
type MeshData struct {
	Positions   []float32 `json:"positions"`
	Indices     []uint32  `json:"indices"`
	VertexCount int       `json:"vertexCount"`
}

// PlaceResult reports one placement attempt back to the frontend.
// Placed is false when the surface was not registered yet; the mesh is
// returned either way so the caller can always redraw.
type PlaceResult struct {
	Placed bool      `json:"placed"`
	Cell   view.Cell `json:"cell"`
	Mesh   MeshData  `json:"mesh"`
}

// EvalErrorData is a JSON-serializable script error for the frontend.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// ScriptResult is the full result of running a placement script.
type ScriptResult struct {
	Placed int             `json:"placed"`
	Errors []EvalErrorData `json:"errors"`
	Mesh   MeshData        `json:"mesh"`
}

// NewApp creates the backend with a fresh store and default config.
func NewApp() *App {
	return newAppWithConfig(editor.DefaultConfig())
}

// newAppWithConfig is used by main when a config file exists and by
// tests that need a specific cell size.
func newAppWithConfig(cfg editor.Config) *App {
	st := store.New()
	return &App{
		store:   st,
		session: editor.NewSession(cfg, st),
		engine:  script.NewEngine(),
	}
}

// startup is called by Wails on app startup. The context is saved so
// Wails runtime methods can be called later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

func (a *App) meshData() MeshData {
	b := a.session.Mesh()
	// Non-nil slices so JSON serializes [] instead of null.
	positions := b.Positions
	if positions == nil {
		positions = []float32{}
	}
	indices := b.Indices
	if indices == nil {
		indices = []uint32{}
	}
	return MeshData{
		Positions:   positions,
		Indices:     indices,
		VertexCount: b.VertexCount(),
	}
}

// RegisterSurface records a canvas's client rectangle and logical size
// for one view. Called by the frontend on mount and on layout changes.
func (a *App) RegisterSurface(viewName string, x, y, w, h, canvasW, canvasH float64) error {
	v, err := view.Parse(viewName)
	if err != nil {
		return err
	}
	a.session.RegisterSurface(editor.Surface{
		View:    v,
		Rect:    editor.Rect{X: x, Y: y, W: w, H: h},
		CanvasW: canvasW,
		CanvasH: canvasH,
	})
	return nil
}

// PointerDown feeds a pointer press into the drag preview machine.
func (a *App) PointerDown(viewName string, clientX, clientY float64, button int) editor.Preview {
	v, err := view.Parse(viewName)
	if err != nil {
		return editor.Preview{}
	}
	return a.session.PointerDown(v, clientX, clientY, button)
}

// PointerMove updates the rubber-band preview while dragging.
func (a *App) PointerMove(viewName string, clientX, clientY float64) editor.Preview {
	v, err := view.Parse(viewName)
	if err != nil {
		return editor.Preview{}
	}
	return a.session.PointerMove(v, clientX, clientY)
}

// PointerUp ends any drag in progress.
func (a *App) PointerUp() editor.Preview {
	return a.session.PointerUp()
}

// Place handles the context action on a view: snap the click, place a
// cube, and return the updated mesh.
func (a *App) Place(viewName string, clientX, clientY float64) PlaceResult {
	v, err := view.Parse(viewName)
	if err != nil {
		log.Printf("Place: %v", err)
		return PlaceResult{Mesh: a.meshData()}
	}

	placement, ok := a.session.Place(v, clientX, clientY)
	if !ok {
		// Surface not registered yet; expected during startup.
		return PlaceResult{Mesh: a.meshData()}
	}
	return PlaceResult{Placed: true, Cell: placement.Cell, Mesh: a.meshData()}
}

// Mesh returns the current model buffer for a full redraw.
func (a *App) Mesh() MeshData {
	return a.meshData()
}

// GridOverlay returns the projected 2D positions of every buffer
// vertex for one view's grid-snap visualization.
func (a *App) GridOverlay(viewName string) []view.Point {
	v, err := view.Parse(viewName)
	if err != nil {
		return []view.Point{}
	}
	points := a.session.GridOverlay(v)
	if points == nil {
		points = []view.Point{}
	}
	return points
}

// RunScript evaluates placement source and applies the requested cells
// through the normal placement path.
func (a *App) RunScript(source string) ScriptResult {
	result := ScriptResult{Errors: []EvalErrorData{}}

	res, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		log.Printf("RunScript fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		result.Mesh = a.meshData()
		return result
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		result.Mesh = a.meshData()
		return result
	}

	for _, cell := range res.Placements {
		a.session.PlaceCell(cell)
	}
	result.Placed = len(res.Placements)
	result.Mesh = a.meshData()
	return result
}

// ValidateModel runs the buffer invariant checks and returns findings
// as display strings.
func (a *App) ValidateModel() []string {
	findings := mesh.Validate(a.session.Mesh())
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Error())
	}
	return out
}

// SaveModel persists the session's model to the configured SQLite
// database, opening it on first use.
func (a *App) SaveModel() error {
	cfg := a.session.Config()
	if err := a.store.Open(cfg.SavePath); err != nil {
		return err
	}
	return a.store.Save(cfg.ModelID)
}

// LoadModel replaces the session's model with the persisted one.
func (a *App) LoadModel() error {
	cfg := a.session.Config()
	if err := a.store.Open(cfg.SavePath); err != nil {
		return err
	}
	return a.store.Load(cfg.ModelID)
}

// ExportSTL tessellates the placed cells and writes an STL file.
func (a *App) ExportSTL(path string) error {
	cells := placer.Anchors(a.session.Mesh())
	if err := export.WriteSTL(cells, 1, path); err != nil {
		return err
	}
	log.Printf("ExportSTL: wrote %d cells to %s", len(cells), path)
	return nil
}
