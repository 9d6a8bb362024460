package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

// viewerState is the navigation state machine. Idle accepts input, Loading
// covers the decode/resize/upload of one step, Terminating ends the run loop
// on the next Update.
type viewerState int

const (
	stateIdle viewerState = iota
	stateLoading
	stateTerminating
)

// Viewer drives the event loop: it owns the image list, the renderer and the
// input plumbing, and implements ebiten.Game.
type Viewer struct {
	config   Config
	list     *ImageList
	renderer *Renderer
	desktop  DesktopInfo
	input    *InputHandler

	state      viewerState
	showInfo   bool
	fullscreen bool

	// Windowed-mode size, restored when leaving fullscreen
	savedWinW int
	savedWinH int
}

// NewViewer wires the viewer together from a built image list.
func NewViewer(config Config, list *ImageList) *Viewer {
	v := &Viewer{
		config:  config,
		list:    list,
		desktop: monitorDesktop{},
		state:   stateIdle,
	}
	v.renderer = NewRenderer(v)
	v.input = NewInputHandler(v,
		NewKeybindingManager(GetDefaultKeybindings()),
		NewMousebindingManager(GetDefaultMousebindings()))
	return v
}

// Start decodes and displays the current list entry. A failure here is fatal:
// the first image must be shown before the run loop begins.
func (v *Viewer) Start() error {
	return v.showCurrent()
}

// showCurrent decodes the current entry, fits the window to it and uploads
// the texture.
func (v *Viewer) showCurrent() error {
	entry := v.list.Current()

	img, err := decodeImage(entry)
	if err != nil {
		return err
	}

	if !v.fullscreen {
		w, h := v.windowSizeFor(img)
		ebiten.SetWindowSize(w, h)
		v.savedWinW, v.savedWinH = w, h
	}

	v.renderer.SetImage(img)
	ebiten.SetWindowTitle(fmt.Sprintf("%s - fiv", entry.Name()))
	return nil
}

// windowSizeFor queries the desktop afresh and fits the image to it.
func (v *Viewer) windowSizeFor(img *DecodedImage) (int, int) {
	dw, dh, ok := v.desktop.CurrentDesktopSize()
	if !ok {
		log.Warn("Desktop resolution unavailable, skipping downscale")
	}
	minW, minH := v.config.MinWindowSize[0], v.config.MinWindowSize[1]
	return fitWindow(img.Width, img.Height, minW, minH, dw, dh, ok)
}

// navigate runs one step of the list. At a boundary the step reports no
// entry and nothing changes; on a decode failure the last-good frame stays.
func (v *Viewer) navigate(step func() (ImageEntry, bool)) {
	if v.state != stateIdle {
		return
	}

	entry, ok := step()
	if !ok {
		return
	}

	v.state = stateLoading
	if err := v.showCurrent(); err != nil {
		log.Errorf("Failed to load %s: %v", entry.Path, err)
	}
	v.state = stateIdle
}

// InputActions implementation

func (v *Viewer) Exit() {
	v.state = stateTerminating
}

func (v *Viewer) NavigateNext() {
	v.navigate(v.list.Next)
}

func (v *Viewer) NavigatePrevious() {
	v.navigate(v.list.Previous)
}

func (v *Viewer) ToggleFullscreen() {
	v.fullscreen = !v.fullscreen
	ebiten.SetFullscreen(v.fullscreen)
	if !v.fullscreen && v.savedWinW > 0 && v.savedWinH > 0 {
		ebiten.SetWindowSize(v.savedWinW, v.savedWinH)
	}
}

func (v *Viewer) ToggleInfo() {
	v.showInfo = !v.showInfo
}

// RenderState implementation

func (v *Viewer) IsFullscreen() bool {
	return v.fullscreen
}

func (v *Viewer) IsShowingInfo() bool {
	return v.showInfo
}

func (v *Viewer) StatusLine() string {
	entry := v.list.Current()
	return fmt.Sprintf("%s  %d / %d", entry.Name(), v.list.Index()+1, v.list.Len())
}

// ebiten.Game implementation

func (v *Viewer) Update() error {
	switch v.state {
	case stateTerminating:
		return ebiten.Termination
	case stateLoading:
		// A step is in flight; input resumes once it settles.
		return nil
	case stateIdle:
		v.input.HandleInput()
		if v.state == stateTerminating {
			return ebiten.Termination
		}
		return nil
	default:
		return fmt.Errorf("invalid viewer state: %d", v.state)
	}
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	v.renderer.Draw(screen)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.renderer.Reconfigure(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
