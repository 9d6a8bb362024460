package main

import (
	"bytes"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// renderPhase tracks the pipeline through its lifecycle. Transitions are
// Uninitialized → Ready on the first texture upload, Ready → Drawing → Ready
// each frame, Ready → Reconfiguring → Ready on a surface resize. The loop is
// single-threaded, so Drawing and Reconfiguring begin and end within the call
// that sets them; they record the step in progress, not a handshake with
// another goroutine. Unrecoverable device errors have no phase of their own:
// Ebitengine reports them as an error from RunGame, which tears the viewer
// down.
type renderPhase int

const (
	renderUninitialized renderPhase = iota
	renderReady
	renderDrawing
	renderReconfiguring
)

const infoFontSize = 16.0

// Common colors used in rendering
var (
	colorWhite = color.RGBA{255, 255, 255, 255}

	// Background color for the semi-transparent info overlay
	bgColorLight = color.RGBA{0, 0, 0, 128}
)

// Renderer owns the GPU texture of the current image and draws it each frame.
type Renderer struct {
	renderState    RenderState
	texture        *ebiten.Image
	phase          renderPhase
	infoFontSource *text.GoTextFaceSource
	surfaceW       int
	surfaceH       int
}

// NewRenderer creates a new Renderer
func NewRenderer(renderState RenderState) *Renderer {
	// Initialize font source with lightweight goregular
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatal(err)
	}

	return &Renderer{
		renderState:    renderState,
		phase:          renderUninitialized,
		infoFontSource: s,
	}
}

// SetImage replaces the current texture with one sized exactly to the decoded
// image and uploads the pixel buffer. The previous texture is released.
func (r *Renderer) SetImage(img *DecodedImage) {
	if r.texture != nil {
		r.texture.Deallocate()
	}
	r.texture = ebiten.NewImage(img.Width, img.Height)
	r.texture.WritePixels(img.Pix)
	r.phase = renderReady
}

// Reconfigure records a new surface size. Pixel content is untouched; the
// next Draw maps the texture onto the new surface.
func (r *Renderer) Reconfigure(w, h int) {
	if w == r.surfaceW && h == r.surfaceH {
		return
	}
	if r.phase == renderReady {
		r.phase = renderReconfiguring
	}
	r.surfaceW = w
	r.surfaceH = h
	if r.phase == renderReconfiguring {
		r.phase = renderReady
	}
}

// Draw renders the entire screen
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Clear()

	if r.texture == nil || r.phase == renderUninitialized {
		return
	}

	r.phase = renderDrawing
	if r.renderState.IsFullscreen() {
		r.drawImageFit(screen)
	} else {
		r.drawImageStretched(screen)
	}
	r.phase = renderReady

	if r.renderState.IsShowingInfo() {
		r.drawInfoDisplay(screen)
	}
}

// drawImageStretched fills the whole surface with the texture. The window is
// sized to the image's aspect ratio, so the stretch is uniform in practice.
func (r *Renderer) drawImageStretched(screen *ebiten.Image) {
	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()
	iw := r.texture.Bounds().Dx()
	ih := r.texture.Bounds().Dy()
	if iw <= 0 || ih <= 0 || sw <= 0 || sh <= 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Scale(float64(sw)/float64(iw), float64(sh)/float64(ih))
	screen.DrawImage(r.texture, op)
}

// drawImageFit letterboxes the texture into the surface, centered. Used in
// fullscreen, where the surface no longer matches the image's aspect ratio.
func (r *Renderer) drawImageFit(screen *ebiten.Image) {
	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())
	iw := float64(r.texture.Bounds().Dx())
	ih := float64(r.texture.Bounds().Dy())
	if iw <= 0 || ih <= 0 || sw <= 0 || sh <= 0 {
		return
	}

	scale := sw / iw
	if s := sh / ih; s < scale {
		scale = s
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((sw-iw*scale)/2, (sh-ih*scale)/2)
	screen.DrawImage(r.texture, op)
}

func (r *Renderer) drawInfoDisplay(screen *ebiten.Image) {
	infoFont := &text.GoTextFace{
		Source: r.infoFontSource,
		Size:   infoFontSize,
	}

	infoText := r.renderState.StatusLine()
	if infoText == "" {
		return
	}

	// Measure text dimensions
	textWidth, textHeight := text.Measure(infoText, infoFont, 0)

	// Position at bottom right corner
	padding := 10.0
	textX := float64(screen.Bounds().Dx()) - textWidth - padding
	textY := float64(screen.Bounds().Dy()) - textHeight - padding

	// Semi-transparent background
	bgPadding := 5.0
	DrawFilledRect(screen, textX-bgPadding, textY-bgPadding, textWidth+bgPadding*2, textHeight+bgPadding*2, bgColorLight)

	DrawText(screen, infoText, infoFont, textX, textY, colorWhite)
}
