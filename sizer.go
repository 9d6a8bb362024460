package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// DesktopInfo reports the desktop resolution available for windows.
type DesktopInfo interface {
	// CurrentDesktopSize returns the desktop size in pixels, or ok=false
	// when the resolution cannot be determined.
	CurrentDesktopSize() (w, h int, ok bool)
}

// monitorDesktop queries the monitor the window is on.
type monitorDesktop struct{}

func (monitorDesktop) CurrentDesktopSize() (int, int, bool) {
	m := ebiten.Monitor()
	if m == nil {
		return 0, 0, false
	}
	w, h := m.Size()
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// fitWindow maps an image size to a window size, preserving aspect ratio:
//
//  1. An image smaller than the minimum in either dimension is scaled up
//     uniformly until both dimensions reach the minimum.
//  2. An image larger than the desktop in either dimension is scaled down
//     uniformly until it fits entirely within the desktop.
//  3. Otherwise the native dimensions are used unchanged.
//
// desktopOK=false skips rule 2 (the desktop resolution could not be
// determined).
func fitWindow(imageW, imageH, minW, minH, desktopW, desktopH int, desktopOK bool) (int, int) {
	if imageW <= 0 || imageH <= 0 {
		return minW, minH
	}
	if imageW < minW || imageH < minH {
		scale := math.Max(float64(minW)/float64(imageW), float64(minH)/float64(imageH))
		return roundScaled(imageW, imageH, scale)
	}
	if desktopOK && (imageW > desktopW || imageH > desktopH) {
		scale := math.Min(float64(desktopW)/float64(imageW), float64(desktopH)/float64(imageH))
		return roundScaled(imageW, imageH, scale)
	}
	return imageW, imageH
}

func roundScaled(w, h int, scale float64) (int, int) {
	return int(math.Round(float64(w) * scale)), int(math.Round(float64(h) * scale))
}
