package main

// RenderState provides read-only access to viewer state for the renderer.
type RenderState interface {
	IsFullscreen() bool
	IsShowingInfo() bool
	// StatusLine is the text shown by the info overlay.
	StatusLine() string
}

// InputActions provides the actions the input handlers can trigger.
type InputActions interface {
	// Application control
	Exit()

	// Navigation
	NavigateNext()
	NavigatePrevious()

	// Display toggles
	ToggleFullscreen()
	ToggleInfo()
}
