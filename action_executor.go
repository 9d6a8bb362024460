package main

// ActionExecutor is the single dispatch point shared by the key and mouse
// binding managers.
type ActionExecutor struct{}

// NewActionExecutor creates a new ActionExecutor instance.
func NewActionExecutor() *ActionExecutor {
	return &ActionExecutor{}
}

// ExecuteAction executes the given action using the InputActions interface.
func (ae *ActionExecutor) ExecuteAction(action string, inputActions InputActions) bool {
	switch action {
	case "exit":
		inputActions.Exit()
	case "next":
		inputActions.NavigateNext()
	case "previous":
		inputActions.NavigatePrevious()
	case "fullscreen":
		inputActions.ToggleFullscreen()
	case "info":
		inputActions.ToggleInfo()
	default:
		return false
	}
	return true
}

// globalActionExecutor is the shared instance used by the binding managers.
var globalActionExecutor = NewActionExecutor()
