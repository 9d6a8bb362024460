package main

// InputHandler processes keyboard and mouse input once per frame.
type InputHandler struct {
	inputActions        InputActions
	keybindingManager   *KeybindingManager
	mousebindingManager *MousebindingManager
}

// NewInputHandler creates a new InputHandler.
func NewInputHandler(inputActions InputActions, km *KeybindingManager, mm *MousebindingManager) *InputHandler {
	return &InputHandler{
		inputActions:        inputActions,
		keybindingManager:   km,
		mousebindingManager: mm,
	}
}

// HandleInput processes all input for the current frame. Returns true if any
// action fired.
func (h *InputHandler) HandleInput() bool {
	inputProcessed := false

	inputProcessed = h.handleExit() || inputProcessed
	inputProcessed = h.handleNavigation() || inputProcessed
	inputProcessed = h.handleToggles() || inputProcessed

	return inputProcessed
}

func (h *InputHandler) handleExit() bool {
	return h.executeAction("exit")
}

func (h *InputHandler) handleNavigation() bool {
	inputProcessed := false

	if h.executeAction("next") {
		inputProcessed = true
	}
	if h.executeAction("previous") {
		inputProcessed = true
	}

	return inputProcessed
}

func (h *InputHandler) handleToggles() bool {
	inputProcessed := false

	if h.executeAction("fullscreen") {
		inputProcessed = true
	}
	if h.executeAction("info") {
		inputProcessed = true
	}

	return inputProcessed
}

// executeAction tries the keyboard bindings first, then the mouse bindings.
func (h *InputHandler) executeAction(action string) bool {
	if h.keybindingManager.ExecuteAction(action, h.inputActions) {
		return true
	}
	return h.mousebindingManager.ExecuteAction(action, h.inputActions)
}
