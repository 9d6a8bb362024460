package main

// ActionDefinition defines an action with its default key and mouse bindings.
type ActionDefinition struct {
	Name         string
	Keys         []string
	MouseActions []string
	Description  string
}

// actionDefinitions contains all actions with their default bindings.
var actionDefinitions = []ActionDefinition{
	{"exit", []string{"Escape", "Enter"}, []string{}, "Quit the viewer"},
	{"next", []string{"ArrowRight", "KeyX"}, []string{"LeftClick", "WheelDown"}, "Next image"},
	{"previous", []string{"ArrowLeft", "KeyZ"}, []string{"RightClick", "WheelUp"}, "Previous image"},
	{"fullscreen", []string{"KeyF"}, []string{}, "Toggle fullscreen"},
	{"info", []string{"KeyI"}, []string{}, "Show/hide the status overlay"},
}

// GetDefaultKeybindings returns a map of action names to their default
// keybindings.
func GetDefaultKeybindings() map[string][]string {
	keybindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		keybindings[action.Name] = action.Keys
	}
	return keybindings
}

// GetDefaultMousebindings returns a map of action names to their default
// mouse bindings.
func GetDefaultMousebindings() map[string][]string {
	mousebindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		mousebindings[action.Name] = action.MouseActions
	}
	return mousebindings
}
