package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingActions counts dispatched actions for executor tests.
type recordingActions struct {
	exits       int
	nexts       int
	previouses  int
	fullscreens int
	infos       int
}

func (r *recordingActions) Exit()             { r.exits++ }
func (r *recordingActions) NavigateNext()     { r.nexts++ }
func (r *recordingActions) NavigatePrevious() { r.previouses++ }
func (r *recordingActions) ToggleFullscreen() { r.fullscreens++ }
func (r *recordingActions) ToggleInfo()       { r.infos++ }

func TestActionExecutor(t *testing.T) {
	ae := NewActionExecutor()

	t.Run("DispatchesKnownActions", func(t *testing.T) {
		rec := &recordingActions{}

		assert.True(t, ae.ExecuteAction("exit", rec))
		assert.True(t, ae.ExecuteAction("next", rec))
		assert.True(t, ae.ExecuteAction("next", rec))
		assert.True(t, ae.ExecuteAction("previous", rec))
		assert.True(t, ae.ExecuteAction("fullscreen", rec))
		assert.True(t, ae.ExecuteAction("info", rec))

		assert.Equal(t, 1, rec.exits)
		assert.Equal(t, 2, rec.nexts)
		assert.Equal(t, 1, rec.previouses)
		assert.Equal(t, 1, rec.fullscreens)
		assert.Equal(t, 1, rec.infos)
	})

	t.Run("RejectsUnknownAction", func(t *testing.T) {
		rec := &recordingActions{}
		assert.False(t, ae.ExecuteAction("teleport", rec))
		assert.Equal(t, recordingActions{}, *rec)
	})
}

func TestEveryDefinedActionDispatches(t *testing.T) {
	ae := NewActionExecutor()
	for _, def := range actionDefinitions {
		rec := &recordingActions{}
		assert.True(t, ae.ExecuteAction(def.Name, rec), "action %s", def.Name)
	}
}
