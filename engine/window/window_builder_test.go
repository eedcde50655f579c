package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowBuilderOptions(t *testing.T) {
	w := &engineWindow{
		title:     "Default Window Title",
		width:     1280,
		height:    720,
		resizable: true,
	}

	for _, opt := range []WindowBuilderOption{
		WithTitle("Ring Field"),
		WithWidth(600),
		WithHeight(600),
		WithResizable(false),
	} {
		opt(w)
	}

	assert.Equal(t, "Ring Field", w.title)
	assert.Equal(t, 600, w.width)
	assert.Equal(t, 600, w.height)
	assert.False(t, w.resizable)
}

func TestWindowCallbackRegistration(t *testing.T) {
	w := &engineWindow{}

	w.SetUpdateCallback(func() {})
	w.SetResizeCallback(func(width, height int) {})
	w.SetKeyDownCallback(func(keyCode uint32) {})
	w.SetKeyUpCallback(func(keyCode uint32) {})

	assert.NotNil(t, w.onUpdate)
	assert.NotNil(t, w.onResize)
	assert.NotNil(t, w.onKeyDown)
	assert.NotNil(t, w.onKeyUp)
}
