package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGone(t *testing.T) {
	line := NewLine("text", 10, 20)
	assert.False(t, line.Gone(), "not started")

	line.Offset = ActiveAt(-19)
	assert.False(t, line.Gone())

	line.Offset = ActiveAt(-20)
	assert.True(t, line.Gone())

	line.Offset = ExitedAt(-25)
	assert.True(t, line.Gone())

	empty := NewLine("", 0, 0)
	empty.Offset = ActiveAt(0)
	assert.True(t, empty.Gone())
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "NotStarted", Offset{}.String())
	assert.Equal(t, "Active(12.5)", ActiveAt(12.5).String())
	assert.Equal(t, "Exited(-3)", ExitedAt(-3).String())
	assert.Equal(t, "Hidden", Placement{}.String())
	assert.Equal(t, `Line{Text: "a", Width: 1, Height: 2, Offset: NotStarted}`, NewLine("a", 1, 2).String())
}
