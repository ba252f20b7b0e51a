package window

import (
	"testing"

	"marquee/controller"
	"marquee/fonts"
	m "marquee/model"
	"marquee/scroll"
	"marquee/stream"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame() (*game, *stream.Stream[m.Event]) {
	events := stream.NewStream[m.Event]("events")
	marquee := controller.NewMarquee(m.Sequence{m.NewLine("a", 10, 10)}, scroll.New(1), controller.Palette{})
	return &game{controller: controller.New(marquee, events), events: events, width: 1024, height: 768}, events
}

func TestLayoutReportsResize(t *testing.T) {
	g, events := newTestGame()

	w, h := g.Layout(1024, 768)
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)
	assert.Empty(t, events.PullAll())

	w, h = g.Layout(800, 600)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Equal(t, []m.Event{m.ScreenSize{Width: 800, Height: 600}}, events.PullAll())
}

func TestUpdate(t *testing.T) {
	g, events := newTestGame()
	lines := g.controller.Marquee().Lines()

	require.NoError(t, g.Update())
	assert.Equal(t, m.ActiveAt(768), lines[0].Offset)
	require.NoError(t, g.Update())
	assert.Equal(t, m.ActiveAt(767), lines[0].Offset)

	events.Push(m.TogglePause{})
	require.NoError(t, g.Update())
	assert.True(t, g.controller.Paused())
	assert.Equal(t, m.ActiveAt(767), lines[0].Offset)

	g.Layout(800, 600)
	events.Push(m.TogglePause{})
	require.NoError(t, g.Update())
	assert.Equal(t, m.ActiveAt(766), lines[0].Offset)

	events.Push(m.Quit{})
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.True(t, g.controller.Quit())
}

func TestBaselineAddsAscent(t *testing.T) {
	bank, err := fonts.Load("")
	require.NoError(t, err)
	defer bank.Close()
	face, err := bank.Face(32)
	require.NoError(t, err)

	ascent := face.Metrics().Ascent.Ceil()
	require.Positive(t, ascent)
	assert.Equal(t, ascent, baseline(face, 0))
	assert.Equal(t, 100+ascent, baseline(face, 100.7))
	assert.Equal(t, -21+ascent, baseline(face, -20.5))
}
