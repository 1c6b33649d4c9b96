package views

import (
	"image"
	"testing"

	"pc-builder/internal/models"
	"pc-builder/internal/views/components"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMainView(t *testing.T) *MainView {
	t.Helper()
	a := test.NewTempApp(t)
	w := a.NewWindow("test")
	t.Cleanup(w.Close)

	mv := NewMainView(w)
	mv.SetAnimate(false)
	t.Cleanup(mv.Shutdown)
	return mv
}

func TestScreenNavigation(t *testing.T) {
	mv := newTestMainView(t)
	assert.Equal(t, ScreenWelcome, mv.Current())
	assert.Equal(t, mv.Welcome().GetContainer(), mv.GetWindow().Content())

	mv.ShowBuild()
	assert.Equal(t, ScreenBuild, mv.Current())
	assert.Equal(t, mv.Build().GetContainer(), mv.GetWindow().Content())

	mv.ShowWin()
	assert.Equal(t, ScreenWin, mv.Current())
	assert.Equal(t, "win", mv.Current().String())

	mv.ShowWelcome()
	assert.False(t, mv.Welcome().Animating())
}

func TestBuildViewDisplay(t *testing.T) {
	mv := newTestMainView(t)
	bv := mv.Build()

	bv.Load(models.DefaultCatalog().All())
	surface := bv.GetSurface()
	pos, ok := surface.PartPosition(models.CPUID)
	require.True(t, ok)
	assert.Equal(t, image.Pt(580, 350), pos)

	bv.PlaceVisual(models.CPUID, image.Pt(315, 295), models.NewSize(80, 80))
	pos, _ = surface.PartPosition(models.CPUID)
	assert.Equal(t, image.Pt(315, 295), pos)
	order := surface.Order()
	assert.Equal(t, models.CPUID, order[len(order)-1])

	bv.MoveVisual(models.CPUID, image.Pt(580, 350))
	pos, _ = surface.PartPosition(models.CPUID)
	assert.Equal(t, image.Pt(580, 350), pos)

	bv.SetProgress(50)
	bv.ShowStatus("Almost There!")
	assert.Equal(t, 50.0, bv.GetProgress().GetProgress())
	assert.True(t, bv.GetProgress().IsStatusVisible())
	bv.HideStatus()
	assert.False(t, bv.GetProgress().IsStatusVisible())
}

func TestBuildViewNotify(t *testing.T) {
	mv := newTestMainView(t)
	mv.ShowBuild()
	bv := mv.Build()

	bv.Notify("Correct", "The motherboard is in.")
	assert.Equal(t, []Notice{{Title: "Correct", Text: "The motherboard is in."}}, bv.Notices())

	overlay := mv.GetWindow().Canvas().Overlays().Top()
	assert.NotNil(t, overlay, "dialog is shown as a modal overlay")

	bv.Load(nil)
	assert.Empty(t, bv.Notices())
}

func TestWelcomeAnimationSettles(t *testing.T) {
	mv := newTestMainView(t)
	wv := mv.Welcome()

	start := wv.IconPosition()
	assert.Equal(t, float32(iconStartX), start.X)
	assert.Equal(t, float32(iconStartY), start.Y)

	rested := false
	for i := 0; i < 60*20 && !rested; i++ {
		rested = wv.Tick()
		assert.LessOrEqual(t, wv.IconPosition().Y, float32(floorY-components.IconSize)+0.5)
	}
	require.True(t, rested)
	assert.InDelta(t, 190, wv.IconPosition().Y, 0.5)

	wv.ResetAnimation()
	assert.Equal(t, float32(iconStartY), wv.IconPosition().Y)
}

func TestWelcomeAnimationTicker(t *testing.T) {
	mv := newTestMainView(t)
	wv := mv.Welcome()

	wv.StartAnimation()
	assert.True(t, wv.Animating())
	wv.StartAnimation()
	wv.StopAnimation()
	assert.False(t, wv.Animating())
	wv.StopAnimation()
}

func TestButtonsCallHandlers(t *testing.T) {
	mv := newTestMainView(t)

	started, again, quit, back := 0, 0, 0, 0
	mv.Welcome().SetStartHandler(func() { started++ })
	mv.Win().SetAgainHandler(func() { again++ })
	mv.Win().SetQuitHandler(func() { quit++ })
	mv.Build().SetBackHandler(func() { back++ })

	test.Tap(mv.Welcome().GetStartButton())
	test.Tap(mv.Win().GetAgainButton())
	test.Tap(mv.Win().GetQuitButton())
	test.Tap(mv.Build().GetToolbar().GetBackButton())

	assert.Equal(t, []int{1, 1, 1, 1}, []int{started, again, quit, back})
}
