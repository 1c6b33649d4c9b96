package models

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectContainsIsInclusive(t *testing.T) {
	r := NewRect(150, 290, 450, 590)

	assert.True(t, r.Contains(image.Pt(150, 290)))
	assert.True(t, r.Contains(image.Pt(450, 590)))
	assert.True(t, r.Contains(image.Pt(300, 400)))
	assert.False(t, r.Contains(image.Pt(149, 400)))
	assert.False(t, r.Contains(image.Pt(300, 591)))
}

func TestNewRectNormalizesCorners(t *testing.T) {
	r := NewRect(10, 20, 0, 5)
	assert.Equal(t, image.Pt(0, 5), r.Min)
	assert.Equal(t, image.Pt(10, 20), r.Max)
}

func TestRectIntersectsSharedEdge(t *testing.T) {
	a := NewRect(420, 280, 440, 410)
	b := NewRect(440, 280, 460, 410)
	c := NewRect(461, 280, 480, 410)

	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(c))
}

func TestDragPayloadValidity(t *testing.T) {
	visual := DrawPart(NewSize(4, 4), color.RGBA{A: 255})

	assert.True(t, NewDragPayload(CPUID, visual, image.Pt(3, 3)).Valid())
	assert.False(t, NewDragPayload(CPUID, nil, image.Pt(3, 3)).Valid())

	foreign := NewDragPayload(CPUID, visual, image.Pt(3, 3))
	foreign.Format = "text/plain"
	assert.False(t, foreign.Valid())

	noOffset := DragPayload{Format: DragFormat, ComponentID: CPUID, Visual: visual}
	assert.False(t, noOffset.Valid())
}

func TestSessionStateResetIsOneShot(t *testing.T) {
	s := DefaultSessionState()
	assert.True(t, s.IsLocked(CaseID))
	assert.True(t, s.IsLocked(BackgroundID))
	assert.False(t, s.ConsumeReset())

	s.RequestReset()
	s.RequestReset()
	assert.True(t, s.ConsumeReset())
	assert.False(t, s.ConsumeReset(), "flag is cleared by the first read")
}

func TestSessionStateOccupancy(t *testing.T) {
	s := NewSessionState()
	_, ok := s.Occupant(image.Pt(423, 270))
	assert.False(t, ok)

	s.Occupy(image.Pt(423, 270), RAM1ID)
	id, ok := s.Occupant(image.Pt(423, 270))
	require.True(t, ok)
	assert.Equal(t, RAM1ID, id)
}

func TestCatalogAtPicksTopmost(t *testing.T) {
	cat := DefaultCatalog()

	comp, ok := cat.At(image.Pt(300, 400))
	require.True(t, ok)
	assert.Equal(t, CaseID, comp.ID)

	cat.Move(CPUID, image.Pt(290, 390))
	comp, ok = cat.At(image.Pt(300, 400))
	require.True(t, ok)
	assert.Equal(t, CPUID, comp.ID)

	_, ok = cat.At(image.Pt(5, 5))
	assert.False(t, ok)
}

func TestCatalogCloneIsIndependent(t *testing.T) {
	cat := DefaultCatalog()
	clone := cat.Clone()

	clone.Move(CPUID, image.Pt(1, 1))

	orig, _ := cat.Get(CPUID)
	moved, _ := clone.Get(CPUID)
	assert.Equal(t, image.Pt(580, 350), orig.Position)
	assert.Equal(t, image.Pt(1, 1), moved.Position)
}

func TestDefaultCatalogDrawsVisuals(t *testing.T) {
	for _, comp := range DefaultCatalog().All() {
		require.NotNil(t, comp.Visual, comp.ID)
		b := comp.Visual.Bounds()
		assert.Equal(t, comp.Size.Width, b.Dx(), comp.ID)
		assert.Equal(t, comp.Size.Height, b.Dy(), comp.ID)
	}
}
