package blueprint

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"pc-builder/internal/board"
	"pc-builder/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesBuiltInTable(t *testing.T) {
	bp, err := Default()
	require.NoError(t, err)

	assert.Equal(t, board.DefaultTable().Zones(), bp.Table.Zones())
	assert.Equal(t, defaultName, bp.Name)
}

func TestDefaultSteps(t *testing.T) {
	bp, err := Default()
	require.NoError(t, err)
	require.Len(t, bp.Steps, 6)

	wantParts := []string{
		models.MotherboardID, models.CPUID, models.MemoryID,
		models.GPUID, models.RAM1ID, models.RAM2ID,
	}
	for i, s := range bp.Steps {
		assert.Equal(t, i+1, s.Index)
		assert.Equal(t, wantParts[i], s.Part)
		assert.NotEmpty(t, s.Correct, s.Name)
		assert.NotEmpty(t, s.WrongPart, s.Name)
		assert.NotEmpty(t, s.WrongPlace, s.Name)
	}

	assert.Equal(t, []image.Point{image.Pt(200, 245)}, bp.Steps[0].Accepted)
	assert.Equal(t, []image.Point{image.Pt(315, 295)}, bp.Steps[1].Accepted)
	assert.Equal(t, []image.Point{image.Pt(423, 270), image.Pt(443, 270)}, bp.Steps[5].Accepted)
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	bp, err := Load("")
	require.NoError(t, err)
	assert.Len(t, bp.Steps, 6)
}

func TestLoadFile(t *testing.T) {
	src := `
zone "tray" {
  steps = [1, 1]
  min   = [0, 0]
  max   = [10, 10]
  snap  = [5, 5]
}

step "only" {
  index       = 1
  part        = "cpuLabel"
  zones       = ["tray"]
  correct     = "ok"
  wrong_part  = "part"
  wrong_place = "place"
}
`
	path := filepath.Join(t.TempDir(), "mini.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	bp, err := Load(path)
	require.NoError(t, err)
	require.Len(t, bp.Steps, 1)
	assert.Equal(t, image.Pt(5, 5), bp.Table.Snap(1, image.Pt(3, 3), models.NewSize(2, 2)))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	assert.Error(t, err)
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte(`zone "x" {`), "broken.hcl")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidBlueprint))
}

func TestParseSemanticErrors(t *testing.T) {
	zone := `zone "z" {
  steps = [1, 1]
  min   = [0, 0]
  max   = [1, 1]
  snap  = [0, 0]
}
`
	tests := []struct {
		name string
		src  string
	}{
		{"no steps", zone},
		{"unknown zone", zone + `step "a" {
  index = 1
  part = "cpuLabel"
  zones = ["missing"]
  correct = ""
  wrong_part = ""
  wrong_place = ""
}`},
		{"index gap", zone + `step "a" {
  index = 2
  part = "cpuLabel"
  zones = ["z"]
  correct = ""
  wrong_part = ""
  wrong_place = ""
}`},
		{"zone not live", zone + `step "a" {
  index = 1
  part = "cpuLabel"
  zones = ["z"]
  correct = ""
  wrong_part = ""
  wrong_place = ""
}
step "b" {
  index = 2
  part = "gpuLabel"
  zones = ["z"]
  correct = ""
  wrong_part = ""
  wrong_place = ""
}`},
		{"bad pair", `zone "z" {
  steps = [1]
  min   = [0, 0]
  max   = [1, 1]
  snap  = [0, 0]
}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "test.hcl")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidBlueprint), err.Error())
		})
	}
}
