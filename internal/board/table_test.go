package board

import (
	"image"
	"testing"

	"pc-builder/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapMotherboardScenario(t *testing.T) {
	table := DefaultTable()
	got := table.Snap(1, image.Pt(300, 400), models.NewSize(260, 300))
	assert.Equal(t, image.Pt(200, 245), got)
}

func TestSnapCPUScenario(t *testing.T) {
	table := DefaultTable()
	got := table.Snap(2, image.Pt(330, 330), models.NewSize(80, 80))
	assert.Equal(t, image.Pt(315, 295), got)
}

func TestSnapZonesPerStep(t *testing.T) {
	table := DefaultTable()
	size := models.NewSize(20, 20)

	tests := []struct {
		name   string
		step   int
		cursor image.Point
		want   image.Point
	}{
		{"motherboard corner min", 1, image.Pt(150, 290), image.Pt(200, 245)},
		{"motherboard corner max", 1, image.Pt(450, 590), image.Pt(200, 245)},
		{"cpu zone inactive at step 1", 1, image.Pt(330, 330), image.Pt(200, 245)},
		{"outside all zones at step 1", 1, image.Pt(700, 330), image.Pt(690, 320)},
		{"cpu", 4, image.Pt(395, 375), image.Pt(315, 295)},
		{"memory", 3, image.Pt(270, 400), image.Pt(260, 370)},
		{"gpu", 4, image.Pt(320, 500), image.Pt(200, 370)},
		{"ram1", 5, image.Pt(425, 300), image.Pt(423, 270)},
		{"ram2", 6, image.Pt(450, 300), image.Pt(443, 270)},
		{"motherboard zone inactive later", 2, image.Pt(160, 560), image.Pt(150, 550)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Snap(tt.step, tt.cursor, size))
		})
	}
}

func TestSnapDefaultCentersOnCursor(t *testing.T) {
	table := DefaultTable()
	got := table.Snap(2, image.Pt(700, 650), models.NewSize(17, 140))
	assert.Equal(t, image.Pt(700-8, 650-70), got)
}

func TestMatchFirstZoneWins(t *testing.T) {
	table := DefaultTable()

	// cpu and memory share the strip x 315..350, y 370..375
	z, ok := table.Match(2, image.Pt(320, 372))
	require.True(t, ok)
	assert.Equal(t, "cpu", z.Name)

	// ram1 and ram2 share x == 440
	z, ok = table.Match(5, image.Pt(440, 300))
	require.True(t, ok)
	assert.Equal(t, "ram1", z.Name)
}

func TestOverlapsReportsSharedEdges(t *testing.T) {
	pairs := DefaultTable().Overlaps()
	assert.ElementsMatch(t, [][2]string{{"cpu", "memory"}, {"ram1", "ram2"}}, pairs)
}

func TestOverlapsIgnoresDisjointSteps(t *testing.T) {
	table := NewTable(
		Zone{Name: "a", FirstStep: 1, LastStep: 1, Bounds: models.NewRect(0, 0, 10, 10)},
		Zone{Name: "b", FirstStep: 2, LastStep: 3, Bounds: models.NewRect(0, 0, 10, 10)},
	)
	assert.Empty(t, table.Overlaps())
	assert.Equal(t, 3, table.Steps())
}
