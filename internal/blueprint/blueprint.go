// Package blueprint decodes the HCL description of a build: the drop zones of
// the placement table and the ordered steps the validator checks against.
package blueprint

import (
	_ "embed"
	"errors"
	"fmt"
	"image"
	"os"
	"sort"

	"pc-builder/internal/board"
	"pc-builder/internal/models"
	"pc-builder/internal/validator"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

//go:embed default.hcl
var defaultSource []byte

const defaultName = "default.hcl"

// ErrInvalidBlueprint wraps every semantic error found after decoding
var ErrInvalidBlueprint = errors.New("invalid blueprint")

// Blueprint is a decoded, checked build description
type Blueprint struct {
	Name  string
	Table *board.Table
	Steps []validator.Step
}

type hclFile struct {
	Zones []*hclZone `hcl:"zone,block"`
	Steps []*hclStep `hcl:"step,block"`
}

type hclZone struct {
	Name  string `hcl:"name,label"`
	Steps []int  `hcl:"steps"`
	Min   []int  `hcl:"min"`
	Max   []int  `hcl:"max"`
	Snap  []int  `hcl:"snap"`
}

type hclStep struct {
	Name       string   `hcl:"name,label"`
	Index      int      `hcl:"index"`
	Part       string   `hcl:"part"`
	Zones      []string `hcl:"zones"`
	Correct    string   `hcl:"correct"`
	WrongPart  string   `hcl:"wrong_part"`
	WrongPlace string   `hcl:"wrong_place"`
}

// Default returns the embedded blueprint
func Default() (*Blueprint, error) {
	return Parse(defaultSource, defaultName)
}

// Load reads the blueprint at path, or the embedded one when path is empty
func Load(path string) (*Blueprint, error) {
	if path == "" {
		return Default()
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read blueprint %s: %w", path, err)
	}
	return Parse(src, path)
}

// Parse decodes HCL source; name is used in diagnostics
func Parse(src []byte, name string) (*Blueprint, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse blueprint %s: %w", name, diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode blueprint %s: %w", name, diags)
	}

	bp, err := build(&parsed)
	if err != nil {
		return nil, fmt.Errorf("blueprint %s: %w", name, err)
	}
	bp.Name = name
	return bp, nil
}

func build(parsed *hclFile) (*Blueprint, error) {
	if len(parsed.Steps) == 0 {
		return nil, fmt.Errorf("%w: no steps defined", ErrInvalidBlueprint)
	}

	zones := make([]board.Zone, 0, len(parsed.Zones))
	byName := make(map[string]board.Zone, len(parsed.Zones))
	for _, hz := range parsed.Zones {
		z, err := convertZone(hz)
		if err != nil {
			return nil, err
		}
		if _, dup := byName[z.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate zone %q", ErrInvalidBlueprint, z.Name)
		}
		byName[z.Name] = z
		zones = append(zones, z)
	}

	hsteps := append([]*hclStep(nil), parsed.Steps...)
	sort.SliceStable(hsteps, func(i, j int) bool { return hsteps[i].Index < hsteps[j].Index })

	steps := make([]validator.Step, 0, len(hsteps))
	for i, hs := range hsteps {
		if hs.Index != i+1 {
			return nil, fmt.Errorf("%w: step %q has index %d, want %d",
				ErrInvalidBlueprint, hs.Name, hs.Index, i+1)
		}
		if hs.Part == "" {
			return nil, fmt.Errorf("%w: step %q names no part", ErrInvalidBlueprint, hs.Name)
		}
		if len(hs.Zones) == 0 {
			return nil, fmt.Errorf("%w: step %q accepts no zone", ErrInvalidBlueprint, hs.Name)
		}

		accepted := make([]image.Point, 0, len(hs.Zones))
		for _, zn := range hs.Zones {
			z, ok := byName[zn]
			if !ok {
				return nil, fmt.Errorf("%w: step %q references unknown zone %q",
					ErrInvalidBlueprint, hs.Name, zn)
			}
			if !z.AppliesTo(hs.Index) {
				return nil, fmt.Errorf("%w: zone %q is not live at step %d",
					ErrInvalidBlueprint, zn, hs.Index)
			}
			accepted = append(accepted, z.Snap)
		}

		steps = append(steps, validator.Step{
			Index:      hs.Index,
			Name:       hs.Name,
			Part:       hs.Part,
			Accepted:   accepted,
			Correct:    hs.Correct,
			WrongPart:  hs.WrongPart,
			WrongPlace: hs.WrongPlace,
		})
	}

	return &Blueprint{
		Table: board.NewTable(zones...),
		Steps: steps,
	}, nil
}

func convertZone(hz *hclZone) (board.Zone, error) {
	pair := func(field string, v []int) (image.Point, error) {
		if len(v) != 2 {
			return image.Point{}, fmt.Errorf("%w: zone %q %s needs 2 values, got %d",
				ErrInvalidBlueprint, hz.Name, field, len(v))
		}
		return image.Pt(v[0], v[1]), nil
	}

	steps, err := pair("steps", hz.Steps)
	if err != nil {
		return board.Zone{}, err
	}
	if steps.X < 1 || steps.Y < steps.X {
		return board.Zone{}, fmt.Errorf("%w: zone %q has step range [%d, %d]",
			ErrInvalidBlueprint, hz.Name, steps.X, steps.Y)
	}
	lo, err := pair("min", hz.Min)
	if err != nil {
		return board.Zone{}, err
	}
	hi, err := pair("max", hz.Max)
	if err != nil {
		return board.Zone{}, err
	}
	snap, err := pair("snap", hz.Snap)
	if err != nil {
		return board.Zone{}, err
	}

	return board.Zone{
		Name:      hz.Name,
		FirstStep: steps.X,
		LastStep:  steps.Y,
		Bounds:    models.NewRect(lo.X, lo.Y, hi.X, hi.Y),
		Snap:      snap,
	}, nil
}
