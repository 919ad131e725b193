package main

import (
	"github.com/BurntSushi/toml"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/skera/levelset"
)

// scenario is the TOML description of a meshing problem: the domain
// rectangle plus an ordered list of interface shapes. Shapes fold left to
// right: union grows the fluid region, subtract carves it out.
type scenario struct {
	Domain domainConfig  `toml:"domain"`
	Shapes []shapeConfig `toml:"shapes"`
}

type domainConfig struct {
	XMin   float64 `toml:"x_min"`
	YMin   float64 `toml:"y_min"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type shapeConfig struct {
	Type string `toml:"type"` // circle | rectangle
	Op   string `toml:"op"`   // union (default) | subtract

	// circle
	CX float64 `toml:"cx"`
	CY float64 `toml:"cy"`
	R  float64 `toml:"r"`

	// rectangle
	XMin float64 `toml:"x_min"`
	YMin float64 `toml:"y_min"`
	XMax float64 `toml:"x_max"`
	YMax float64 `toml:"y_max"`
}

func loadScenario(path string) (scenario, error) {
	if path == "" {
		return scenario{}, errors.New("no scenario file given")
	}

	// defaults overlaid by whatever the file defines
	scn := scenario{
		Domain: domainConfig{Width: 1, Height: 1},
	}

	if _, err := toml.DecodeFile(path, &scn); err != nil {
		return scenario{}, errors.New("decoding scenario file failed").Wrap(err)
	}

	if scn.Domain.Width <= 0 || scn.Domain.Height <= 0 {
		return scenario{}, errors.New("scenario domain has a non-positive extent").
			WithTag("width", scn.Domain.Width).
			WithTag("height", scn.Domain.Height)
	}
	if len(scn.Shapes) == 0 {
		return scenario{}, errors.New("scenario defines no shapes")
	}

	for i, s := range scn.Shapes {
		switch s.Type {
		case "circle", "rectangle":
		default:
			return scenario{}, errors.New("unknown shape type").
				WithTag("index", i).
				WithTag("type", s.Type)
		}
		switch s.Op {
		case "", "union", "subtract":
		default:
			return scenario{}, errors.New("unknown shape op").
				WithTag("index", i).
				WithTag("op", s.Op)
		}
	}

	return scn, nil
}

// field folds the shape list into a single level-set function.
func (s scenario) field() levelset.Func {
	var f levelset.Func
	for _, shape := range s.Shapes {
		g := shape.field()

		switch {
		case f == nil:
			f = g
		case shape.Op == "subtract":
			f = levelset.Intersection(f, levelset.Complement(g))
		default:
			f = levelset.Union(f, g)
		}
	}
	return f
}

func (s shapeConfig) field() levelset.Func {
	if s.Type == "rectangle" {
		return levelset.Rectangle(s.XMin, s.YMin, s.XMax, s.YMax)
	}
	return levelset.Circle(s.CX, s.CY, s.R)
}
