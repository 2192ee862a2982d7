// Package report summarizes a finished session and encodes the summary as
// JSON, YAML or TOML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/search"
	"github.com/katalvlaran/lvmaze/session"
)

// ErrUnknownFormat indicates an unsupported encoding name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Report is the serializable outcome of one run.
type Report struct {
	Width   int     `json:"width" yaml:"width" toml:"width"`
	Height  int     `json:"height" yaml:"height" toml:"height"`
	Seed    int64   `json:"seed" yaml:"seed" toml:"seed"`
	Edges   int     `json:"edges" yaml:"edges" toml:"edges"`
	Ticks   int     `json:"ticks" yaml:"ticks" toml:"ticks"`
	Display string  `json:"display" yaml:"display" toml:"display"`
	Search  []Agent `json:"search,omitempty" yaml:"search,omitempty" toml:"search,omitempty"`
	Player  *Player `json:"player,omitempty" yaml:"player,omitempty" toml:"player,omitempty"`
}

// Agent describes one search engine.
type Agent struct {
	Strategy    string   `json:"strategy" yaml:"strategy" toml:"strategy"`
	State       string   `json:"state" yaml:"state" toml:"state"`
	Steps       int      `json:"steps" yaml:"steps" toml:"steps"`
	WastedSteps int      `json:"wasted_steps" yaml:"wasted_steps" toml:"wasted_steps"`
	Visited     int      `json:"visited" yaml:"visited" toml:"visited"`
	PathLength  int      `json:"path_length" yaml:"path_length" toml:"path_length"`
	WrongMoves  int      `json:"wrong_moves" yaml:"wrong_moves" toml:"wrong_moves"`
	Path        []string `json:"path,omitempty" yaml:"path,omitempty" toml:"path,omitempty"`
}

// Player describes the manual agent.
type Player struct {
	State    string   `json:"state" yaml:"state" toml:"state"`
	Position string   `json:"position" yaml:"position" toml:"position"`
	Moves    int      `json:"moves" yaml:"moves" toml:"moves"`
	Won      bool     `json:"won" yaml:"won" toml:"won"`
	Route    []string `json:"route,omitempty" yaml:"route,omitempty" toml:"route,omitempty"`
}

// FromSession captures s. Engines that were never armed are omitted; the
// player is included once it has moved. withPaths adds full vertex lists.
func FromSession(s *session.Session, withPaths bool) Report {
	r := Report{
		Width:   s.Width(),
		Height:  s.Height(),
		Seed:    s.Seed(),
		Edges:   s.Maze().EdgeCount(),
		Ticks:   s.Ticks(),
		Display: s.Display().String(),
	}
	for _, e := range []*search.Engine{s.DepthFirst(), s.BreadthFirst()} {
		if e == nil {
			continue
		}
		a := Agent{
			Strategy:    e.Strategy().String(),
			State:       e.State().String(),
			Steps:       e.Steps(),
			WastedSteps: e.WastedSteps(),
			Visited:     len(e.Visited()),
			PathLength:  len(e.Path()),
			WrongMoves:  e.WrongMoves(),
		}
		if withPaths {
			a.Path = vertexStrings(e.Path())
		}
		r.Search = append(r.Search, a)
	}
	if p := s.Player(); p.Moves() > 0 {
		pl := &Player{
			State:    p.State().String(),
			Position: p.Position().String(),
			Moves:    p.Moves(),
			Won:      p.Won(),
		}
		if withPaths {
			route := p.Animator()
			if len(route) == 0 {
				route = p.History()
			}
			pl.Route = vertexStrings(route)
		}
		r.Player = pl
	}
	return r
}

// Encode writes r to w in the named format: json, yaml or toml.
func Encode(w io.Writer, format string, r Report) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(r)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func vertexStrings(vs []grid.Vertex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	return out
}
