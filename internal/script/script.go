// Package script loads and runs TOML debug scripts: initial register
// values for a set of lanes and a list of extended instructions to step.
//
//	lanes = 2
//	set = "GLSL.std.450"
//
//	[registers]
//	1 = "f:1,-2,3"
//	2 = "u:0xFFFFFFFE,1"
//
//	[[lane]]
//	registers = { 1 = "f:4,5,6" }
//
//	[[step]]
//	inst = "FAbs"
//	result = 10
//	operands = [1]
package script

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/spvdebug/debug"
	"github.com/gogpu/spvdebug/spirv"
)

// Script is a parsed debug script.
type Script struct {
	// Lanes is the number of lanes to run. It is raised to len(Lane) when
	// more per-lane overrides are given.
	Lanes int `toml:"lanes"`

	// Set is the default instruction set of every step.
	Set string `toml:"set"`

	// Registers are bound on every lane before the first step.
	Registers map[string]string `toml:"registers"`

	// Lane holds per-lane register overrides, indexed by lane.
	Lane []LaneConfig `toml:"lane"`

	Steps []Step `toml:"step"`

	// Path is the file the script was loaded from (set at load time).
	Path string `toml:"-"`
}

// LaneConfig overrides registers of a single lane.
type LaneConfig struct {
	Registers map[string]string `toml:"registers"`
}

// Step is one OpExtInst.
type Step struct {
	Set      string   `toml:"set"`
	Inst     string   `toml:"inst"`
	Result   uint32   `toml:"result"`
	Operands []uint32 `toml:"operands"`
}

// Importer resolves instruction set import names.
type Importer interface {
	Import(name string) (*debug.ExtInstDispatcher, error)
}

// Load parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	s.Path = path
	return s, nil
}

// Parse decodes a script and applies defaults.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	// Defaults
	if s.Lanes < len(s.Lane) {
		s.Lanes = len(s.Lane)
	}
	if s.Lanes < 1 {
		s.Lanes = 1
	}
	if s.Set == "" {
		s.Set = spirv.ExtGLSLStd450
	}
	for i := range s.Steps {
		if s.Steps[i].Set == "" {
			s.Steps[i].Set = s.Set
		}
	}

	return &s, nil
}

// ParseValue parses a register literal: a view prefix ("f", "i" or "u"), a
// colon, and one to four comma separated components. Integers accept Go
// base prefixes such as 0x.
func ParseValue(s string) (debug.ShaderVariable, error) {
	view, list, ok := strings.Cut(s, ":")
	if !ok {
		return debug.ShaderVariable{}, fmt.Errorf("value %q: missing view prefix", s)
	}

	fields := strings.Split(list, ",")
	if len(fields) < 1 || len(fields) > debug.MaxComponents {
		return debug.ShaderVariable{}, fmt.Errorf("value %q: %d components, want 1..%d", s, len(fields), debug.MaxComponents)
	}

	switch strings.TrimSpace(view) {
	case "f":
		components := make([]float32, len(fields))
		for c, f := range fields {
			x, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
			if err != nil {
				return debug.ShaderVariable{}, fmt.Errorf("value %q: %w", s, err)
			}
			components[c] = float32(x)
		}
		return debug.NewFloat(components...), nil
	case "i":
		components := make([]int32, len(fields))
		for c, f := range fields {
			x, err := strconv.ParseInt(strings.TrimSpace(f), 0, 32)
			if err != nil {
				return debug.ShaderVariable{}, fmt.Errorf("value %q: %w", s, err)
			}
			components[c] = int32(x)
		}
		return debug.NewInt(components...), nil
	case "u":
		components := make([]uint32, len(fields))
		for c, f := range fields {
			x, err := strconv.ParseUint(strings.TrimSpace(f), 0, 32)
			if err != nil {
				return debug.ShaderVariable{}, fmt.Errorf("value %q: %w", s, err)
			}
			components[c] = uint32(x)
		}
		return debug.NewUint(components...), nil
	default:
		return debug.ShaderVariable{}, fmt.Errorf("value %q: unknown view %q, want f, i or u", s, view)
	}
}

func bindRegisters(lane *debug.Lane, registers map[string]string) error {
	for key, literal := range registers {
		id, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			return fmt.Errorf("register %q: not an id", key)
		}
		v, err := ParseValue(literal)
		if err != nil {
			return fmt.Errorf("register %d: %w", id, err)
		}
		v.Name = "_" + key
		lane.SetSrc(debug.ID(id), v)
	}
	return nil
}

// resolved is a Step bound to its dispatcher and opcode.
type resolved struct {
	set    *debug.ExtInstDispatcher
	op     uint32
	result debug.ID
	params []debug.ID
}

func (s *Script) resolve(sets Importer) ([]resolved, error) {
	steps := make([]resolved, len(s.Steps))
	for i, step := range s.Steps {
		set, err := sets.Import(step.Set)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		op, ok := set.Lookup(step.Inst)
		if !ok {
			return nil, fmt.Errorf("step %d: %w", i, &debug.Error{
				Kind:    debug.ErrUnknownInstruction,
				Set:     step.Set,
				Message: strconv.Quote(step.Inst) + " is not a member of the set",
			})
		}

		params := make([]debug.ID, len(step.Operands))
		for j, id := range step.Operands {
			params[j] = debug.ID(id)
		}
		steps[i] = resolved{set: set, op: op, result: debug.ID(step.Result), params: params}
	}
	return steps, nil
}

// Run executes the script on s.Lanes lanes concurrently and returns them
// once every lane has finished.
func Run(ctx context.Context, sets Importer, s *Script, logger *slog.Logger) ([]*debug.Lane, error) {
	steps, err := s.resolve(sets)
	if err != nil {
		return nil, err
	}

	lanes := make([]*debug.Lane, s.Lanes)
	for i := range lanes {
		lanes[i] = debug.NewLane(i, logger)
		if err := bindRegisters(lanes[i], s.Registers); err != nil {
			return nil, err
		}
		if i < len(s.Lane) {
			if err := bindRegisters(lanes[i], s.Lane[i].Registers); err != nil {
				return nil, fmt.Errorf("lane %d: %w", i, err)
			}
		}
	}

	err = debug.RunLanes(ctx, lanes, func(ctx context.Context, lane *debug.Lane) error {
		for i, step := range steps {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := lane.ExecuteExtInst(step.set, step.result, step.op, step.params); err != nil {
				return fmt.Errorf("lane %d step %d: %w", lane.Index(), i, err)
			}
			lane.Logger().Debug("step",
				slog.String("inst", step.set.OpName(step.op)),
				slog.String("result", lane.GetSrc(step.result).String()))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lanes, nil
}
