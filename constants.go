package spvdebug

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/spvdebug/debug"
	"github.com/gogpu/spvdebug/spirv"
)

// scalarType is a 32-bit numeric OpType* with its vector width.
type scalarType struct {
	kind    debug.VarType
	columns int
}

// Constants evaluates the 32-bit scalar and vector OpConstant and
// OpConstantComposite declarations of module. Constants of any other type
// are skipped.
func Constants(module *spirv.Module) (map[uint32]debug.ShaderVariable, error) {
	types := make(map[uint32]scalarType)
	values := make(map[uint32]debug.ShaderVariable)

	for i, inst := range module.Instructions {
		w := inst.Words
		switch inst.Opcode {
		case spirv.OpTypeFloat:
			if len(w) >= 2 && w[1] == 32 {
				types[w[0]] = scalarType{debug.VarTypeFloat, 1}
			}
		case spirv.OpTypeInt:
			if len(w) >= 3 && w[1] == 32 {
				kind := debug.VarTypeUInt
				if w[2] != 0 {
					kind = debug.VarTypeSInt
				}
				types[w[0]] = scalarType{kind, 1}
			}
		case spirv.OpTypeVector:
			if len(w) < 3 {
				continue
			}
			if elem, ok := types[w[1]]; ok && w[2] >= 1 && w[2] <= debug.MaxComponents {
				types[w[0]] = scalarType{elem.kind, int(w[2])}
			}
		case spirv.OpConstant:
			if len(w) < 3 {
				return nil, fmt.Errorf("%s at offset 0x%X: missing value", inst.Opcode, module.Offsets[i])
			}
			t, ok := types[w[0]]
			if !ok || t.columns != 1 {
				continue
			}
			values[w[1]] = constant(t.kind, w[2])
		case spirv.OpConstantComposite:
			if len(w) < 2 {
				return nil, fmt.Errorf("%s at offset 0x%X: missing result", inst.Opcode, module.Offsets[i])
			}
			t, ok := types[w[0]]
			if !ok || t.columns == 1 {
				continue
			}
			v, err := composite(t, values, w[2:])
			if err != nil {
				return nil, fmt.Errorf("%s %%%d: %w", inst.Opcode, w[1], err)
			}
			values[w[1]] = v
		}
	}
	return values, nil
}

func constant(kind debug.VarType, bits uint32) debug.ShaderVariable {
	v := debug.NewUint(bits)
	v.Type = kind
	return v
}

func composite(t scalarType, values map[uint32]debug.ShaderVariable, constituents []uint32) (debug.ShaderVariable, error) {
	if len(constituents) != t.columns {
		return debug.ShaderVariable{}, fmt.Errorf("%d constituents for a %d-component vector", len(constituents), t.columns)
	}

	bits := make([]uint32, t.columns)
	for c, id := range constituents {
		src, ok := values[id]
		if !ok || src.Columns != 1 {
			return debug.ShaderVariable{}, fmt.Errorf("constituent %%%d is not a scalar constant", id)
		}
		bits[c] = src.U(0)
	}

	v := debug.NewUint(bits...)
	v.Type = t.kind
	return v, nil
}

// NewLane returns a lane with every constant of module bound.
func NewLane(index int, module *spirv.Module, logger *slog.Logger) (*debug.Lane, error) {
	constants, err := Constants(module)
	if err != nil {
		return nil, err
	}

	lane := debug.NewLane(index, logger)
	for id, v := range constants {
		v.Name = fmt.Sprintf("_%d", id)
		lane.SetSrc(debug.ID(id), v)
	}
	return lane, nil
}
