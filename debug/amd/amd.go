// Package amd executes the SPV_AMD_shader_trinary_minmax extended
// instruction set: three-operand min, max and median per component.
//
// The set shares the GLSL.std.450 comparison semantics (debug.GLSLMin,
// debug.GLSLMax), so NaN handling matches FMin/FMax.
package amd

import (
	"github.com/gogpu/spvdebug/debug"
	"github.com/gogpu/spvdebug/spirv"
	"golang.org/x/exp/constraints"
)

// ConfigureAMDShaderTrinaryMinMax names every opcode of the set and assigns
// all nine instructions.
func ConfigureAMDShaderTrinaryMinMax(extinst *debug.ExtInstDispatcher) {
	extinst.Resize(int(spirv.AMDTrinaryMax), func(op uint32) string {
		return spirv.AMDTrinaryMinMax(op).String()
	})

	extinst.Set(uint32(spirv.AMDTrinaryFMin3AMD), FMin3)
	extinst.Set(uint32(spirv.AMDTrinaryUMin3AMD), UMin3)
	extinst.Set(uint32(spirv.AMDTrinarySMin3AMD), SMin3)
	extinst.Set(uint32(spirv.AMDTrinaryFMax3AMD), FMax3)
	extinst.Set(uint32(spirv.AMDTrinaryUMax3AMD), UMax3)
	extinst.Set(uint32(spirv.AMDTrinarySMax3AMD), SMax3)
	extinst.Set(uint32(spirv.AMDTrinaryFMid3AMD), FMid3)
	extinst.Set(uint32(spirv.AMDTrinaryUMid3AMD), UMid3)
	extinst.Set(uint32(spirv.AMDTrinarySMid3AMD), SMid3)
}

// NewAMDShaderTrinaryMinMax returns a sealed SPV_AMD_shader_trinary_minmax
// dispatcher.
func NewAMDShaderTrinaryMinMax() *debug.ExtInstDispatcher {
	return debug.NewExtInstDispatcher(spirv.ExtAMDShaderTrinaryMinMax, ConfigureAMDShaderTrinaryMinMax)
}

func min3[T constraints.Ordered](x, y, z T) T {
	return debug.GLSLMin(debug.GLSLMin(x, y), z)
}

func max3[T constraints.Ordered](x, y, z T) T {
	return debug.GLSLMax(debug.GLSLMax(x, y), z)
}

// mid3 is the median: max(min(x, y), min(max(x, y), z)).
func mid3[T constraints.Ordered](x, y, z T) T {
	return debug.GLSLMax(debug.GLSLMin(x, y), debug.GLSLMin(debug.GLSLMax(x, y), z))
}

// view reads and writes one numeric view of a ShaderVariable component.
type view[T any] struct {
	get func(v debug.ShaderVariable, c int) T
	set func(v *debug.ShaderVariable, c int, x T)
}

var (
	floatView = view[float32]{debug.ShaderVariable.F, (*debug.ShaderVariable).SetF}
	sintView  = view[int32]{debug.ShaderVariable.I, (*debug.ShaderVariable).SetI}
	uintView  = view[uint32]{debug.ShaderVariable.U, (*debug.ShaderVariable).SetU}
)

func trinary[T any](state debug.ThreadState, inst spirv.AMDTrinaryMinMax, params []debug.ID, vw view[T], fn func(x, y, z T) T) debug.ShaderVariable {
	if !debug.CheckParams(state, inst.String(), params, 3) {
		return debug.ShaderVariable{}
	}

	v := state.GetSrc(params[0])
	y := state.GetSrc(params[1])
	z := state.GetSrc(params[2])
	for c := 0; c < int(v.Columns); c++ {
		vw.set(&v, c, fn(vw.get(v, c), vw.get(y, c), vw.get(z, c)))
	}
	return v
}

// FMin3 returns the float minimum of three operands per component.
func FMin3(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return trinary(state, spirv.AMDTrinaryFMin3AMD, params, floatView, min3[float32])
}

// UMin3 returns the unsigned minimum of three operands per component.
func UMin3(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return trinary(state, spirv.AMDTrinaryUMin3AMD, params, uintView, min3[uint32])
}

// SMin3 returns the signed minimum of three operands per component.
func SMin3(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return trinary(state, spirv.AMDTrinarySMin3AMD, params, sintView, min3[int32])
}

// FMax3 returns the float maximum of three operands per component.
func FMax3(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return trinary(state, spirv.AMDTrinaryFMax3AMD, params, floatView, max3[float32])
}

// UMax3 returns the unsigned maximum of three operands per component.
func UMax3(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return trinary(state, spirv.AMDTrinaryUMax3AMD, params, uintView, max3[uint32])
}

// SMax3 returns the signed maximum of three operands per component.
func SMax3(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return trinary(state, spirv.AMDTrinarySMax3AMD, params, sintView, max3[int32])
}

// FMid3 returns the float median of three operands per component.
func FMid3(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return trinary(state, spirv.AMDTrinaryFMid3AMD, params, floatView, mid3[float32])
}

// UMid3 returns the unsigned median of three operands per component.
func UMid3(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return trinary(state, spirv.AMDTrinaryUMid3AMD, params, uintView, mid3[uint32])
}

// SMid3 returns the signed median of three operands per component.
func SMid3(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return trinary(state, spirv.AMDTrinarySMid3AMD, params, sintView, mid3[int32])
}
