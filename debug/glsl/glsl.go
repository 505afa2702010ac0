// Package glsl executes the GLSL.std.450 extended instruction set.
//
// Every instruction is a debug.ExtInstFunc. Component-wise instructions
// apply to components [0, Columns) of their operands and return a copy of
// the first operand with the results written in, so the result carries the
// first operand's name and type metadata.
package glsl

import (
	"github.com/gogpu/spvdebug/debug"
	"github.com/gogpu/spvdebug/spirv"
)

var instructions = map[spirv.GLSLstd450]debug.ExtInstFunc{
	spirv.GLSLstd450Round:           Round,
	spirv.GLSLstd450RoundEven:       RoundEven,
	spirv.GLSLstd450Trunc:           Trunc,
	spirv.GLSLstd450FAbs:            FAbs,
	spirv.GLSLstd450SAbs:            SAbs,
	spirv.GLSLstd450FSign:           FSign,
	spirv.GLSLstd450SSign:           SSign,
	spirv.GLSLstd450Floor:           Floor,
	spirv.GLSLstd450Ceil:            Ceil,
	spirv.GLSLstd450Fract:           Fract,
	spirv.GLSLstd450Radians:         Radians,
	spirv.GLSLstd450Degrees:         Degrees,
	spirv.GLSLstd450Sin:             Sin,
	spirv.GLSLstd450Cos:             Cos,
	spirv.GLSLstd450Tan:             Tan,
	spirv.GLSLstd450Asin:            Asin,
	spirv.GLSLstd450Acos:            Acos,
	spirv.GLSLstd450Atan:            Atan,
	spirv.GLSLstd450Sinh:            Sinh,
	spirv.GLSLstd450Cosh:            Cosh,
	spirv.GLSLstd450Tanh:            Tanh,
	spirv.GLSLstd450Asinh:           Asinh,
	spirv.GLSLstd450Acosh:           Acosh,
	spirv.GLSLstd450Atanh:           Atanh,
	spirv.GLSLstd450Atan2:           Atan2,
	spirv.GLSLstd450Pow:             Pow,
	spirv.GLSLstd450Exp:             Exp,
	spirv.GLSLstd450Log:             Log,
	spirv.GLSLstd450Exp2:            Exp2,
	spirv.GLSLstd450Log2:            Log2,
	spirv.GLSLstd450Sqrt:            Sqrt,
	spirv.GLSLstd450InverseSqrt:     InverseSqrt,
	spirv.GLSLstd450FMin:            FMin,
	spirv.GLSLstd450UMin:            UMin,
	spirv.GLSLstd450SMin:            SMin,
	spirv.GLSLstd450FMax:            FMax,
	spirv.GLSLstd450UMax:            UMax,
	spirv.GLSLstd450SMax:            SMax,
	spirv.GLSLstd450FClamp:          FClamp,
	spirv.GLSLstd450UClamp:          UClamp,
	spirv.GLSLstd450SClamp:          SClamp,
	spirv.GLSLstd450FMix:            FMix,
	spirv.GLSLstd450Step:            Step,
	spirv.GLSLstd450SmoothStep:      SmoothStep,
	spirv.GLSLstd450Fma:             Fma,
	spirv.GLSLstd450Ldexp:           Ldexp,
	spirv.GLSLstd450PackSnorm4x8:    PackSnorm4x8,
	spirv.GLSLstd450PackUnorm4x8:    PackUnorm4x8,
	spirv.GLSLstd450PackSnorm2x16:   PackSnorm2x16,
	spirv.GLSLstd450PackUnorm2x16:   PackUnorm2x16,
	spirv.GLSLstd450PackHalf2x16:    PackHalf2x16,
	spirv.GLSLstd450UnpackSnorm2x16: UnpackSnorm2x16,
	spirv.GLSLstd450UnpackUnorm2x16: UnpackUnorm2x16,
	spirv.GLSLstd450UnpackHalf2x16:  UnpackHalf2x16,
	spirv.GLSLstd450UnpackSnorm4x8:  UnpackSnorm4x8,
	spirv.GLSLstd450UnpackUnorm4x8:  UnpackUnorm4x8,
	spirv.GLSLstd450Length:          Length,
	spirv.GLSLstd450Distance:        Distance,
	spirv.GLSLstd450Cross:           Cross,
	spirv.GLSLstd450Normalize:       Normalize,
	spirv.GLSLstd450FaceForward:     FaceForward,
	spirv.GLSLstd450Reflect:         Reflect,
	spirv.GLSLstd450Refract:         Refract,
	spirv.GLSLstd450FindILsb:        FindILsb,
	spirv.GLSLstd450FindSMsb:        FindSMsb,
	spirv.GLSLstd450FindUMsb:        FindUMsb,
	spirv.GLSLstd450NMin:            NMin,
	spirv.GLSLstd450NMax:            NMax,
	spirv.GLSLstd450NClamp:          NClamp,
}

// ConfigureGLSLStd450 names every GLSL.std.450 opcode in extinst and assigns
// the implemented ones. Matrix, struct-returning, 64-bit and interpolation
// instructions stay unassigned.
func ConfigureGLSLStd450(extinst *debug.ExtInstDispatcher) {
	extinst.Resize(int(spirv.GLSLstd450Max), func(op uint32) string {
		return spirv.GLSLstd450(op).String()
	})
	for op, fn := range instructions {
		extinst.Set(uint32(op), fn)
	}
}

// NewGLSLStd450 returns a sealed GLSL.std.450 dispatcher.
func NewGLSLStd450() *debug.ExtInstDispatcher {
	return debug.NewExtInstDispatcher(spirv.ExtGLSLStd450, ConfigureGLSLStd450)
}

func checkParams(state debug.ThreadState, inst spirv.GLSLstd450, params []debug.ID, n int) bool {
	return debug.CheckParams(state, inst.String(), params, n)
}

func unaryF(state debug.ThreadState, inst spirv.GLSLstd450, params []debug.ID, fn func(x float32) float32) debug.ShaderVariable {
	if !checkParams(state, inst, params, 1) {
		return debug.ShaderVariable{}
	}

	v := state.GetSrc(params[0])
	for c := 0; c < int(v.Columns); c++ {
		v.SetF(c, fn(v.F(c)))
	}
	return v
}

func binaryF(state debug.ThreadState, inst spirv.GLSLstd450, params []debug.ID, fn func(x, y float32) float32) debug.ShaderVariable {
	if !checkParams(state, inst, params, 2) {
		return debug.ShaderVariable{}
	}

	v := state.GetSrc(params[0])
	y := state.GetSrc(params[1])
	for c := 0; c < int(v.Columns); c++ {
		v.SetF(c, fn(v.F(c), y.F(c)))
	}
	return v
}

func ternaryF(state debug.ThreadState, inst spirv.GLSLstd450, params []debug.ID, fn func(x, y, z float32) float32) debug.ShaderVariable {
	if !checkParams(state, inst, params, 3) {
		return debug.ShaderVariable{}
	}

	v := state.GetSrc(params[0])
	y := state.GetSrc(params[1])
	z := state.GetSrc(params[2])
	for c := 0; c < int(v.Columns); c++ {
		v.SetF(c, fn(v.F(c), y.F(c), z.F(c)))
	}
	return v
}

func unaryS(state debug.ThreadState, inst spirv.GLSLstd450, params []debug.ID, fn func(x int32) int32) debug.ShaderVariable {
	if !checkParams(state, inst, params, 1) {
		return debug.ShaderVariable{}
	}

	v := state.GetSrc(params[0])
	for c := 0; c < int(v.Columns); c++ {
		v.SetI(c, fn(v.I(c)))
	}
	return v
}

func binaryS(state debug.ThreadState, inst spirv.GLSLstd450, params []debug.ID, fn func(x, y int32) int32) debug.ShaderVariable {
	if !checkParams(state, inst, params, 2) {
		return debug.ShaderVariable{}
	}

	v := state.GetSrc(params[0])
	y := state.GetSrc(params[1])
	for c := 0; c < int(v.Columns); c++ {
		v.SetI(c, fn(v.I(c), y.I(c)))
	}
	return v
}

func ternaryS(state debug.ThreadState, inst spirv.GLSLstd450, params []debug.ID, fn func(x, y, z int32) int32) debug.ShaderVariable {
	if !checkParams(state, inst, params, 3) {
		return debug.ShaderVariable{}
	}

	v := state.GetSrc(params[0])
	y := state.GetSrc(params[1])
	z := state.GetSrc(params[2])
	for c := 0; c < int(v.Columns); c++ {
		v.SetI(c, fn(v.I(c), y.I(c), z.I(c)))
	}
	return v
}

func unaryU(state debug.ThreadState, inst spirv.GLSLstd450, params []debug.ID, fn func(x uint32) uint32) debug.ShaderVariable {
	if !checkParams(state, inst, params, 1) {
		return debug.ShaderVariable{}
	}

	v := state.GetSrc(params[0])
	for c := 0; c < int(v.Columns); c++ {
		v.SetU(c, fn(v.U(c)))
	}
	return v
}

func binaryU(state debug.ThreadState, inst spirv.GLSLstd450, params []debug.ID, fn func(x, y uint32) uint32) debug.ShaderVariable {
	if !checkParams(state, inst, params, 2) {
		return debug.ShaderVariable{}
	}

	v := state.GetSrc(params[0])
	y := state.GetSrc(params[1])
	for c := 0; c < int(v.Columns); c++ {
		v.SetU(c, fn(v.U(c), y.U(c)))
	}
	return v
}

func ternaryU(state debug.ThreadState, inst spirv.GLSLstd450, params []debug.ID, fn func(x, y, z uint32) uint32) debug.ShaderVariable {
	if !checkParams(state, inst, params, 3) {
		return debug.ShaderVariable{}
	}

	v := state.GetSrc(params[0])
	y := state.GetSrc(params[1])
	z := state.GetSrc(params[2])
	for c := 0; c < int(v.Columns); c++ {
		v.SetU(c, fn(v.U(c), y.U(c), z.U(c)))
	}
	return v
}

// f64 lifts a float64 math function to float32.
func f64(fn func(float64) float64) func(float32) float32 {
	return func(x float32) float32 {
		return float32(fn(float64(x)))
	}
}
