package glsl

import (
	"math"

	"github.com/gogpu/spvdebug/debug"
	"github.com/gogpu/spvdebug/spirv"
)

// FAbs returns |x| per component.
func FAbs(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450FAbs, params, fabs)
}

func fabs(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}

// SAbs returns |x| per signed component. The most negative value wraps to
// itself.
func SAbs(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryS(state, spirv.GLSLstd450SAbs, params, func(x int32) int32 {
		if x < 0 {
			return -x
		}
		return x
	})
}

// FSign returns 1, -1 or 0 per component. NaN yields 0.
func FSign(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450FSign, params, func(x float32) float32 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	})
}

// SSign returns 1, -1 or 0 per signed component.
func SSign(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryS(state, spirv.GLSLstd450SSign, params, func(x int32) int32 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	})
}

// Floor rounds every component toward negative infinity.
func Floor(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450Floor, params, f64(math.Floor))
}

// Ceil rounds every component toward positive infinity.
func Ceil(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450Ceil, params, f64(math.Ceil))
}

// Round rounds to nearest, halves away from zero.
func Round(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450Round, params, f64(math.Round))
}

// RoundEven rounds to nearest, halves to even.
func RoundEven(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450RoundEven, params, f64(math.RoundToEven))
}

// Trunc rounds every component toward zero.
func Trunc(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450Trunc, params, f64(math.Trunc))
}

// Fract returns x - floor(x).
func Fract(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450Fract, params, func(x float32) float32 {
		return x - float32(math.Floor(float64(x)))
	})
}

// FMin returns y < x ? y : x per component. See debug.GLSLMin for NaN
// behaviour.
func FMin(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return binaryF(state, spirv.GLSLstd450FMin, params, debug.GLSLMin[float32])
}

// UMin is FMin over the unsigned view.
func UMin(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return binaryU(state, spirv.GLSLstd450UMin, params, debug.GLSLMin[uint32])
}

// SMin is FMin over the signed view.
func SMin(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return binaryS(state, spirv.GLSLstd450SMin, params, debug.GLSLMin[int32])
}

// FMax returns x < y ? y : x per component. See debug.GLSLMax for NaN
// behaviour.
func FMax(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return binaryF(state, spirv.GLSLstd450FMax, params, debug.GLSLMax[float32])
}

// UMax is FMax over the unsigned view.
func UMax(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return binaryU(state, spirv.GLSLstd450UMax, params, debug.GLSLMax[uint32])
}

// SMax is FMax over the signed view.
func SMax(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return binaryS(state, spirv.GLSLstd450SMax, params, debug.GLSLMax[int32])
}

// FClamp returns min(max(x, minVal), maxVal) with the FMin/FMax tie-break.
func FClamp(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return ternaryF(state, spirv.GLSLstd450FClamp, params, debug.GLSLClamp[float32])
}

// UClamp is FClamp over the unsigned view.
func UClamp(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return ternaryU(state, spirv.GLSLstd450UClamp, params, debug.GLSLClamp[uint32])
}

// SClamp is FClamp over the signed view.
func SClamp(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return ternaryS(state, spirv.GLSLstd450SClamp, params, debug.GLSLClamp[int32])
}

// NMin is the IEEE minNum variant of FMin: a NaN operand yields the other
// operand.
func NMin(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return binaryF(state, spirv.GLSLstd450NMin, params, nmin)
}

// NMax is the IEEE maxNum variant of FMax.
func NMax(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return binaryF(state, spirv.GLSLstd450NMax, params, nmax)
}

// NClamp is NMin(NMax(x, minVal), maxVal).
func NClamp(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return ternaryF(state, spirv.GLSLstd450NClamp, params, func(x, minVal, maxVal float32) float32 {
		return nmin(nmax(x, minVal), maxVal)
	})
}

func isNaN(x float32) bool { return x != x }

func nmin(x, y float32) float32 {
	switch {
	case isNaN(x):
		return y
	case isNaN(y):
		return x
	}
	return debug.GLSLMin(x, y)
}

func nmax(x, y float32) float32 {
	switch {
	case isNaN(x):
		return y
	case isNaN(y):
		return x
	}
	return debug.GLSLMax(x, y)
}

// FMix linearly interpolates x*(1-a) + y*a per component.
func FMix(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	if !checkParams(state, spirv.GLSLstd450FMix, params, 3) {
		return debug.ShaderVariable{}
	}

	v := state.GetSrc(params[0])
	y := state.GetSrc(params[1])
	a := state.GetSrc(params[2])

	for c := 0; c < int(v.Columns); c++ {
		xf := v.F(c)
		yf := y.F(c)
		af := a.F(c)

		// Explicit rounding keeps the products from being fused.
		v.SetF(c, float32(xf*(1-af))+float32(yf*af))
	}
	return v
}

// Step returns 0 where x < edge, else 1. Operands are (edge, x).
func Step(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return binaryF(state, spirv.GLSLstd450Step, params, func(edge, x float32) float32 {
		if x < edge {
			return 0
		}
		return 1
	})
}

// SmoothStep is the Hermite interpolation between edge0 and edge1. Operands
// are (edge0, edge1, x).
func SmoothStep(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return ternaryF(state, spirv.GLSLstd450SmoothStep, params, func(edge0, edge1, x float32) float32 {
		t := debug.GLSLClamp((x-edge0)/(edge1-edge0), 0, 1)
		return float32(t*t) * (3 - float32(2*t))
	})
}

// Fma returns a*b + c with a single rounding of the product.
func Fma(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return ternaryF(state, spirv.GLSLstd450Fma, params, func(a, b, c float32) float32 {
		return float32(math.FMA(float64(a), float64(b), float64(c)))
	})
}

// Ldexp returns x * 2^exp, reading exp through the signed view.
func Ldexp(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	if !checkParams(state, spirv.GLSLstd450Ldexp, params, 2) {
		return debug.ShaderVariable{}
	}

	v := state.GetSrc(params[0])
	exp := state.GetSrc(params[1])
	for c := 0; c < int(v.Columns); c++ {
		v.SetF(c, float32(math.Ldexp(float64(v.F(c)), int(exp.I(c)))))
	}
	return v
}
