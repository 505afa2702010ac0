package glsl

import (
	"math"

	"github.com/gogpu/spvdebug/debug"
	"github.com/gogpu/spvdebug/spirv"
)

// Pow returns x^y per component with host pow semantics: a negative base
// with a non-integer exponent is NaN.
func Pow(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return binaryF(state, spirv.GLSLstd450Pow, params, func(x, y float32) float32 {
		return float32(math.Pow(float64(x), float64(y)))
	})
}

// Exp returns e^x per component.
func Exp(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450Exp, params, f64(math.Exp))
}

// Log returns the natural logarithm of x per component.
func Log(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450Log, params, f64(math.Log))
}

// Exp2 returns 2^x per component.
func Exp2(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450Exp2, params, f64(math.Exp2))
}

// Log2 returns the base 2 logarithm of x per component.
func Log2(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450Log2, params, f64(math.Log2))
}

// Sqrt returns the square root of x per component.
func Sqrt(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450Sqrt, params, f64(math.Sqrt))
}

// InverseSqrt returns 1/sqrt(x) per component.
func InverseSqrt(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450InverseSqrt, params, func(x float32) float32 {
		return 1 / float32(math.Sqrt(float64(x)))
	})
}

const (
	degToRad = float32(math.Pi / 180)
	radToDeg = float32(180 / math.Pi)
)

// Radians converts degrees to radians per component.
func Radians(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450Radians, params, func(x float32) float32 { return x * degToRad })
}

// Degrees converts radians to degrees per component.
func Degrees(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450Degrees, params, func(x float32) float32 { return x * radToDeg })
}

// Sin returns the sine of x per component.
func Sin(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450Sin, params, f64(math.Sin))
}

// Cos returns the cosine of x per component.
func Cos(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450Cos, params, f64(math.Cos))
}

// Tan returns the tangent of x per component.
func Tan(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450Tan, params, f64(math.Tan))
}

// Asin returns the arc sine of x per component.
func Asin(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450Asin, params, f64(math.Asin))
}

// Acos returns the arc cosine of x per component.
func Acos(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450Acos, params, f64(math.Acos))
}

// Atan returns the arc tangent of x per component.
func Atan(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450Atan, params, f64(math.Atan))
}

// Sinh returns the hyperbolic sine of x per component.
func Sinh(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450Sinh, params, f64(math.Sinh))
}

// Cosh returns the hyperbolic cosine of x per component.
func Cosh(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450Cosh, params, f64(math.Cosh))
}

// Tanh returns the hyperbolic tangent of x per component.
func Tanh(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450Tanh, params, f64(math.Tanh))
}

// Asinh returns the inverse hyperbolic sine of x per component.
func Asinh(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450Asinh, params, f64(math.Asinh))
}

// Acosh returns the inverse hyperbolic cosine of x per component.
func Acosh(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450Acosh, params, f64(math.Acosh))
}

// Atanh returns the inverse hyperbolic tangent of x per component.
func Atanh(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryF(state, spirv.GLSLstd450Atanh, params, f64(math.Atanh))
}

// Atan2 returns the arc tangent of y/x per component. Operands are (y, x).
func Atan2(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return binaryF(state, spirv.GLSLstd450Atan2, params, func(y, x float32) float32 {
		return float32(math.Atan2(float64(y), float64(x)))
	})
}
