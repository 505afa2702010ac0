package glsl

import (
	"log/slog"
	"math"

	"github.com/gogpu/spvdebug/debug"
	"github.com/gogpu/spvdebug/spirv"
)

func dot(x, y debug.ShaderVariable) float32 {
	var sum float32
	for c := 0; c < int(x.Columns); c++ {
		sum += float32(x.F(c) * y.F(c))
	}
	return sum
}

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Normalize scales x by 1/|x|. The length is computed once over all columns
// of the original x, so every component is scaled by the same factor.
func Normalize(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	if !checkParams(state, spirv.GLSLstd450Normalize, params, 1) {
		return debug.ShaderVariable{}
	}

	v := state.GetSrc(params[0])

	invlength := 1 / sqrt32(dot(v, v))
	for c := 0; c < int(v.Columns); c++ {
		v.SetF(c, v.F(c)*invlength)
	}
	return v
}

// Cross returns the cross product of two 3-component vectors. Other shapes
// are a caller bug: they are logged and yield the invalid sentinel.
func Cross(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	if !checkParams(state, spirv.GLSLstd450Cross, params, 2) {
		return debug.ShaderVariable{}
	}

	x := state.GetSrc(params[0])
	y := state.GetSrc(params[1])

	if x.Columns != 3 || y.Columns != 3 {
		state.Logger().Error("assertion failed: Cross requires 3-component operands",
			slog.Int("x_columns", int(x.Columns)),
			slog.Int("y_columns", int(y.Columns)))
		return debug.ShaderVariable{}
	}

	v := x
	v.SetF(0, float32(x.F(1)*y.F(2))-float32(y.F(1)*x.F(2)))
	v.SetF(1, float32(x.F(2)*y.F(0))-float32(y.F(2)*x.F(0)))
	v.SetF(2, float32(x.F(0)*y.F(1))-float32(y.F(0)*x.F(1)))
	return v
}

// Length returns |x| as a scalar.
func Length(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	if !checkParams(state, spirv.GLSLstd450Length, params, 1) {
		return debug.ShaderVariable{}
	}

	v := state.GetSrc(params[0])
	return scalar(v, sqrt32(dot(v, v)))
}

// Distance returns |p0 - p1| as a scalar.
func Distance(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	if !checkParams(state, spirv.GLSLstd450Distance, params, 2) {
		return debug.ShaderVariable{}
	}

	p0 := state.GetSrc(params[0])
	p1 := state.GetSrc(params[1])

	d := p0
	for c := 0; c < int(d.Columns); c++ {
		d.SetF(c, p0.F(c)-p1.F(c))
	}
	return scalar(p0, sqrt32(dot(d, d)))
}

// scalar returns a one-column value with v's metadata holding f.
func scalar(v debug.ShaderVariable, f float32) debug.ShaderVariable {
	if !v.Valid() {
		return debug.ShaderVariable{}
	}
	v.Columns = 1
	v.SetF(0, f)
	return v
}

// FaceForward returns n if dot(nref, i) < 0, else -n. Operands are
// (n, i, nref).
func FaceForward(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	if !checkParams(state, spirv.GLSLstd450FaceForward, params, 3) {
		return debug.ShaderVariable{}
	}

	v := state.GetSrc(params[0])
	i := state.GetSrc(params[1])
	nref := state.GetSrc(params[2])

	if dot(nref, i) < 0 {
		return v
	}
	for c := 0; c < int(v.Columns); c++ {
		v.SetF(c, -v.F(c))
	}
	return v
}

// Reflect returns i - 2*dot(n, i)*n. Operands are (i, n).
func Reflect(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	if !checkParams(state, spirv.GLSLstd450Reflect, params, 2) {
		return debug.ShaderVariable{}
	}

	v := state.GetSrc(params[0])
	n := state.GetSrc(params[1])

	d := 2 * dot(n, v)
	for c := 0; c < int(v.Columns); c++ {
		v.SetF(c, v.F(c)-float32(d*n.F(c)))
	}
	return v
}

// Refract returns the refraction vector for incident i, normal n and the
// scalar ratio eta, or zero on total internal reflection. Operands are
// (i, n, eta).
func Refract(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	if !checkParams(state, spirv.GLSLstd450Refract, params, 3) {
		return debug.ShaderVariable{}
	}

	v := state.GetSrc(params[0])
	n := state.GetSrc(params[1])
	eta := state.GetSrc(params[2]).F(0)

	ndoti := dot(n, v)
	k := 1 - float32(float32(eta*eta)*(1-float32(ndoti*ndoti)))
	if k < 0 {
		for c := 0; c < int(v.Columns); c++ {
			v.SetF(c, 0)
		}
		return v
	}

	s := float32(eta*ndoti) + sqrt32(k)
	for c := 0; c < int(v.Columns); c++ {
		v.SetF(c, float32(eta*v.F(c))-float32(s*n.F(c)))
	}
	return v
}
