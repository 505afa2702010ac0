package debug

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShaderVariableViews(t *testing.T) {
	v := NewFloat(-2, 0.5)

	assert.Equal(t, VarTypeFloat, v.Type)
	assert.Equal(t, uint8(2), v.Columns)
	assert.Equal(t, uint32(0xC0000000), v.U(0))
	assert.Equal(t, int32(-0x40000000), v.I(0))

	// Writing through one view is visible through the others.
	v.SetU(1, math.Float32bits(3))
	assert.Equal(t, float32(3), v.F(1))

	v.SetI(0, -1)
	assert.Equal(t, uint32(0xFFFFFFFF), v.U(0))
	assert.True(t, math.IsNaN(float64(v.F(0))))
}

func TestShaderVariableConstructors(t *testing.T) {
	assert.Equal(t, VarTypeSInt, NewInt(1).Type)
	assert.Equal(t, VarTypeUInt, NewUint(1, 2, 3, 4).Type)
	assert.Equal(t, uint8(4), NewUint(1, 2, 3, 4).Columns)

	assert.Panics(t, func() { NewFloat() })
	assert.Panics(t, func() { NewUint(1, 2, 3, 4, 5) })
}

func TestShaderVariableSentinel(t *testing.T) {
	var v ShaderVariable
	assert.False(t, v.Valid())
	assert.Equal(t, "<invalid>", v.String())
	assert.True(t, v.Equal(ShaderVariable{}))
}

func TestShaderVariableEqual(t *testing.T) {
	a := NewFloat(1, 2)
	a.Name = "a"
	b := NewFloat(1, 2)
	b.Name = "b"

	assert.True(t, a.Equal(b), "names are ignored")
	assert.False(t, a.Equal(NewFloat(1, 2, 0)))
	assert.False(t, a.Equal(NewUint(a.U(0), a.U(1))))

	nan := NewFloat(float32(math.NaN()))
	assert.True(t, nan.Equal(nan))
}

func TestShaderVariableString(t *testing.T) {
	tests := []struct {
		v    ShaderVariable
		want string
	}{
		{NewFloat(1, 0.5, -2), "float3(1, 0.5, -2)"},
		{NewFloat(0.1), "float(0.1)"},
		{NewInt(-3, 4), "int2(-3, 4)"},
		{NewUint(4294967294), "uint(4294967294)"},
		{ShaderVariable{Columns: 1}, "unknown(0x00000000)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.v.String())
	}
}
