package glsl

import (
	"math"

	"github.com/gogpu/spvdebug/debug"
	"github.com/gogpu/spvdebug/spirv"
	"github.com/x448/float16"
)

// pack quantizes components [0, n) of the single float operand with quant
// and packs them little end first into a uint scalar of width bits each.
func pack(state debug.ThreadState, inst spirv.GLSLstd450, params []debug.ID, n int, width uint, quant func(float32) uint32) debug.ShaderVariable {
	if !checkParams(state, inst, params, 1) {
		return debug.ShaderVariable{}
	}

	v := state.GetSrc(params[0])
	if !v.Valid() {
		return debug.ShaderVariable{}
	}
	mask := uint32(1)<<width - 1

	var packed uint32
	for c := 0; c < n && c < int(v.Columns); c++ {
		packed |= (quant(v.F(c)) & mask) << (uint(c) * width)
	}

	r := debug.NewUint(packed)
	r.Name = v.Name
	return r
}

// unpack splits the uint scalar operand into n fields of width bits and
// returns them as a float vector.
func unpack(state debug.ThreadState, inst spirv.GLSLstd450, params []debug.ID, n int, width uint, dequant func(uint32) float32) debug.ShaderVariable {
	if !checkParams(state, inst, params, 1) {
		return debug.ShaderVariable{}
	}

	v := state.GetSrc(params[0])
	if !v.Valid() {
		return debug.ShaderVariable{}
	}
	packed := v.U(0)
	mask := uint32(1)<<width - 1

	components := make([]float32, n)
	for c := range components {
		components[c] = dequant((packed >> (uint(c) * width)) & mask)
	}

	r := debug.NewFloat(components...)
	r.Name = v.Name
	return r
}

func unorm(scale float32) func(float32) uint32 {
	return func(x float32) uint32 {
		return uint32(math.Round(float64(debug.GLSLClamp(x, 0, 1) * scale)))
	}
}

func snorm(scale float32) func(float32) uint32 {
	return func(x float32) uint32 {
		return uint32(int32(math.Round(float64(debug.GLSLClamp(x, -1, 1) * scale))))
	}
}

// PackUnorm4x8 packs a 4-component float vector as four unsigned 8-bit
// normalized fields, the first component in the low byte.
func PackUnorm4x8(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return pack(state, spirv.GLSLstd450PackUnorm4x8, params, 4, 8, unorm(255))
}

// PackSnorm4x8 packs a 4-component float vector as four signed 8-bit
// normalized fields, the first component in the low byte.
func PackSnorm4x8(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return pack(state, spirv.GLSLstd450PackSnorm4x8, params, 4, 8, snorm(127))
}

// PackUnorm2x16 packs a 2-component float vector as two unsigned 16-bit
// normalized fields.
func PackUnorm2x16(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return pack(state, spirv.GLSLstd450PackUnorm2x16, params, 2, 16, unorm(65535))
}

// PackSnorm2x16 packs a 2-component float vector as two signed 16-bit
// normalized fields.
func PackSnorm2x16(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return pack(state, spirv.GLSLstd450PackSnorm2x16, params, 2, 16, snorm(32767))
}

// PackHalf2x16 converts a 2-component float vector to IEEE binary16 halves,
// the first component in the low 16 bits.
func PackHalf2x16(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return pack(state, spirv.GLSLstd450PackHalf2x16, params, 2, 16, func(x float32) uint32 {
		return uint32(float16.Fromfloat32(x).Bits())
	})
}

// UnpackUnorm4x8 is the inverse of PackUnorm4x8.
func UnpackUnorm4x8(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unpack(state, spirv.GLSLstd450UnpackUnorm4x8, params, 4, 8, func(u uint32) float32 {
		return float32(u) / 255
	})
}

// UnpackSnorm4x8 is the inverse of PackSnorm4x8. Fields clamp to [-1, 1].
func UnpackSnorm4x8(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unpack(state, spirv.GLSLstd450UnpackSnorm4x8, params, 4, 8, func(u uint32) float32 {
		return debug.GLSLClamp(float32(int8(u))/127, -1, 1)
	})
}

// UnpackUnorm2x16 is the inverse of PackUnorm2x16.
func UnpackUnorm2x16(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unpack(state, spirv.GLSLstd450UnpackUnorm2x16, params, 2, 16, func(u uint32) float32 {
		return float32(u) / 65535
	})
}

// UnpackSnorm2x16 is the inverse of PackSnorm2x16. Fields clamp to [-1, 1].
func UnpackSnorm2x16(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unpack(state, spirv.GLSLstd450UnpackSnorm2x16, params, 2, 16, func(u uint32) float32 {
		return debug.GLSLClamp(float32(int16(u))/32767, -1, 1)
	})
}

// UnpackHalf2x16 is the inverse of PackHalf2x16.
func UnpackHalf2x16(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unpack(state, spirv.GLSLstd450UnpackHalf2x16, params, 2, 16, func(u uint32) float32 {
		return float16.Frombits(uint16(u)).Float32()
	})
}
