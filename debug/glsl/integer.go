package glsl

import (
	"math/bits"

	"github.com/gogpu/spvdebug/debug"
	"github.com/gogpu/spvdebug/spirv"
)

// FindILsb returns the bit number of the least significant set bit, or -1
// for zero.
func FindILsb(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryU(state, spirv.GLSLstd450FindILsb, params, func(x uint32) uint32 {
		if x == 0 {
			return minusOne
		}
		return uint32(bits.TrailingZeros32(x))
	})
}

// FindSMsb returns the bit number of the most significant bit that differs
// from the sign bit, or -1 for 0 and -1.
func FindSMsb(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryS(state, spirv.GLSLstd450FindSMsb, params, func(x int32) int32 {
		if x < 0 {
			x = ^x
		}
		return int32(bits.Len32(uint32(x))) - 1
	})
}

// FindUMsb returns the bit number of the most significant set bit, or -1
// for zero.
func FindUMsb(state debug.ThreadState, params []debug.ID) debug.ShaderVariable {
	return unaryU(state, spirv.GLSLstd450FindUMsb, params, func(x uint32) uint32 {
		return uint32(int32(bits.Len32(x)) - 1)
	})
}

// minusOne is -1 through the unsigned view.
const minusOne = ^uint32(0)
