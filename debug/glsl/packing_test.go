package glsl

import (
	"testing"

	"github.com/gogpu/spvdebug/debug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnorm4x8(t *testing.T) {
	got := call(PackUnorm4x8, debug.NewFloat(1, 0, 0.5, 2))
	require.Equal(t, debug.VarTypeUInt, got.Type)
	assert.Equal(t, uint32(0xFF8000FF), got.U(0))

	back := call(UnpackUnorm4x8, got)
	assert.InDeltaSlice(t, []float32{1, 0, 128.0 / 255, 1}, floats(back), 1e-6)
}

func TestPackSnorm(t *testing.T) {
	got := call(PackSnorm4x8, debug.NewFloat(-1, 1, 0, -3))
	assert.Equal(t, uint32(0x81007F81), got.U(0))
	assert.Equal(t, []float32{-1, 1, 0, -1}, floats(call(UnpackSnorm4x8, got)))

	got = call(PackSnorm2x16, debug.NewFloat(1, -1))
	assert.Equal(t, uint32(0x80017FFF), got.U(0))
	assert.Equal(t, []float32{1, -1}, floats(call(UnpackSnorm2x16, got)))

	got = call(PackUnorm2x16, debug.NewFloat(0, 1))
	assert.Equal(t, uint32(0xFFFF0000), got.U(0))
	assert.Equal(t, []float32{0, 1}, floats(call(UnpackUnorm2x16, got)))
}

func TestPackHalf2x16(t *testing.T) {
	got := call(PackHalf2x16, debug.NewFloat(1, -2))
	assert.Equal(t, uint32(0xC0003C00), got.U(0))

	for _, pair := range [][2]float32{{1.5, -2}, {0, 65504}, {0.375, -0.0078125}} {
		packed := call(PackHalf2x16, debug.NewFloat(pair[0], pair[1]))
		unpacked := call(UnpackHalf2x16, packed)
		assert.Equal(t, pair[:], floats(unpacked))
	}
}

func TestUnpackInvalidOperand(t *testing.T) {
	lane, rec := newLane()
	got := lane.GetSrc(99)
	assert.False(t, got.Valid())
	assert.Len(t, rec.Records(), 1)

	assert.False(t, UnpackHalf2x16(lane, []debug.ID{99}).Valid())
}
