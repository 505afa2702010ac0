package spirv

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildExtInstModule(t *testing.T) (data []byte, glsl, amd, fabs uint32) {
	t.Helper()

	builder := NewModuleBuilder(Version1_3)
	builder.AddCapability(CapabilityShader)
	glsl = builder.AddExtInstImport(ExtGLSLStd450)
	amd = builder.AddExtInstImport(ExtAMDShaderTrinaryMinMax)
	builder.SetMemoryModel(AddressingModelLogical, MemoryModelGLSL450)

	floatType := builder.AddTypeFloat(32)
	x := builder.AddConstantFloat32(floatType, -1.5)
	fabs = builder.AddExtInst(floatType, glsl, uint32(GLSLstd450FAbs), x)
	builder.AddExtInst(floatType, amd, uint32(AMDTrinaryFMax3AMD), x, x, fabs)

	return builder.Build(), glsl, amd, fabs
}

func TestParse_RoundTrip(t *testing.T) {
	data, glsl, amd, fabs := buildExtInstModule(t)

	module, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, Version1_3, module.Header.Version)
	assert.Equal(t, uint32(GeneratorID), module.Header.Generator)
	assert.Equal(t, fabs+2, module.Header.Bound)
	assert.Len(t, module.Offsets, len(module.Instructions))
	assert.Equal(t, HeaderWords*4, module.Offsets[0])

	assert.Equal(t, map[uint32]string{
		glsl: ExtGLSLStd450,
		amd:  ExtAMDShaderTrinaryMinMax,
	}, module.ExtInstImports())

	var calls []ExtInst
	for _, inst := range module.Instructions {
		if ext, ok := inst.ExtInst(); ok {
			calls = append(calls, ext)
		}
	}
	require.Len(t, calls, 2)
	assert.Equal(t, glsl, calls[0].Set)
	assert.Equal(t, uint32(GLSLstd450FAbs), calls[0].Instruction)
	assert.Equal(t, fabs, calls[0].Result)
	assert.Len(t, calls[0].Operands, 1)
	assert.Equal(t, amd, calls[1].Set)
	assert.Equal(t, uint32(AMDTrinaryFMax3AMD), calls[1].Instruction)
	assert.Equal(t, []uint32{calls[0].Operands[0], calls[0].Operands[0], fabs}, calls[1].Operands)
}

func TestParse_Errors(t *testing.T) {
	data, _, _, _ := buildExtInstModule(t)

	t.Run("short header", func(t *testing.T) {
		_, err := Parse(data[:12])
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("bad magic", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		binary.LittleEndian.PutUint32(bad, 0xDEADBEEF)
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrInvalidMagic)
	})

	t.Run("zero word count", func(t *testing.T) {
		bad := append([]byte(nil), data[:HeaderWords*4]...)
		bad = binary.LittleEndian.AppendUint32(bad, uint32(OpNop))
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrInvalidWordCount)
	})

	t.Run("instruction past end", func(t *testing.T) {
		_, err := Parse(data[:len(data)-4])
		assert.ErrorIs(t, err, ErrTruncated)
	})
}

func TestInstruction_ExtInstRejectsOtherOpcodes(t *testing.T) {
	_, ok := Instruction{Opcode: OpFAdd, Words: []uint32{1, 2, 3, 4}}.ExtInst()
	assert.False(t, ok)

	_, ok = Instruction{Opcode: OpExtInst, Words: []uint32{1, 2, 3}}.ExtInst()
	assert.False(t, ok)
}

func TestDecodeString(t *testing.T) {
	builder := NewInstructionBuilder()
	builder.AddString(ExtGLSLStd450)
	builder.AddWord(42)
	words := builder.Build(OpExtInstImport).Words

	name, n := DecodeString(words)
	assert.Equal(t, ExtGLSLStd450, name)
	// "GLSL.std.450" is 12 bytes, the terminator needs a 4th word.
	assert.Equal(t, 4, n)
	assert.Equal(t, uint32(42), words[n])
}
