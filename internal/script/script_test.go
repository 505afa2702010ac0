package script

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/spvdebug"
	"github.com/gogpu/spvdebug/debug"
	"github.com/gogpu/spvdebug/spirv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minmaxScript = `
lanes = 3

[registers]
1 = "u:0xFFFFFFFE,1"
2 = "u:1,5"
3 = "f:-1.5,2,-0.25"

[[lane]]
registers = { 3 = "f:4,-5,6" }

[[step]]
inst = "UMax"
result = 10
operands = [1, 2]

[[step]]
inst = "FAbs"
result = 11
operands = [3]

[[step]]
set = "SPV_AMD_shader_trinary_minmax"
inst = "FMax3AMD"
result = 12
operands = [3, 11, 3]
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "minmax.toml")
	require.NoError(t, os.WriteFile(path, []byte(minmaxScript), 0644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, s.Path)
	assert.Equal(t, 3, s.Lanes)
	assert.Equal(t, spirv.ExtGLSLStd450, s.Set)
	assert.Len(t, s.Registers, 3)
	require.Len(t, s.Lane, 1)
	assert.Equal(t, "f:4,-5,6", s.Lane[0].Registers["3"])

	require.Len(t, s.Steps, 3)
	assert.Equal(t, Step{Set: spirv.ExtGLSLStd450, Inst: "UMax", Result: 10, Operands: []uint32{1, 2}}, s.Steps[0])
	assert.Equal(t, spirv.ExtAMDShaderTrinaryMinMax, s.Steps[2].Set)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("lanes = ["), 0644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "parse error in")
}

func TestParseDefaults(t *testing.T) {
	s, err := Parse([]byte(`
[[lane]]
[[lane]]
`))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Lanes)
	assert.Equal(t, spirv.ExtGLSLStd450, s.Set)

	s, err = Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Lanes)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want debug.ShaderVariable
	}{
		{"f:1,2,3", debug.NewFloat(1, 2, 3)},
		{"f: 0.5 , -2", debug.NewFloat(0.5, -2)},
		{"u:0xFFFFFFFE,1", debug.NewUint(0xFFFFFFFE, 1)},
		{"i:-3,4", debug.NewInt(-3, 4)},
		{"i:0x7FFFFFFF", debug.NewInt(0x7FFFFFFF)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseValue(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
		})
	}

	for _, in := range []string{"1,2", "x:1", "f:", "f:1,2,3,4,5", "u:-1", "i:0x80000000", "f:abc"} {
		_, err := ParseValue(in)
		assert.Error(t, err, in)
	}
}

func TestRun(t *testing.T) {
	s, err := Parse([]byte(minmaxScript))
	require.NoError(t, err)

	lanes, err := Run(context.Background(), spvdebug.NewRegistry(), s, nil)
	require.NoError(t, err)
	require.Len(t, lanes, 3)

	for i, lane := range lanes {
		umax := lane.GetSrc(10)
		assert.Equal(t, "_10", umax.Name)
		assert.True(t, umax.Equal(debug.NewUint(0xFFFFFFFE, 5)), "lane %d: %s", i, umax)
	}

	// Lane 0 carries its own register 3.
	assert.True(t, lanes[0].GetSrc(11).Equal(debug.NewFloat(4, 5, 6)))
	assert.True(t, lanes[0].GetSrc(12).Equal(debug.NewFloat(4, 5, 6)))
	assert.True(t, lanes[1].GetSrc(11).Equal(debug.NewFloat(1.5, 2, 0.25)))
	assert.True(t, lanes[2].GetSrc(12).Equal(debug.NewFloat(1.5, 2, 0.25)))
}

func TestRunUnknownInstruction(t *testing.T) {
	s, err := Parse([]byte(`
[[step]]
inst = "FAbz"
result = 2
operands = [1]
`))
	require.NoError(t, err)

	_, err = Run(context.Background(), spvdebug.NewRegistry(), s, nil)
	assert.True(t, errors.Is(err, &debug.Error{Kind: debug.ErrUnknownInstruction}))
	assert.ErrorContains(t, err, "FAbz")
}

func TestRunUnknownSet(t *testing.T) {
	s, err := Parse([]byte(`
set = "OpenCL.std"
[[step]]
inst = "fabs"
`))
	require.NoError(t, err)

	_, err = Run(context.Background(), spvdebug.NewRegistry(), s, nil)
	assert.True(t, errors.Is(err, &debug.Error{Kind: debug.ErrUnknownInstructionSet}))
}

func TestRunUnsupported(t *testing.T) {
	s, err := Parse([]byte(`
[registers]
1 = "f:1"
[[step]]
inst = "Determinant"
result = 2
operands = [1]
`))
	require.NoError(t, err)

	_, err = Run(context.Background(), spvdebug.NewRegistry(), s, nil)
	assert.True(t, errors.Is(err, &debug.Error{Kind: debug.ErrUnsupportedInstruction}))
	assert.ErrorContains(t, err, "lane 0 step 0")
}

func TestRunCanceled(t *testing.T) {
	s, err := Parse([]byte(minmaxScript))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, spvdebug.NewRegistry(), s, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunBadRegister(t *testing.T) {
	s, err := Parse([]byte(`
[registers]
x = "f:1"
`))
	require.NoError(t, err)

	_, err = Run(context.Background(), spvdebug.NewRegistry(), s, nil)
	assert.ErrorContains(t, err, "not an id")
}
