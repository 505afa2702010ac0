package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/spvdebug/spirv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSets(t *testing.T) {
	out, _, err := execute(t, "sets")
	require.NoError(t, err)
	assert.Equal(t, "GLSL.std.450\nSPV_AMD_shader_trinary_minmax\n", out)
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "FAbs")
	assert.NotContains(t, out, "Determinant")

	out, _, err = execute(t, "list", "--all", spirv.ExtGLSLStd450)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), int(spirv.GLSLstd450Max))
	assert.Regexp(t, `33\s+Determinant\s+unsupported`, out)

	_, _, err = execute(t, "list", "OpenCL.std")
	assert.ErrorContains(t, err, "OpenCL.std")
}

func TestEval(t *testing.T) {
	out, _, err := execute(t, "eval", spirv.ExtGLSLStd450, "UMax", "u:0xFFFFFFFE,1", "u:1,5")
	require.NoError(t, err)
	assert.Equal(t, "uint2(4294967294, 5)\n", out)

	out, _, err = execute(t, "eval", spirv.ExtAMDShaderTrinaryMinMax, "SMid3AMD", "i:-4", "i:9", "i:2")
	require.NoError(t, err)
	assert.Equal(t, "int(2)\n", out)
}

func TestEvalDiagnostics(t *testing.T) {
	out, errOut, err := execute(t, "eval", spirv.ExtGLSLStd450, "FAbs", "f:1", "f:2")
	require.NoError(t, err)
	assert.Equal(t, "<invalid>\n", out)
	assert.Contains(t, errOut, "unexpected number of parameters")
	assert.Contains(t, errOut, "inst=FAbs")

	_, errOut, err = execute(t, "--log-level", "off", "eval", spirv.ExtGLSLStd450, "FAbs")
	assert.ErrorContains(t, err, "--log-level")
	assert.Empty(t, errOut)

	_, _, err = execute(t, "eval", spirv.ExtGLSLStd450, "Determinant", "f:1")
	assert.ErrorContains(t, err, "not implemented")

	_, _, err = execute(t, "eval", spirv.ExtGLSLStd450, "FAbz", "f:1")
	assert.ErrorContains(t, err, "FAbz")
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
lanes = 2
[registers]
1 = "f:-1,2"
[[step]]
inst = "FAbs"
result = 2
operands = [1]
`), 0644))

	out, _, err := execute(t, "run", path)
	require.NoError(t, err)
	assert.Equal(t,
		"lane 0\n  %1      float2(-1, 2)\n  %2      float2(1, 2)\n"+
		"lane 1\n  %1      float2(-1, 2)\n  %2      float2(1, 2)\n", out)
}

func TestExec(t *testing.T) {
	b := spirv.NewModuleBuilder(spirv.Version1_3)
	b.AddCapability(spirv.CapabilityShader)
	glsl := b.AddExtInstImport(spirv.ExtGLSLStd450)
	b.SetMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450)
	f32 := b.AddTypeFloat(32)
	x := b.AddConstantFloat32(f32, 2.5)
	b.AddExtInst(f32, glsl, uint32(spirv.GLSLstd450Floor), x)

	path := filepath.Join(t.TempDir(), "floor.spv")
	require.NoError(t, os.WriteFile(path, b.Build(), 0644))

	out, _, err := execute(t, "exec", path)
	require.NoError(t, err)
	assert.Equal(t, "  %3      float(2.5)\n  %4      float(2)\n", out)
}
