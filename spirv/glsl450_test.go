package spirv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGLSLstd450_Names(t *testing.T) {
	tests := []struct {
		inst GLSLstd450
		want string
	}{
		{GLSLstd450Bad, "Bad"},
		{GLSLstd450Round, "Round"},
		{GLSLstd450FAbs, "FAbs"},
		{GLSLstd450Floor, "Floor"},
		{GLSLstd450Pow, "Pow"},
		{GLSLstd450FMin, "FMin"},
		{GLSLstd450SClamp, "SClamp"},
		{GLSLstd450FMix, "FMix"},
		{GLSLstd450Cross, "Cross"},
		{GLSLstd450Normalize, "Normalize"},
		{GLSLstd450NClamp, "NClamp"},
		{GLSLstd450Max, "GLSLstd450(82)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.inst.String())
	}
}

func TestGLSLstd450_NumberingMatchesRegistry(t *testing.T) {
	assert.Equal(t, GLSLstd450(4), GLSLstd450FAbs)
	assert.Equal(t, GLSLstd450(26), GLSLstd450Pow)
	assert.Equal(t, GLSLstd450(37), GLSLstd450FMin)
	assert.Equal(t, GLSLstd450(46), GLSLstd450FMix)
	assert.Equal(t, GLSLstd450(68), GLSLstd450Cross)
	assert.Equal(t, GLSLstd450(69), GLSLstd450Normalize)
	assert.Equal(t, GLSLstd450(82), GLSLstd450Max)

	for i := GLSLstd450(0); i < GLSLstd450Max; i++ {
		assert.NotEmpty(t, i.String(), "instruction %d", uint32(i))
	}
}

func TestAMDTrinaryMinMax_Names(t *testing.T) {
	assert.Equal(t, "FMin3AMD", AMDTrinaryFMin3AMD.String())
	assert.Equal(t, "SMid3AMD", AMDTrinarySMid3AMD.String())
	assert.Equal(t, AMDTrinaryMinMax(10), AMDTrinaryMax)
	assert.Equal(t, "AMDTrinaryMinMax(10)", AMDTrinaryMax.String())
}

func TestOpCode_String(t *testing.T) {
	assert.Equal(t, "OpExtInst", OpExtInst.String())
	assert.Equal(t, "OpExtInstImport", OpExtInstImport.String())
	assert.Equal(t, "Op9999", OpCode(9999).String())
}
