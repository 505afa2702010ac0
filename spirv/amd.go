package spirv

import "strconv"

// ExtAMDShaderTrinaryMinMax is the OpExtInstImport name of the
// SPV_AMD_shader_trinary_minmax extended instruction set.
const ExtAMDShaderTrinaryMinMax = "SPV_AMD_shader_trinary_minmax"

// AMDTrinaryMinMax is an instruction number of SPV_AMD_shader_trinary_minmax.
type AMDTrinaryMinMax uint32

const (
	AMDTrinaryBad      AMDTrinaryMinMax = 0
	AMDTrinaryFMin3AMD AMDTrinaryMinMax = 1
	AMDTrinaryUMin3AMD AMDTrinaryMinMax = 2
	AMDTrinarySMin3AMD AMDTrinaryMinMax = 3
	AMDTrinaryFMax3AMD AMDTrinaryMinMax = 4
	AMDTrinaryUMax3AMD AMDTrinaryMinMax = 5
	AMDTrinarySMax3AMD AMDTrinaryMinMax = 6
	AMDTrinaryFMid3AMD AMDTrinaryMinMax = 7
	AMDTrinaryUMid3AMD AMDTrinaryMinMax = 8
	AMDTrinarySMid3AMD AMDTrinaryMinMax = 9

	AMDTrinaryMax AMDTrinaryMinMax = 10
)

var amdTrinaryNames = [AMDTrinaryMax]string{
	"Bad", "FMin3AMD", "UMin3AMD", "SMin3AMD", "FMax3AMD", "UMax3AMD", "SMax3AMD",
	"FMid3AMD", "UMid3AMD", "SMid3AMD",
}

func (i AMDTrinaryMinMax) String() string {
	if i < AMDTrinaryMax {
		return amdTrinaryNames[i]
	}
	return "AMDTrinaryMinMax(" + strconv.FormatUint(uint64(i), 10) + ")"
}
