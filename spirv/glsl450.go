package spirv

import "strconv"

// ExtGLSLStd450 is the OpExtInstImport name of the GLSL.std.450 extended
// instruction set.
const ExtGLSLStd450 = "GLSL.std.450"

// GLSLstd450 is an instruction number of the GLSL.std.450 extended
// instruction set, the operand that follows the set id in OpExtInst.
type GLSLstd450 uint32

// GLSL.std.450 instructions, numbered as in the Khronos registry.
const (
	GLSLstd450Bad                   GLSLstd450 = 0
	GLSLstd450Round                 GLSLstd450 = 1
	GLSLstd450RoundEven             GLSLstd450 = 2
	GLSLstd450Trunc                 GLSLstd450 = 3
	GLSLstd450FAbs                  GLSLstd450 = 4
	GLSLstd450SAbs                  GLSLstd450 = 5
	GLSLstd450FSign                 GLSLstd450 = 6
	GLSLstd450SSign                 GLSLstd450 = 7
	GLSLstd450Floor                 GLSLstd450 = 8
	GLSLstd450Ceil                  GLSLstd450 = 9
	GLSLstd450Fract                 GLSLstd450 = 10
	GLSLstd450Radians               GLSLstd450 = 11
	GLSLstd450Degrees               GLSLstd450 = 12
	GLSLstd450Sin                   GLSLstd450 = 13
	GLSLstd450Cos                   GLSLstd450 = 14
	GLSLstd450Tan                   GLSLstd450 = 15
	GLSLstd450Asin                  GLSLstd450 = 16
	GLSLstd450Acos                  GLSLstd450 = 17
	GLSLstd450Atan                  GLSLstd450 = 18
	GLSLstd450Sinh                  GLSLstd450 = 19
	GLSLstd450Cosh                  GLSLstd450 = 20
	GLSLstd450Tanh                  GLSLstd450 = 21
	GLSLstd450Asinh                 GLSLstd450 = 22
	GLSLstd450Acosh                 GLSLstd450 = 23
	GLSLstd450Atanh                 GLSLstd450 = 24
	GLSLstd450Atan2                 GLSLstd450 = 25
	GLSLstd450Pow                   GLSLstd450 = 26
	GLSLstd450Exp                   GLSLstd450 = 27
	GLSLstd450Log                   GLSLstd450 = 28
	GLSLstd450Exp2                  GLSLstd450 = 29
	GLSLstd450Log2                  GLSLstd450 = 30
	GLSLstd450Sqrt                  GLSLstd450 = 31
	GLSLstd450InverseSqrt           GLSLstd450 = 32
	GLSLstd450Determinant           GLSLstd450 = 33
	GLSLstd450MatrixInverse         GLSLstd450 = 34
	GLSLstd450Modf                  GLSLstd450 = 35
	GLSLstd450ModfStruct            GLSLstd450 = 36
	GLSLstd450FMin                  GLSLstd450 = 37
	GLSLstd450UMin                  GLSLstd450 = 38
	GLSLstd450SMin                  GLSLstd450 = 39
	GLSLstd450FMax                  GLSLstd450 = 40
	GLSLstd450UMax                  GLSLstd450 = 41
	GLSLstd450SMax                  GLSLstd450 = 42
	GLSLstd450FClamp                GLSLstd450 = 43
	GLSLstd450UClamp                GLSLstd450 = 44
	GLSLstd450SClamp                GLSLstd450 = 45
	GLSLstd450FMix                  GLSLstd450 = 46
	GLSLstd450IMix                  GLSLstd450 = 47
	GLSLstd450Step                  GLSLstd450 = 48
	GLSLstd450SmoothStep            GLSLstd450 = 49
	GLSLstd450Fma                   GLSLstd450 = 50
	GLSLstd450Frexp                 GLSLstd450 = 51
	GLSLstd450FrexpStruct           GLSLstd450 = 52
	GLSLstd450Ldexp                 GLSLstd450 = 53
	GLSLstd450PackSnorm4x8          GLSLstd450 = 54
	GLSLstd450PackUnorm4x8          GLSLstd450 = 55
	GLSLstd450PackSnorm2x16         GLSLstd450 = 56
	GLSLstd450PackUnorm2x16         GLSLstd450 = 57
	GLSLstd450PackHalf2x16          GLSLstd450 = 58
	GLSLstd450PackDouble2x32        GLSLstd450 = 59
	GLSLstd450UnpackSnorm2x16       GLSLstd450 = 60
	GLSLstd450UnpackUnorm2x16       GLSLstd450 = 61
	GLSLstd450UnpackHalf2x16        GLSLstd450 = 62
	GLSLstd450UnpackSnorm4x8        GLSLstd450 = 63
	GLSLstd450UnpackUnorm4x8        GLSLstd450 = 64
	GLSLstd450UnpackDouble2x32      GLSLstd450 = 65
	GLSLstd450Length                GLSLstd450 = 66
	GLSLstd450Distance              GLSLstd450 = 67
	GLSLstd450Cross                 GLSLstd450 = 68
	GLSLstd450Normalize             GLSLstd450 = 69
	GLSLstd450FaceForward           GLSLstd450 = 70
	GLSLstd450Reflect               GLSLstd450 = 71
	GLSLstd450Refract               GLSLstd450 = 72
	GLSLstd450FindILsb              GLSLstd450 = 73
	GLSLstd450FindSMsb              GLSLstd450 = 74
	GLSLstd450FindUMsb              GLSLstd450 = 75
	GLSLstd450InterpolateAtCentroid GLSLstd450 = 76
	GLSLstd450InterpolateAtSample   GLSLstd450 = 77
	GLSLstd450InterpolateAtOffset   GLSLstd450 = 78
	GLSLstd450NMin                  GLSLstd450 = 79
	GLSLstd450NMax                  GLSLstd450 = 80
	GLSLstd450NClamp                GLSLstd450 = 81

	// GLSLstd450Max is one past the highest instruction number.
	GLSLstd450Max GLSLstd450 = 82
)

var glslStd450Names = [GLSLstd450Max]string{
	"Bad", "Round", "RoundEven", "Trunc", "FAbs", "SAbs", "FSign", "SSign", "Floor", "Ceil",
	"Fract", "Radians", "Degrees", "Sin", "Cos", "Tan", "Asin", "Acos", "Atan", "Sinh",
	"Cosh", "Tanh", "Asinh", "Acosh", "Atanh", "Atan2", "Pow", "Exp", "Log", "Exp2", "Log2",
	"Sqrt", "InverseSqrt", "Determinant", "MatrixInverse", "Modf", "ModfStruct", "FMin",
	"UMin", "SMin", "FMax", "UMax", "SMax", "FClamp", "UClamp", "SClamp", "FMix", "IMix",
	"Step", "SmoothStep", "Fma", "Frexp", "FrexpStruct", "Ldexp", "PackSnorm4x8",
	"PackUnorm4x8", "PackSnorm2x16", "PackUnorm2x16", "PackHalf2x16", "PackDouble2x32",
	"UnpackSnorm2x16", "UnpackUnorm2x16", "UnpackHalf2x16", "UnpackSnorm4x8",
	"UnpackUnorm4x8", "UnpackDouble2x32", "Length", "Distance", "Cross", "Normalize",
	"FaceForward", "Reflect", "Refract", "FindILsb", "FindSMsb", "FindUMsb",
	"InterpolateAtCentroid", "InterpolateAtSample", "InterpolateAtOffset", "NMin", "NMax",
	"NClamp",
}

// String returns the canonical instruction name, e.g. "FAbs".
func (i GLSLstd450) String() string {
	if i < GLSLstd450Max {
		return glslStd450Names[i]
	}
	return "GLSLstd450(" + strconv.FormatUint(uint64(i), 10) + ")"
}
