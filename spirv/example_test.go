package spirv_test

import (
	"fmt"

	"github.com/gogpu/spvdebug/spirv"
)

// ExampleModuleBuilder_minimal demonstrates creating a minimal SPIR-V module.
func ExampleModuleBuilder_minimal() {
	builder := spirv.NewModuleBuilder(spirv.Version1_3)
	builder.AddCapability(spirv.CapabilityShader)

	// Required for all modules
	builder.SetMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450)

	binary := builder.Build()

	fmt.Printf("Generated SPIR-V module: %d bytes\n", len(binary))
	// Output: Generated SPIR-V module: 40 bytes
}

// ExampleModuleBuilder_withTypes demonstrates creating types.
func ExampleModuleBuilder_withTypes() {
	builder := spirv.NewModuleBuilder(spirv.Version1_3)
	builder.AddCapability(spirv.CapabilityShader)
	builder.SetMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450)

	voidType := builder.AddTypeVoid()
	floatType := builder.AddTypeFloat(32)
	vec4Type := builder.AddTypeVector(floatType, 4)

	builder.AddName(floatType, "float")
	builder.AddName(vec4Type, "vec4")

	binary := builder.Build()

	fmt.Printf("void=%d float=%d vec4=%d size=%d\n", voidType, floatType, vec4Type, len(binary))
	// Output: void=1 float=2 vec4=3 size=108
}

// ExampleParse demonstrates decoding the extended instruction calls of a module.
func ExampleParse() {
	builder := spirv.NewModuleBuilder(spirv.Version1_3)
	builder.AddCapability(spirv.CapabilityShader)
	glsl := builder.AddExtInstImport(spirv.ExtGLSLStd450)
	builder.SetMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450)

	floatType := builder.AddTypeFloat(32)
	x := builder.AddConstantFloat32(floatType, -2)
	y := builder.AddConstantFloat32(floatType, 3)
	builder.AddExtInst(floatType, glsl, uint32(spirv.GLSLstd450FAbs), x)
	builder.AddExtInst(floatType, glsl, uint32(spirv.GLSLstd450Pow), x, y)

	module, err := spirv.Parse(builder.Build())
	if err != nil {
		fmt.Println(err)
		return
	}

	imports := module.ExtInstImports()
	for _, inst := range module.Instructions {
		if ext, ok := inst.ExtInst(); ok {
			fmt.Printf("%s %s operands=%d\n", imports[ext.Set], spirv.GLSLstd450(ext.Instruction), len(ext.Operands))
		}
	}
	// Output:
	// GLSL.std.450 FAbs operands=1
	// GLSL.std.450 Pow operands=2
}
