// Package spirv provides the SPIR-V vocabulary shared by the shader debugger:
// opcode and enum constants, the extended instruction set enumerations, a
// binary writer and a binary reader.
//
// # Extended Instruction Sets
//
// Standard library shader functions (abs, floor, pow, clamp, mix, cross, ...)
// are not SPIR-V opcodes. A module imports an extended instruction set by
// name with OpExtInstImport and calls its members with OpExtInst:
//
//	%1 = OpExtInstImport "GLSL.std.450"
//	...
//	%9 = OpExtInst %float %1 FAbs %8
//
// GLSLstd450 and AMDTrinaryMinMax enumerate the instruction numbers of the
// sets the debugger executes; both have a String method returning the
// canonical instruction name.
//
// # Binary Writer
//
// ModuleBuilder constructs modules programmatically:
//
//	builder := spirv.NewModuleBuilder(spirv.Version1_3)
//	builder.AddCapability(spirv.CapabilityShader)
//	glsl := builder.AddExtInstImport(spirv.ExtGLSLStd450)
//	builder.SetMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450)
//
//	floatType := builder.AddTypeFloat(32)
//	x := builder.AddConstantFloat32(floatType, -2)
//	builder.AddExtInst(floatType, glsl, uint32(spirv.GLSLstd450FAbs), x)
//
//	binary := builder.Build()
//
// # Binary Reader
//
// Parse decodes a binary into its header and instruction stream. It does not
// validate or interpret instructions beyond their framing:
//
//	module, err := spirv.Parse(binary)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, inst := range module.Instructions {
//		if ext, ok := inst.ExtInst(); ok {
//			fmt.Println(module.ExtInstImports()[ext.Set], ext.Instruction)
//		}
//	}
//
// # References
//
// SPIR-V Specification: https://registry.khronos.org/SPIR-V/specs/unified1/SPIRV.html
//
// GLSL.std.450: https://registry.khronos.org/SPIR-V/specs/unified1/GLSL.std.450.html
package spirv
