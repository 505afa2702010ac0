// Package debug is the extended-instruction core of the SPIR-V shader
// debugger.
//
// The interpreter steps one shader invocation (a Lane) at a time. When it
// decodes an OpExtInst it looks up the dispatcher for the imported set, then
// the function for the instruction number, and calls it with the lane and the
// operand ids:
//
//	set := glsl.NewGLSLStd450()
//	lane := debug.NewLane(0, logger)
//	lane.SetSrc(10, debug.NewFloat(-1, 2, -3))
//	if err := lane.ExecuteExtInst(set, 11, uint32(spirv.GLSLstd450FAbs), []debug.ID{10}); err != nil {
//		return err
//	}
//	fmt.Println(lane.GetSrc(11)) // float3(1, 2, 3)
//
// # Values
//
// ShaderVariable holds up to four 32-bit components with float, signed and
// unsigned views over the same bits. Instructions pick the view of their
// declared domain (F*, S*, U* prefixes) and never convert between views.
//
// # Failures
//
// A wrong operand count is logged through the lane's *slog.Logger and the
// instruction returns the zero ShaderVariable, so the interpreter can keep
// stepping. An opcode the set does not implement is reported by
// ExtInstDispatcher.Execute as an *Error. Shape violations, such as Cross on
// a non-3-component operand, are logged as failed assertions and also yield
// the zero ShaderVariable.
package debug
