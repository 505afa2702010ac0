// spvdis - SPIR-V disassembler
// Prints .spvasm style text; OpExtInst calls are shown with the name of the
// extended instruction.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gogpu/spvdebug"
	"github.com/gogpu/spvdebug/spirv"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: spvdis <file.spv>")
		return
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	module, err := spirv.Parse(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Unknown sets still disassemble, with numeric instructions.
	bindings, err := spvdebug.NewRegistry().Bind(module)
	if err != nil {
		fmt.Fprintf(os.Stderr, "; warning: %v\n", err)
	}

	disassemble(os.Stdout, module, bindings)
}

func disassemble(w io.Writer, module *spirv.Module, bindings spvdebug.Bindings) {
	h := module.Header
	fmt.Fprintf(w, "; SPIR-V\n")
	fmt.Fprintf(w, "; Version: %s\n", h.Version)
	fmt.Fprintf(w, "; Generator: 0x%08X\n", h.Generator)
	fmt.Fprintf(w, "; Bound: %d\n", h.Bound)
	fmt.Fprintf(w, "; Schema: %d\n", h.Schema)
	fmt.Fprintln(w)

	for _, inst := range module.Instructions {
		printInstruction(w, inst, bindings)
	}
}

func id(n uint32) string {
	return fmt.Sprintf("%%_%d", n)
}

func ids(ops []uint32) string {
	var sb strings.Builder
	for _, op := range ops {
		sb.WriteByte(' ')
		sb.WriteString(id(op))
	}
	return sb.String()
}

func literals(ops []uint32) string {
	var sb strings.Builder
	for _, op := range ops {
		fmt.Fprintf(&sb, " %d", op)
	}
	return sb.String()
}

// operands guards against truncated operand lists.
func operands(ops []uint32, n int) bool {
	return len(ops) >= n
}

func printInstruction(w io.Writer, inst spirv.Instruction, bindings spvdebug.Bindings) {
	name := inst.Opcode.String()
	ops := inst.Words

	switch inst.Opcode {
	case spirv.OpExtInst:
		ext, ok := inst.ExtInst()
		if !ok {
			break
		}
		fmt.Fprintf(w, "         %s = %s %s %s%s\n", id(ext.Result), name, id(ext.ResultType), bindings.InstName(ext), ids(ext.Operands))
		return

	case spirv.OpExtInstImport, spirv.OpString:
		if !operands(ops, 2) {
			break
		}
		str, _ := spirv.DecodeString(ops[1:])
		fmt.Fprintf(w, "         %s = %s %q\n", id(ops[0]), name, str)
		return

	case spirv.OpExtension:
		str, _ := spirv.DecodeString(ops)
		fmt.Fprintf(w, "               %s %q\n", name, str)
		return

	case spirv.OpName:
		if !operands(ops, 2) {
			break
		}
		str, _ := spirv.DecodeString(ops[1:])
		fmt.Fprintf(w, "               %s %s %q\n", name, id(ops[0]), str)
		return

	case spirv.OpEntryPoint:
		if !operands(ops, 3) {
			break
		}
		str, n := spirv.DecodeString(ops[2:])
		fmt.Fprintf(w, "               %s %d %s %q%s\n", name, ops[0], id(ops[1]), str, ids(ops[2+n:]))
		return

	case spirv.OpCapability, spirv.OpMemoryModel:
		fmt.Fprintf(w, "               %s%s\n", name, literals(ops))
		return

	case spirv.OpExecutionMode, spirv.OpDecorate:
		if !operands(ops, 1) {
			break
		}
		fmt.Fprintf(w, "               %s %s%s\n", name, id(ops[0]), literals(ops[1:]))
		return

	case spirv.OpTypeVoid, spirv.OpTypeBool, spirv.OpLabel:
		if !operands(ops, 1) {
			break
		}
		fmt.Fprintf(w, "         %s = %s\n", id(ops[0]), name)
		return

	case spirv.OpTypeInt, spirv.OpTypeFloat:
		if !operands(ops, 1) {
			break
		}
		fmt.Fprintf(w, "         %s = %s%s\n", id(ops[0]), name, literals(ops[1:]))
		return

	case spirv.OpTypeVector, spirv.OpTypeMatrix:
		if !operands(ops, 3) {
			break
		}
		fmt.Fprintf(w, "         %s = %s %s %d\n", id(ops[0]), name, id(ops[1]), ops[2])
		return

	case spirv.OpTypePointer:
		if !operands(ops, 3) {
			break
		}
		fmt.Fprintf(w, "         %s = %s %d %s\n", id(ops[0]), name, ops[1], id(ops[2]))
		return

	case spirv.OpConstant:
		if !operands(ops, 2) {
			break
		}
		fmt.Fprintf(w, "         %s = %s %s%s\n", id(ops[1]), name, id(ops[0]), literals(ops[2:]))
		return

	case spirv.OpFunction:
		if !operands(ops, 4) {
			break
		}
		fmt.Fprintf(w, "         %s = %s %s %d %s\n", id(ops[1]), name, id(ops[0]), ops[2], id(ops[3]))
		return

	case spirv.OpVariable:
		if !operands(ops, 3) {
			break
		}
		fmt.Fprintf(w, "         %s = %s %s %d\n", id(ops[1]), name, id(ops[0]), ops[2])
		return

	case spirv.OpFunctionEnd, spirv.OpReturn:
		fmt.Fprintf(w, "               %s\n", name)
		return

	case spirv.OpBranch, spirv.OpReturnValue:
		fmt.Fprintf(w, "               %s%s\n", name, ids(ops))
		return

	case spirv.OpTypeFunction:
		if !operands(ops, 1) {
			break
		}
		fmt.Fprintf(w, "         %s = %s%s\n", id(ops[0]), name, ids(ops[1:]))
		return
	}

	printGenericInstruction(w, name, ops)
}

// printGenericInstruction treats the first two operands as result type and
// result id, which holds for every value-producing instruction.
func printGenericInstruction(w io.Writer, name string, ops []uint32) {
	if len(ops) >= 2 {
		fmt.Fprintf(w, "         %s = %s %s%s\n", id(ops[1]), name, id(ops[0]), ids(ops[2:]))
		return
	}
	fmt.Fprintf(w, "         %s%s\n", name, ids(ops))
}
