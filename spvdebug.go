// Package spvdebug executes SPIR-V extended instructions for a shader
// debugger.
//
// The debug package holds the value model, the lane state and the dispatch
// table; debug/glsl and debug/amd implement the GLSL.std.450 and
// SPV_AMD_shader_trinary_minmax sets. This package ties them to modules:
// a Registry maps OpExtInstImport names to dispatchers, and Bind resolves
// the imports of a parsed module.
//
// Example usage:
//
//	module, err := spirv.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	bindings, err := spvdebug.NewRegistry().Bind(module)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	lane := debug.NewLane(0, slog.Default())
//	for _, inst := range module.Instructions {
//	    if ext, ok := inst.ExtInst(); ok {
//	        err = bindings.Execute(lane, ext)
//	    }
//	}
package spvdebug

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gogpu/spvdebug/debug"
	"github.com/gogpu/spvdebug/debug/amd"
	"github.com/gogpu/spvdebug/debug/glsl"
	"github.com/gogpu/spvdebug/spirv"
)

// nonSemanticPrefix marks instruction sets a consumer may ignore.
const nonSemanticPrefix = "NonSemantic."

// Registry maps extended instruction set import names to their
// dispatchers. Register every set before the registry is shared; lookups
// are safe for concurrent use afterwards.
type Registry struct {
	sets map[string]*debug.ExtInstDispatcher
}

// NewRegistry returns a registry with every built-in instruction set.
func NewRegistry() *Registry {
	r := &Registry{sets: make(map[string]*debug.ExtInstDispatcher)}
	r.Register(spirv.ExtGLSLStd450, glsl.ConfigureGLSLStd450)
	r.Register(spirv.ExtAMDShaderTrinaryMinMax, amd.ConfigureAMDShaderTrinaryMinMax)
	return r
}

// Register builds the dispatcher for name with configure, replacing any
// set previously registered under that name.
func (r *Registry) Register(name string, configure func(*debug.ExtInstDispatcher)) *debug.ExtInstDispatcher {
	d := debug.NewExtInstDispatcher(name, configure)
	r.sets[name] = d
	return d
}

// Import returns the dispatcher for the set imported as name.
func (r *Registry) Import(name string) (*debug.ExtInstDispatcher, error) {
	d, ok := r.sets[name]
	if !ok {
		return nil, &debug.Error{
			Kind:    debug.ErrUnknownInstructionSet,
			Set:     name,
			Message: "no dispatcher registered",
		}
	}
	return d, nil
}

// Sets returns the registered import names in sorted order.
func (r *Registry) Sets() []string {
	names := make([]string, 0, len(r.sets))
	for name := range r.sets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Bindings maps the OpExtInstImport result ids of one module to
// dispatchers.
type Bindings map[uint32]*debug.ExtInstDispatcher

// Bind resolves every OpExtInstImport of module. Non-semantic sets are
// skipped. Other unknown sets are reported in the returned error, and the
// returned bindings still hold every set that resolved. Errors are joined
// in result id order.
func (r *Registry) Bind(module *spirv.Module) (Bindings, error) {
	b := make(Bindings)
	var errs []error
	imports := module.ExtInstImports()
	for _, id := range slices.Sorted(maps.Keys(imports)) {
		name := imports[id]
		d, err := r.Import(name)
		if err != nil {
			if !strings.HasPrefix(name, nonSemanticPrefix) {
				errs = append(errs, fmt.Errorf("import %%%d: %w", id, err))
			}
			continue
		}
		b[id] = d
	}
	return b, errors.Join(errs...)
}

// Execute runs ext on lane and binds its result id.
func (b Bindings) Execute(lane *debug.Lane, ext spirv.ExtInst) error {
	d, ok := b[ext.Set]
	if !ok {
		return &debug.Error{
			Kind:    debug.ErrUnknownInstructionSet,
			Set:     fmt.Sprintf("%%%d", ext.Set),
			Opcode:  ext.Instruction,
			Message: "set is not imported",
		}
	}

	params := make([]debug.ID, len(ext.Operands))
	for i, op := range ext.Operands {
		params[i] = debug.ID(op)
	}
	return lane.ExecuteExtInst(d, debug.ID(ext.Result), ext.Instruction, params)
}

// InstName returns "<set> <instruction>" for ext, falling back to the raw
// numbers when the set is not bound or the opcode is out of range.
func (b Bindings) InstName(ext spirv.ExtInst) string {
	d, ok := b[ext.Set]
	if !ok {
		return fmt.Sprintf("%%%d %d", ext.Set, ext.Instruction)
	}
	if int(ext.Instruction) >= d.Len() {
		return fmt.Sprintf("%s %d", d.ImportName(), ext.Instruction)
	}
	return d.ImportName() + " " + d.OpName(ext.Instruction)
}

// Run executes every OpExtInst of module on lane in module order and stops
// at the first failure.
func (b Bindings) Run(lane *debug.Lane, module *spirv.Module) error {
	for i, inst := range module.Instructions {
		ext, ok := inst.ExtInst()
		if !ok {
			continue
		}
		if err := b.Execute(lane, ext); err != nil {
			return fmt.Errorf("offset 0x%X: %w", module.Offsets[i], err)
		}
	}
	return nil
}
