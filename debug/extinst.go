package debug

import (
	"fmt"
	"log/slog"
	"slices"
)

// ExtInstFunc implements one extended instruction: it resolves params through
// state and returns the result value. It must not retain state or params.
type ExtInstFunc func(state ThreadState, params []ID) ShaderVariable

// ExtInstDispatcher is the dispatch table of one extended instruction set:
// a name for every opcode of the set's enumeration and, for the opcodes the
// set implements, the function executing it. It is built once by
// NewExtInstDispatcher and read-only afterwards, so one dispatcher can serve
// any number of concurrently running lanes.
type ExtInstDispatcher struct {
	set       string
	names     []string
	functions []ExtInstFunc
	byName    map[string]uint32
	sealed    bool
}

// NewExtInstDispatcher builds the dispatcher for the set imported as name.
// configure sizes the table with Resize and assigns implementations with Set.
func NewExtInstDispatcher(name string, configure func(*ExtInstDispatcher)) *ExtInstDispatcher {
	d := &ExtInstDispatcher{set: name}
	configure(d)

	d.byName = make(map[string]uint32, len(d.names))
	for op, n := range d.names {
		if _, dup := d.byName[n]; !dup {
			d.byName[n] = uint32(op)
		}
	}
	d.sealed = true
	return d
}

// Resize allocates n opcode slots and names every one of them with opName.
// Slots start out unimplemented.
func (d *ExtInstDispatcher) Resize(n int, opName func(op uint32) string) {
	d.mustBeOpen()
	d.names = make([]string, n)
	for i := range d.names {
		d.names[i] = opName(uint32(i))
	}
	d.functions = make([]ExtInstFunc, n)
}

// Set assigns the implementation of op.
func (d *ExtInstDispatcher) Set(op uint32, fn ExtInstFunc) {
	d.mustBeOpen()
	if int(op) >= len(d.functions) {
		panic(fmt.Sprintf("debug: %s opcode %d out of range [0,%d)", d.set, op, len(d.functions)))
	}
	d.functions[op] = fn
}

func (d *ExtInstDispatcher) mustBeOpen() {
	if d.sealed {
		panic("debug: " + d.set + " dispatcher modified after construction")
	}
}

// ImportName returns the OpExtInstImport name this dispatcher serves.
func (d *ExtInstDispatcher) ImportName() string { return d.set }

// Len returns the size of the set's enumeration.
func (d *ExtInstDispatcher) Len() int { return len(d.names) }

// OpName returns the display name of op. op must be in range.
func (d *ExtInstDispatcher) OpName(op uint32) string { return d.names[op] }

// Names returns a copy of the name of every opcode, indexed by opcode.
func (d *ExtInstDispatcher) Names() []string { return slices.Clone(d.names) }

// Function returns the implementation of op, nil if the set does not
// implement it. op must be in range; the caller guards decoded opcodes.
func (d *ExtInstDispatcher) Function(op uint32) ExtInstFunc { return d.functions[op] }

// Supported reports whether op is in range and implemented.
func (d *ExtInstDispatcher) Supported(op uint32) bool {
	return int(op) < len(d.functions) && d.functions[op] != nil
}

// Lookup returns the opcode named name.
func (d *ExtInstDispatcher) Lookup(name string) (uint32, bool) {
	op, ok := d.byName[name]
	return op, ok
}

// Execute runs op on state. An opcode out of range or without an
// implementation yields an ErrUnsupportedInstruction error; an arity
// mismatch is not an error (see CheckParams).
func (d *ExtInstDispatcher) Execute(state ThreadState, op uint32, params []ID) (ShaderVariable, error) {
	if !d.Supported(op) {
		msg := "opcode out of range"
		if int(op) < len(d.names) {
			msg = d.names[op] + " is not implemented"
		}
		return ShaderVariable{}, &Error{Kind: ErrUnsupportedInstruction, Set: d.set, Opcode: op, Message: msg}
	}
	return d.functions[op](state, params), nil
}

// CheckParams reports whether params has exactly n operands. Otherwise it
// logs one error on the state's diagnostic channel, and the instruction
// should return the zero ShaderVariable:
//
//	if !debug.CheckParams(state, "FAbs", params, 1) {
//		return debug.ShaderVariable{}
//	}
func CheckParams(state ThreadState, inst string, params []ID, n int) bool {
	if len(params) == n {
		return true
	}
	state.Logger().Error("unexpected number of parameters",
		slog.String("inst", inst),
		slog.Int("expected", n),
		slog.Int("got", len(params)))
	return false
}
