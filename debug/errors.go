package debug

import "fmt"

// ErrorKind categorizes dispatch errors.
type ErrorKind uint8

const (
	// ErrUnsupportedInstruction indicates an opcode with no implementation in
	// its instruction set, or one outside the set's enumeration.
	ErrUnsupportedInstruction ErrorKind = iota

	// ErrUnknownInstructionSet indicates an OpExtInstImport name with no
	// registered dispatcher.
	ErrUnknownInstructionSet

	// ErrUnknownInstruction indicates an instruction name that is not a
	// member of the set.
	ErrUnknownInstruction
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnsupportedInstruction:
		return "UnsupportedInstruction"
	case ErrUnknownInstructionSet:
		return "UnknownInstructionSet"
	case ErrUnknownInstruction:
		return "UnknownInstruction"
	default:
		return "Unknown"
	}
}

// Error is returned by dispatch-time failures. Arity mismatches are not
// errors: the instruction logs them and returns the invalid sentinel.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Set is the extended instruction set import name.
	Set string

	// Opcode is the instruction number within Set, when known.
	Opcode uint32

	// Message provides details about the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s %s (opcode %d): %s", e.Set, e.Kind, e.Opcode, e.Message)
}

// Is reports whether target is an *Error of the same kind, so callers can
// match with errors.Is(err, &debug.Error{Kind: debug.ErrUnsupportedInstruction}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
