package debug

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxComponents is the component capacity of a ShaderVariable.
const MaxComponents = 4

// VarType is the declared numeric domain of a ShaderVariable. It is metadata
// only: every component can still be read through any view.
type VarType uint8

const (
	VarTypeUnknown VarType = iota
	VarTypeFloat
	VarTypeSInt
	VarTypeUInt
)

// String returns the scalar type name used when printing values.
func (t VarType) String() string {
	switch t {
	case VarTypeFloat:
		return "float"
	case VarTypeSInt:
		return "int"
	case VarTypeUInt:
		return "uint"
	default:
		return "unknown"
	}
}

// ShaderVariable is a register value: up to four 32-bit components, each
// readable as float32, int32 or uint32. The views alias the same bits, so
// switching views reinterprets and never converts.
//
// The zero value has Columns == 0 and is the sentinel returned by an
// instruction that could not execute.
type ShaderVariable struct {
	Name    string
	Type    VarType
	Columns uint8

	value [MaxComponents]uint32
}

// NewFloat returns a float vector with one column per component.
func NewFloat(components ...float32) ShaderVariable {
	v := newVariable(VarTypeFloat, len(components))
	for c, f := range components {
		v.SetF(c, f)
	}
	return v
}

// NewInt returns a signed integer vector with one column per component.
func NewInt(components ...int32) ShaderVariable {
	v := newVariable(VarTypeSInt, len(components))
	for c, i := range components {
		v.SetI(c, i)
	}
	return v
}

// NewUint returns an unsigned integer vector with one column per component.
func NewUint(components ...uint32) ShaderVariable {
	v := newVariable(VarTypeUInt, len(components))
	copy(v.value[:], components)
	return v
}

func newVariable(t VarType, n int) ShaderVariable {
	if n < 1 || n > MaxComponents {
		panic(fmt.Sprintf("debug: %d components, want 1..%d", n, MaxComponents))
	}
	return ShaderVariable{Type: t, Columns: uint8(n)}
}

// Valid reports whether v carries at least one component.
func (v ShaderVariable) Valid() bool {
	return v.Columns > 0
}

// F returns component c as float32.
func (v ShaderVariable) F(c int) float32 { return math.Float32frombits(v.value[c]) }

// I returns component c as int32.
func (v ShaderVariable) I(c int) int32 { return int32(v.value[c]) }

// U returns component c as uint32.
func (v ShaderVariable) U(c int) uint32 { return v.value[c] }

// SetF stores f in component c.
func (v *ShaderVariable) SetF(c int, f float32) { v.value[c] = math.Float32bits(f) }

// SetI stores i in component c.
func (v *ShaderVariable) SetI(c int, i int32) { v.value[c] = uint32(i) }

// SetU stores u in component c.
func (v *ShaderVariable) SetU(c int, u uint32) { v.value[c] = u }

// Equal reports whether v and o have the same type, column count and
// component bits. Names are ignored, and NaN equals an identical NaN.
func (v ShaderVariable) Equal(o ShaderVariable) bool {
	if v.Type != o.Type || v.Columns != o.Columns {
		return false
	}
	for c := 0; c < int(v.Columns); c++ {
		if v.value[c] != o.value[c] {
			return false
		}
	}
	return true
}

// String formats v as e.g. "float3(1, 0.5, -2)" or "uint(4294967294)".
func (v ShaderVariable) String() string {
	if !v.Valid() {
		return "<invalid>"
	}

	var sb strings.Builder
	sb.WriteString(v.Type.String())
	if v.Columns > 1 {
		sb.WriteString(strconv.Itoa(int(v.Columns)))
	}
	sb.WriteByte('(')
	for c := 0; c < int(v.Columns); c++ {
		if c > 0 {
			sb.WriteString(", ")
		}
		switch v.Type {
		case VarTypeFloat:
			sb.WriteString(strconv.FormatFloat(float64(v.F(c)), 'g', -1, 32))
		case VarTypeSInt:
			sb.WriteString(strconv.FormatInt(int64(v.I(c)), 10))
		case VarTypeUInt:
			sb.WriteString(strconv.FormatUint(uint64(v.U(c)), 10))
		default:
			fmt.Fprintf(&sb, "0x%08X", v.U(c))
		}
	}
	sb.WriteByte(')')
	return sb.String()
}
