package spirv

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// Parse errors.
var (
	ErrTruncated        = errors.New("spirv: truncated module")
	ErrInvalidMagic     = errors.New("spirv: invalid magic number")
	ErrInvalidWordCount = errors.New("spirv: invalid instruction word count")
)

// Header is the five-word SPIR-V module header.
type Header struct {
	Version   Version
	Generator uint32
	Bound     uint32
	Schema    uint32
}

// Module is a decoded SPIR-V binary: the header and the flat instruction
// stream in module order.
type Module struct {
	Header       Header
	Instructions []Instruction

	// Offsets holds the byte offset of each instruction, parallel to
	// Instructions.
	Offsets []int
}

// Parse decodes a little-endian SPIR-V binary.
func Parse(data []byte) (*Module, error) {
	if len(data) < HeaderWords*4 || len(data)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncated, len(data))
	}
	if magic := binary.LittleEndian.Uint32(data[0:4]); magic != MagicNumber {
		return nil, fmt.Errorf("%w: 0x%08X", ErrInvalidMagic, magic)
	}

	m := &Module{
		Header: Header{
			Version:   wordToVersion(binary.LittleEndian.Uint32(data[4:8])),
			Generator: binary.LittleEndian.Uint32(data[8:12]),
			Bound:     binary.LittleEndian.Uint32(data[12:16]),
			Schema:    binary.LittleEndian.Uint32(data[16:20]),
		},
	}

	offset := HeaderWords * 4
	for offset < len(data) {
		word := binary.LittleEndian.Uint32(data[offset:])
		opcode := OpCode(word & 0xFFFF)
		wordCount := int(word >> 16)

		if wordCount == 0 {
			return nil, fmt.Errorf("%w: 0 at offset 0x%X", ErrInvalidWordCount, offset)
		}
		if offset+wordCount*4 > len(data) {
			return nil, fmt.Errorf("%w: %s needs %d words at offset 0x%X", ErrTruncated, opcode, wordCount, offset)
		}

		words := make([]uint32, wordCount-1)
		for i := range words {
			words[i] = binary.LittleEndian.Uint32(data[offset+4+i*4:])
		}

		m.Instructions = append(m.Instructions, Instruction{Opcode: opcode, Words: words})
		m.Offsets = append(m.Offsets, offset)
		offset += wordCount * 4
	}

	return m, nil
}

// ExtInstImports maps each OpExtInstImport result id to the imported set name.
func (m *Module) ExtInstImports() map[uint32]string {
	imports := make(map[uint32]string)
	for _, inst := range m.Instructions {
		if inst.Opcode != OpExtInstImport || len(inst.Words) < 2 {
			continue
		}
		name, _ := DecodeString(inst.Words[1:])
		imports[inst.Words[0]] = name
	}
	return imports
}

// ExtInst is a decoded OpExtInst.
type ExtInst struct {
	ResultType  uint32
	Result      uint32
	Set         uint32
	Instruction uint32
	Operands    []uint32
}

// ExtInst decodes i as OpExtInst. ok is false for any other opcode or a
// malformed operand list.
func (i Instruction) ExtInst() (ext ExtInst, ok bool) {
	if i.Opcode != OpExtInst || len(i.Words) < 4 {
		return ExtInst{}, false
	}
	return ExtInst{
		ResultType:  i.Words[0],
		Result:      i.Words[1],
		Set:         i.Words[2],
		Instruction: i.Words[3],
		Operands:    i.Words[4:],
	}, true
}

// DecodeString decodes a nul-terminated literal string packed into words and
// returns it with the number of words it occupies.
func DecodeString(words []uint32) (string, int) {
	var sb strings.Builder
	for n, word := range words {
		for shift := 0; shift < 32; shift += 8 {
			b := byte(word >> shift)
			if b == 0 {
				return sb.String(), n + 1
			}
			sb.WriteByte(b)
		}
	}
	return sb.String(), len(words)
}
