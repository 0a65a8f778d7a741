package wasm

import (
	"bytes"
	"io"
	"slices"

	"github.com/pgavlin/rwarp/wasm/leb128"
)

// CustomSectionName is the name of the custom section that carries debug names.
const CustomSectionName = "name"

// NameType is the type of name subsection.
type NameType byte

const (
	NameModule   = NameType(0)
	NameFunction = NameType(1)
	NameLocal    = NameType(2)
)

// NameSection holds the module and function names from the "name" custom section.
// Subsections other than the module and function names are skipped.
type NameSection struct {
	Module    string
	Functions map[uint32]string
}

func (s *NameSection) UnmarshalWASM(r io.Reader) error {
	s.Functions = map[uint32]string{}
	for {
		var typ [1]byte
		if _, err := io.ReadFull(r, typ[:]); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		payload, err := readBytesUint(r)
		if err != nil {
			return err
		}
		pr := bytes.NewReader(payload)

		switch NameType(typ[0]) {
		case NameModule:
			if s.Module, err = readUTF8StringUint(pr); err != nil {
				return err
			}
		case NameFunction:
			count, err := leb128.ReadVarUint32(pr)
			if err != nil {
				return err
			}
			for i := uint32(0); i < count; i++ {
				index, err := leb128.ReadVarUint32(pr)
				if err != nil {
					return err
				}
				name, err := readUTF8StringUint(pr)
				if err != nil {
					return err
				}
				s.Functions[index] = name
			}
		}
	}
}

func (s *NameSection) MarshalWASM(w io.Writer) error {
	if s.Module != "" {
		var buf bytes.Buffer
		if err := writeStringUint(&buf, s.Module); err != nil {
			return err
		}
		if _, err := w.Write([]byte{byte(NameModule)}); err != nil {
			return err
		}
		if err := writeBytesUint(w, buf.Bytes()); err != nil {
			return err
		}
	}

	if len(s.Functions) != 0 {
		indices := make([]uint32, 0, len(s.Functions))
		for i := range s.Functions {
			indices = append(indices, i)
		}
		slices.Sort(indices)

		var buf bytes.Buffer
		err := writeVector(&buf, indices, func(w io.Writer, i uint32) error {
			if _, err := leb128.WriteVarUint32(w, i); err != nil {
				return err
			}
			return writeStringUint(w, s.Functions[i])
		})
		if err != nil {
			return err
		}
		if _, err := w.Write([]byte{byte(NameFunction)}); err != nil {
			return err
		}
		if err := writeBytesUint(w, buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
