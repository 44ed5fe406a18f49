package boundary

import (
	"fmt"
	"strings"
)

// Symbol names as seen by the linker and by WASM imports/exports.
const (
	SymbolHashDJB2  = "hash_djb2"
	SymbolFibonacci = "fibonacci"
	SymbolSomaArray = "soma_array"
)

// ValueKind classifies a parameter or result crossing the boundary.
type ValueKind int

const (
	// KindPointer is a nullable address (a linear-memory offset under WASM).
	KindPointer ValueKind = iota
	// KindUint32 is a 32-bit unsigned scalar.
	KindUint32
	// KindUint64 is a 64-bit unsigned scalar.
	KindUint64
	// KindInt64 is a 64-bit signed scalar.
	KindInt64
	// KindSize is an element count (size_t in C, i64 under WASM).
	KindSize
)

func (k ValueKind) String() string {
	switch k {
	case KindPointer:
		return "pointer"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindInt64:
		return "int64"
	case KindSize:
		return "size"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Param describes one argument of an exported function.
type Param struct {
	Name  string
	Kind  ValueKind
	CType string
}

// Symbol describes one exported function.
type Symbol struct {
	Name        string
	Params      []Param
	Result      ValueKind
	ResultCType string
}

// CDecl renders the C prototype of s, as a host would declare it.
func (s Symbol) CDecl() string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		if strings.HasSuffix(p.CType, "*") {
			params[i] = p.CType + p.Name
		} else {
			params[i] = p.CType + " " + p.Name
		}
	}
	return fmt.Sprintf("%s %s(%s);", s.ResultCType, s.Name, strings.Join(params, ", "))
}

// Symbols returns the exported function table in a fixed order.
// The returned slice is freshly built and may be modified by the caller.
func Symbols() []Symbol {
	return []Symbol{
		{
			Name:        SymbolHashDJB2,
			Params:      []Param{{Name: "input", Kind: KindPointer, CType: "const char *"}},
			Result:      KindUint64,
			ResultCType: "uint64_t",
		},
		{
			Name:        SymbolFibonacci,
			Params:      []Param{{Name: "n", Kind: KindUint32, CType: "uint32_t"}},
			Result:      KindUint64,
			ResultCType: "uint64_t",
		},
		{
			Name: SymbolSomaArray,
			Params: []Param{
				{Name: "arr", Kind: KindPointer, CType: "const int64_t *"},
				{Name: "len", Kind: KindSize, CType: "size_t"},
			},
			Result:      KindInt64,
			ResultCType: "int64_t",
		},
	}
}

// CDef renders every prototype, one per line, suitable for an FFI cdef block.
func CDef() string {
	var b strings.Builder
	for _, s := range Symbols() {
		b.WriteString(s.CDecl())
		b.WriteByte('\n')
	}
	return b.String()
}
