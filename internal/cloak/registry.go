package cloak

import "fmt"

// Rule is one cloak form: a pure function from the derived scalars to a
// rendered string. Rules never fail; their inputs are range-validated
// 8-bit and 32-bit integers.
type Rule struct {
	Name   string
	Render func(Scalars) string
}

// Registry returns the fixed, ordered cloak registry. The order is part of
// the observable output contract; callers must not reorder it.
func Registry() []Rule {
	return rules
}

// rules lists every cloak form in emission order. Hex octets render as
// 0x%02X, octal octets as %04o, plain decimal is never padded. The final
// entry repeats the hex/octal/u16 hybrid on purpose; the catalog has always
// listed that combination twice and downstream consumers diff against the
// full 21-line output.
var rules = []Rule{
	{
		Name: "dword-dec",
		Render: func(s Scalars) string {
			return fmt.Sprintf("%d", s.Dword)
		},
	},
	{
		Name: "dword-hex",
		Render: func(s Scalars) string {
			return fmt.Sprintf("0x%X", s.Dword)
		},
	},
	{
		Name: "dword-oct",
		Render: func(s Scalars) string {
			return fmt.Sprintf("0%o", s.Dword)
		},
	},
	{
		Name: "octets-hex",
		Render: func(s Scalars) string {
			o := s.Octets
			return fmt.Sprintf("0x%02X.0x%02X.0x%02X.0x%02X", o[0], o[1], o[2], o[3])
		},
	},
	{
		Name: "octets-oct",
		Render: func(s Scalars) string {
			o := s.Octets
			return fmt.Sprintf("%04o.%04o.%04o.%04o", o[0], o[1], o[2], o[3])
		},
	},
	{
		Name: "octets-hex-pad",
		Render: func(s Scalars) string {
			o := s.Octets
			return fmt.Sprintf("0x%010X.0x%010X.0x%010X.0x%010X", o[0], o[1], o[2], o[3])
		},
	},
	{
		Name: "octets-oct-pad",
		Render: func(s Scalars) string {
			o := s.Octets
			return fmt.Sprintf("%010o.%010o.%010o.%010o", o[0], o[1], o[2], o[3])
		},
	},
	{
		Name: "hex1-dec",
		Render: func(s Scalars) string {
			o := s.Octets
			return fmt.Sprintf("0x%02X.%d.%d.%d", o[0], o[1], o[2], o[3])
		},
	},
	{
		Name: "hex2-dec",
		Render: func(s Scalars) string {
			o := s.Octets
			return fmt.Sprintf("0x%02X.0x%02X.%d.%d", o[0], o[1], o[2], o[3])
		},
	},
	{
		Name: "hex3-dec",
		Render: func(s Scalars) string {
			o := s.Octets
			return fmt.Sprintf("0x%02X.0x%02X.0x%02X.%d", o[0], o[1], o[2], o[3])
		},
	},
	{
		Name: "oct1-dec",
		Render: func(s Scalars) string {
			o := s.Octets
			return fmt.Sprintf("%04o.%d.%d.%d", o[0], o[1], o[2], o[3])
		},
	},
	{
		Name: "oct2-dec",
		Render: func(s Scalars) string {
			o := s.Octets
			return fmt.Sprintf("%04o.%04o.%d.%d", o[0], o[1], o[2], o[3])
		},
	},
	{
		Name: "oct3-dec",
		Render: func(s Scalars) string {
			o := s.Octets
			return fmt.Sprintf("%04o.%04o.%04o.%d", o[0], o[1], o[2], o[3])
		},
	},
	{
		Name: "hex-oct-u16",
		Render: func(s Scalars) string {
			return fmt.Sprintf("0x%02X.%04o.%d", s.Octets[0], s.Octets[1], s.U16)
		},
	},
	{
		Name: "hex-hex-u16",
		Render: func(s Scalars) string {
			return fmt.Sprintf("0x%02X.0x%02X.%d", s.Octets[0], s.Octets[1], s.U16)
		},
	},
	{
		Name: "oct-oct-u16",
		Render: func(s Scalars) string {
			return fmt.Sprintf("%04o.%04o.%d", s.Octets[0], s.Octets[1], s.U16)
		},
	},
	{
		Name: "hex2-oct2",
		Render: func(s Scalars) string {
			o := s.Octets
			return fmt.Sprintf("0x%02X.0x%02X.%04o.%04o", o[0], o[1], o[2], o[3])
		},
	},
	{
		Name: "hex-u24",
		Render: func(s Scalars) string {
			return fmt.Sprintf("0x%02X.%d", s.Octets[0], s.U24)
		},
	},
	{
		Name: "oct-u24",
		Render: func(s Scalars) string {
			return fmt.Sprintf("%04o.%d", s.Octets[0], s.U24)
		},
	},
	{
		Name: "hex-oct3",
		Render: func(s Scalars) string {
			o := s.Octets
			return fmt.Sprintf("0x%02X.%04o.%04o.%04o", o[0], o[1], o[2], o[3])
		},
	},
	{
		// Intentional repeat of hex-oct-u16 for catalog compatibility.
		Name: "hex-oct-u16",
		Render: func(s Scalars) string {
			return fmt.Sprintf("0x%02X.%04o.%d", s.Octets[0], s.Octets[1], s.U16)
		},
	},
}
