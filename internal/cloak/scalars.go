package cloak

import "github.com/vk/ipcloak/internal/addr"

// Scalars is the read-only numeric view of one address, computed once per
// run and passed by value to every format rule.
type Scalars struct {
	Dword  uint32
	Octets [4]uint8
	U16    uint32
	U24    uint32
}

// Derive computes the scalar view of q. Pure arithmetic; cannot fail.
func Derive(q addr.Quad) Scalars {
	return Scalars{
		Dword:  q.Dword(),
		Octets: q.Octets,
		U16:    q.U16(),
		U24:    q.U24(),
	}
}
