package addr

import (
	"errors"
	"fmt"
	"net/netip"
)

// ErrInvalidAddress reports input that is not a well-formed dotted-quad
// IPv4 address.
var ErrInvalidAddress = errors.New("invalid IPv4 address")

// Quad is a validated IPv4 address as four octets in network byte order.
type Quad struct {
	Octets [4]uint8
}

// Parse parses a dotted-quad decimal IPv4 address. Rejection follows the
// standard library: no shorthand forms, no surrounding whitespace, no IPv6.
func Parse(s string) (Quad, error) {
	ip, err := netip.ParseAddr(s)
	if err != nil || !ip.Is4() {
		return Quad{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return Quad{Octets: ip.As4()}, nil
}

// Dword returns the full 32-bit address value, most significant octet first.
func (q Quad) Dword() uint32 {
	return uint32(q.Octets[0])<<24 | uint32(q.Octets[1])<<16 | uint32(q.Octets[2])<<8 | uint32(q.Octets[3])
}

// U16 returns the last two octets collapsed into one unsigned value.
func (q Quad) U16() uint32 {
	return uint32(q.Octets[2])<<8 | uint32(q.Octets[3])
}

// U24 returns the last three octets collapsed into one unsigned value.
func (q Quad) U24() uint32 {
	return uint32(q.Octets[1])<<16 | uint32(q.Octets[2])<<8 | uint32(q.Octets[3])
}
