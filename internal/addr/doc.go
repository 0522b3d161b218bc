// Package addr parses dotted-quad IPv4 addresses and exposes the numeric
// views (full dword, collapsed u16/u24) the formatting rules are built on.
package addr
