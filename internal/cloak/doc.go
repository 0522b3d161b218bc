// Package cloak holds the fixed registry of alternate IPv4 spellings and
// the renderer that emits them. Each rule is a pure function over the
// derived scalar view of one address; the registry is a compile-time
// constant table whose order is part of the output contract.
package cloak
