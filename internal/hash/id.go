package hash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Render produces a canonical string rendering of an arbitrary value,
// prefixed with its dynamic type so that values of different types never
// collide on equal renderings.
func Render(v any) string {
	return fmt.Sprintf("%T\x00%#v", v, v)
}

// Opaque computes a stable 64-bit discriminator for an arbitrary value.
//
// The discriminator is consistent within a process; it carries no meaning
// beyond providing a total order for values that have no natural one.
func Opaque(v any) uint64 {
	return ID(Render(v))
}
