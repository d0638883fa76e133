// Package enum gives Go's named integer constants an explicit member list.
//
// Go has no enum declaration that can be inspected at run time, so a type
// declares its members once:
//
//	type Color int
//
//	const (
//		Red Color = iota
//		Green
//		Blue
//	)
//
//	var Colors = enum.Declare(Red, Green, Blue)
//
// and guard.ValidEnumMember(c, "c", Colors) rejects Color(7).
package enum

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"facette.io/natsort"
)

// Integer is satisfied by every integer kind, which is what Go enumerations
// are built on.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Set is an immutable set of the declared members of E.
// The zero Set has no members.
type Set[E Integer] struct {
	members map[E]struct{}
}

// Declare builds the member set of E. Duplicates collapse.
func Declare[E Integer](members ...E) Set[E] {
	set := Set[E]{members: make(map[E]struct{}, len(members))}

	for _, m := range members {
		set.members[m] = struct{}{}
	}

	return set
}

// Contains reports whether v is a declared member.
func (s Set[E]) Contains(v E) bool {
	_, ok := s.members[v]

	return ok
}

// ContainsInt reports whether v is the underlying value of a declared member.
// A value that does not survive conversion to E and back (overflow, or a
// negative int for an unsigned E) is never a member.
func (s Set[E]) ContainsInt(v int) bool {
	e := E(v)

	if int(e) != v || (v < 0) != (e < 0) {
		return false
	}

	return s.Contains(e)
}

// Len returns the number of declared members.
func (s Set[E]) Len() int {
	return len(s.members)
}

// Members returns the declared members in ascending order.
func (s Set[E]) Members() []E {
	return slices.Sorted(maps.Keys(s.members))
}

// Names returns the printed form of every member in natural order. Types
// that implement fmt.Stringer list their names, others their numbers.
func (s Set[E]) Names() []string {
	names := make([]string, 0, len(s.members))
	for m := range s.members {
		names = append(names, fmt.Sprint(m))
	}

	natsort.Sort(names)

	return names
}

// TypeName returns the Go type name of E, e.g. "colors.Color".
func (s Set[E]) TypeName() string {
	return reflect.TypeFor[E]().String()
}
