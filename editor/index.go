package editor

import "strconv"

// Index is an optional position in the pattern.
// The zero value is None.
type Index struct {
	i  int
	ok bool
}

// None returns the empty Index.
func None() Index {
	return Index{}
}

// Some returns an Index holding i.
func Some(i int) Index {
	return Index{i: i, ok: true}
}

// Get returns the index and whether it is present.
func (x Index) Get() (int, bool) {
	return x.i, x.ok
}

func (x Index) String() string {
	if !x.ok {
		return "none"
	}
	return strconv.Itoa(x.i)
}
