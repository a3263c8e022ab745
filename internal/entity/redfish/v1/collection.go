package redfish

import (
	"encoding/json"
	"iter"
	"slices"
)

// ChassisCollection is an immutable, order-preserving sequence of chassis.
type ChassisCollection struct {
	items []Chassis
}

// NewChassisCollection copies items into a new collection.
func NewChassisCollection(items []Chassis) ChassisCollection {
	return ChassisCollection{items: slices.Clone(items)}
}

// Len -.
func (c ChassisCollection) Len() int {
	return len(c.items)
}

// At returns the i-th chassis.
func (c ChassisCollection) At(i int) Chassis {
	return c.items[i]
}

// All iterates the chassis in collection order.
func (c ChassisCollection) All() iter.Seq[Chassis] {
	return slices.Values(c.items)
}

// Slice returns a copy of the chassis in collection order.
func (c ChassisCollection) Slice() []Chassis {
	return slices.Clone(c.items)
}

// ComputerSystemPaths returns the sorted union of every chassis's
// ComputerSystems links.
func (c ChassisCollection) ComputerSystemPaths() []ResourcePath {
	var all []ResourcePath

	for _, ch := range c.items {
		all = append(all, ch.ComputerSystems...)
	}

	return SortedUnique(all)
}

// MarshalJSON encodes the collection as a JSON array.
func (c ChassisCollection) MarshalJSON() ([]byte, error) {
	if c.items == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(c.items)
}

// ComputerSystemCollection is an immutable, order-preserving sequence of
// computer systems, indexed by each system's own path.
type ComputerSystemCollection struct {
	items  []ComputerSystem
	byPath map[ResourcePath]int
}

// NewComputerSystemCollection copies items into a new collection. When two
// systems share a path the first one is indexed.
func NewComputerSystemCollection(items []ComputerSystem) ComputerSystemCollection {
	c := ComputerSystemCollection{
		items:  slices.Clone(items),
		byPath: make(map[ResourcePath]int, len(items)),
	}

	for i, s := range c.items {
		if _, dup := c.byPath[s.Path]; !dup {
			c.byPath[s.Path] = i
		}
	}

	return c
}

// Len -.
func (c ComputerSystemCollection) Len() int {
	return len(c.items)
}

// At returns the i-th system.
func (c ComputerSystemCollection) At(i int) ComputerSystem {
	return c.items[i]
}

// All iterates the systems in collection order.
func (c ComputerSystemCollection) All() iter.Seq[ComputerSystem] {
	return slices.Values(c.items)
}

// Slice returns a copy of the systems in collection order.
func (c ComputerSystemCollection) Slice() []ComputerSystem {
	return slices.Clone(c.items)
}

// Lookup returns the system whose own path is p. A missing system is not an
// error: links to systems that were never enumerated are expected.
func (c ComputerSystemCollection) Lookup(p ResourcePath) (ComputerSystem, bool) {
	i, ok := c.byPath[p]
	if !ok {
		return ComputerSystem{}, false
	}

	return c.items[i], true
}

// Resolve looks up every path. Systems that were found come back in the order
// of paths; the rest are returned as dangling.
func (c ComputerSystemCollection) Resolve(paths []ResourcePath) (found []ComputerSystem, dangling []ResourcePath) {
	for _, p := range paths {
		if s, ok := c.Lookup(p); ok {
			found = append(found, s)
		} else {
			dangling = append(dangling, p)
		}
	}

	return found, dangling
}

// MarshalJSON encodes the collection as a JSON array.
func (c ComputerSystemCollection) MarshalJSON() ([]byte, error) {
	if c.items == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(c.items)
}
