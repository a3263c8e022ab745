package redfish

import (
	"slices"
	"strings"
)

// Action is an invocable operation advertised by a resource, such as
// "#ComputerSystem.Reset", and the path it must be POSTed to.
type Action struct {
	Name   string       `json:"Name"`
	Target ResourcePath `json:"Target"`
}

// SortActions returns a copy of actions ordered by name, then target, with
// exact duplicates removed.
func SortActions(actions []Action) []Action {
	if len(actions) == 0 {
		return nil
	}

	out := slices.Clone(actions)
	slices.SortFunc(out, func(a, b Action) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}

		return a.Target.Compare(b.Target)
	})

	return slices.Compact(out)
}
