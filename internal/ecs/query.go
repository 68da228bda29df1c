package ecs

import "slices"

// SortedIDs returns the keys of m in ascending order.
// Systems iterate in ID order so a replayed session spawns and damages
// entities exactly as the recorded one did.
func SortedIDs[V any](m map[EntityID]V) []EntityID {
	ids := make([]EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
