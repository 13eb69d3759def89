package entity

import "encoding/hex"

// idLength is the length of a hex encoded 12-byte document key.
const idLength = 24

// IsValidID reports whether id has the shape of a store key.
func IsValidID(id string) bool {
	if len(id) != idLength {
		return false
	}
	_, err := hex.DecodeString(id)

	return err == nil
}

// ValidIDs returns the ids that pass IsValidID, de-duplicated in input order.
func ValidIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !IsValidID(id) {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
