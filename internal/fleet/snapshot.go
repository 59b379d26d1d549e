package fleet

import (
	"encoding/json"
	"fmt"
	"io"
)

// ReadSnapshot decodes a JSON snapshot exported from the fleet backend
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &snap, nil
}
