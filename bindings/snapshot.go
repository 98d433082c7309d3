package bindings

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// snapshotVersion is bumped whenever the snapshot layout changes in a way
// old readers cannot handle.
const snapshotVersion = 1

type snapshot struct {
	Version int    `json:"version"`
	Graph   *Graph `json:"graph"`
}

// MarshalSnapshot serializes the graph for persistence. Only declared data is
// written; derived lookup tables are rebuilt on load.
func MarshalSnapshot(g *Graph) ([]byte, error) {
	data, err := json.Marshal(snapshot{Version: snapshotVersion, Graph: g})
	if err != nil {
		return nil, fmt.Errorf("marshaling snapshot: %w", err)
	}
	return data, nil
}

// LoadSnapshot restores a graph from MarshalSnapshot output. The version
// field is probed before decoding so a stale snapshot fails fast instead of
// half-loading, and every index is rebuilt after decode.
func LoadSnapshot(data []byte) (*Graph, error) {
	version := gjson.GetBytes(data, "version")
	if !version.Exists() {
		return nil, fmt.Errorf("loading snapshot: missing version")
	}
	if v := version.Int(); v != snapshotVersion {
		return nil, fmt.Errorf("loading snapshot: unsupported version %d", v)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	if snap.Graph == nil {
		return nil, fmt.Errorf("loading snapshot: missing graph")
	}

	snap.Graph.rebuildIndexes()
	return snap.Graph, nil
}
