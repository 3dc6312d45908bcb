package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() *LayoutNode {
	return NewSplit("s1", SplitVertical, 0.5,
		NewLeaf("l1", "t1"),
		NewSplit("s2", SplitHorizontal, 0.25,
			NewLeaf("l2", "t2"),
			NewLeaf("l3", "t3"),
		),
	)
}

func TestLayoutNode_MarshalJSON_WireShape(t *testing.T) {
	data, err := json.Marshal(sampleTree())
	require.NoError(t, err)

	want := `{"type":"split","id":"s1","direction":"vertical","ratio":0.5,` +
		`"first":{"type":"leaf","id":"l1","tileId":"t1"},` +
		`"second":{"type":"split","id":"s2","direction":"horizontal","ratio":0.25,` +
		`"first":{"type":"leaf","id":"l2","tileId":"t2"},` +
		`"second":{"type":"leaf","id":"l3","tileId":"t3"}}}`
	assert.Equal(t, want, string(data))
}

func TestLayoutNode_JSONRoundTripIsByteStable(t *testing.T) {
	first, err := json.Marshal(sampleTree())
	require.NoError(t, err)

	var decoded LayoutNode
	require.NoError(t, json.Unmarshal(first, &decoded))
	assert.True(t, sampleTree().Equal(&decoded))

	second, err := json.Marshal(&decoded)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestLayoutNode_UnmarshalJSON_Rejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown type", `{"type":"stack","id":"x"}`},
		{"leaf without tile", `{"type":"leaf","id":"l1"}`},
		{"split without child", `{"type":"split","id":"s","direction":"vertical","ratio":0.5,"first":{"type":"leaf","id":"l","tileId":"t"}}`},
		{"bad direction", `{"type":"split","id":"s","direction":"diagonal","ratio":0.5,"first":{"type":"leaf","id":"a","tileId":"a"},"second":{"type":"leaf","id":"b","tileId":"b"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n LayoutNode
			err := json.Unmarshal([]byte(tt.data), &n)
			assert.ErrorIs(t, err, ErrInvalidNode)
		})
	}
}

func TestLayoutNode_UnmarshalJSON_ClampsRatio(t *testing.T) {
	data := `{"type":"split","id":"s","direction":"vertical","ratio":1.7,` +
		`"first":{"type":"leaf","id":"a","tileId":"a"},"second":{"type":"leaf","id":"b","tileId":"b"}}`
	var n LayoutNode
	require.NoError(t, json.Unmarshal([]byte(data), &n))
	assert.Equal(t, MaxRatio, n.Ratio)
}

func TestClampRatio(t *testing.T) {
	assert.Equal(t, MinRatio, ClampRatio(-3))
	assert.Equal(t, MinRatio, ClampRatio(0.05))
	assert.Equal(t, 0.42, ClampRatio(0.42))
	assert.Equal(t, MaxRatio, ClampRatio(0.95))
}

func TestLayoutNode_Walk_StopsEarly(t *testing.T) {
	var visited []NodeID
	sampleTree().Walk(func(n *LayoutNode) bool {
		visited = append(visited, n.ID)
		return n.ID != "l1"
	})
	assert.Equal(t, []NodeID{"s1", "l1"}, visited)
}

func TestLayoutNode_Equal(t *testing.T) {
	assert.True(t, sampleTree().Equal(sampleTree()))

	other := sampleTree()
	other.Second.Second = NewLeaf("l3", "t9")
	assert.False(t, sampleTree().Equal(other))

	var nilNode *LayoutNode
	assert.True(t, nilNode.Equal(nil))
	assert.False(t, nilNode.Equal(sampleTree()))
}
