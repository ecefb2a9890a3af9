//go:build unit

package chain

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewNode(t *testing.T) {
	t.Run("creates a new node", func(t *testing.T) {
		// Execute
		node := NewNode([]byte("eric"), 111)

		// Check
		assert.Equal(t, []byte("eric"), node.Key, "correct key")
		assert.Equal(t, int64(111), node.Value, "correct value")
		assert.Nil(t, node.next, "no successor")
	})

	t.Run("copies the key bytes", func(t *testing.T) {
		// Prepare
		key := []byte("eric")

		// Execute
		node := NewNode(key, 111)
		key[0] = 'x'

		// Check
		assert.Equal(t, []byte("eric"), node.Key, "key unaffected by caller mutation")
	})
}

func TestAppend(t *testing.T) {
	t.Run("appends to a single node chain", func(t *testing.T) {
		// Prepare
		head := NewNode([]byte("eric"), 111)
		node := NewNode([]byte("rice"), 222)

		// Execute
		Append(head, node)

		// Check
		assert.Equal(t, node, head.next, "node is immediate successor")
		assert.Nil(t, node.next, "new tail has no successor")
	})

	t.Run("appends to the tail of a longer chain", func(t *testing.T) {
		// Prepare
		head := NewNode([]byte("a"), 1)
		second := NewNode([]byte("b"), 2)
		third := NewNode([]byte("c"), 3)
		Append(head, second)
		Append(head, third)

		// Execute
		node := NewNode([]byte("d"), 4)
		Append(head, node)

		// Check
		assert.Equal(t, node, third.next, "node linked at old tail")
		assert.Nil(t, node.next, "new tail has no successor")
		assert.Equal(t, int64(4), Count(head), "chain grew by one")
	})

	t.Run("forces the next link of the appended node to nil", func(t *testing.T) {
		// Prepare
		head := NewNode([]byte("a"), 1)
		stray := NewNode([]byte("b"), 2)
		stray.next = NewNode([]byte("c"), 3)

		// Execute
		Append(head, stray)

		// Check
		assert.Nil(t, stray.next, "no accidental splicing")
		assert.Equal(t, int64(2), Count(head), "chain grew by exactly one")
	})
}

func TestFindByKey(t *testing.T) {
	t.Run("finds a node by key", func(t *testing.T) {
		// Prepare
		head := NewNode([]byte("eric"), 111)
		Append(head, NewNode([]byte("rice"), 222))
		Append(head, NewNode([]byte("icer"), 333))

		// Execute
		node := FindByKey(head, []byte("rice"))

		// Check
		assert.NotNil(t, node, "node found")
		assert.Equal(t, []byte("rice"), node.Key, "correct key")
		assert.Equal(t, int64(222), node.Value, "correct value")
	})

	t.Run("returns nil when key is not in chain", func(t *testing.T) {
		// Prepare
		head := NewNode([]byte("eric"), 111)
		Append(head, NewNode([]byte("rice"), 222))

		// Execute
		node := FindByKey(head, []byte("john"))

		// Check
		assert.Nil(t, node, "no node found")
	})

	t.Run("returns nil on an empty chain", func(t *testing.T) {
		// Execute
		node := FindByKey(nil, []byte("eric"))

		// Check
		assert.Nil(t, node, "no node found")
	})
}

func TestRelease(t *testing.T) {
	t.Run("releases every node in a chain", func(t *testing.T) {
		// Prepare
		head := NewNode([]byte("a"), 1)
		second := NewNode([]byte("b"), 2)
		third := NewNode([]byte("c"), 3)
		Append(head, second)
		Append(head, third)

		// Execute
		released := Release(head)

		// Check
		assert.Equal(t, int64(3), released, "all nodes released")
		assert.Nil(t, head.next, "head unlinked")
		assert.Nil(t, second.next, "second unlinked")
		assert.Nil(t, third.next, "third unlinked")
	})

	t.Run("releases nothing on an empty chain", func(t *testing.T) {
		// Execute
		released := Release(nil)

		// Check
		assert.Zero(t, released, "no nodes released")
	})
}

func TestCount(t *testing.T) {
	t.Run("counts nodes in a chain", func(t *testing.T) {
		// Prepare
		head := NewNode([]byte("a"), 1)
		Append(head, NewNode([]byte("b"), 2))

		// Execute and Check
		assert.Equal(t, int64(2), Count(head), "correct count")
	})

	t.Run("counts zero on an empty chain", func(t *testing.T) {
		// Execute and Check
		assert.Zero(t, Count(nil), "correct count")
	})
}
