package chain

import (
	"github.com/gostonefire/memhashmap/internal/utils"
)

// Node - Represents one record in a bucket chain. Each node exclusively owns its successor, chains are
// built by strict append through the Append function and are hence guaranteed to be acyclic.
type Node struct {
	Key   []byte
	Value int64
	next  *Node
}

// NewNode - Returns a pointer to a new Node holding a private copy of the given key.
// The key is copied to make the node sole owner of its key bytes, a caller that reuses or mutates
// its key slice after a call can not corrupt the chain.
//   - key is the identifier of the record
//   - value is the value to store along with the key
func NewNode(key []byte, value int64) (node *Node) {
	k := make([]byte, len(key))
	_ = copy(k, key)

	node = &Node{Key: k, Value: value}

	return
}

// Append - Attaches node as the new tail of the chain rooted at head.
// The chain is walked to its current tail, which is an O(chain length) operation. The next link of the
// appended node is forced to nil regardless of its prior state, so an accidental splice of one chain
// into another can not happen.
//   - head is the first node of the chain
//   - node is the node to attach as new tail
func Append(head *Node, node *Node) {
	node.next = nil

	if head.next == nil {
		head.next = node
		return
	}

	current := head.next
	for current.next != nil {
		current = current.next
	}
	current.next = node
}

// FindByKey - Scans the chain rooted at head for a node with a matching key.
//   - head is the first node of the chain, or nil for an empty chain
//   - key is the identifier of the record to find
//
// It returns:
//   - node is the first node with matching key, or nil if the chain is empty or exhausted without a match
func FindByKey(head *Node, key []byte) (node *Node) {
	for current := head; current != nil; current = current.next {
		if utils.IsEqual(current.Key, key) {
			node = current
			return
		}
	}

	return
}

// Release - Unlinks every node in the chain rooted at head, walking from head to tail and detaching
// each node after having advanced past it. Once unlinked the nodes hold no references to each other
// and are up for garbage collection.
//   - head is the first node of the chain, or nil for an empty chain
//
// It returns:
//   - released is the number of nodes that were unlinked
func Release(head *Node) (released int64) {
	current := head
	for current != nil {
		next := current.next
		current.next = nil
		current.Key = nil
		current = next
		released++
	}

	return
}

// Count - Returns the number of nodes in the chain rooted at head.
//   - head is the first node of the chain, or nil for an empty chain
func Count(head *Node) (count int64) {
	for current := head; current != nil; current = current.next {
		count++
	}

	return
}
