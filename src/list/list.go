// Package list implements an intrusive doubly-linked list primitive.
//
// Nodes are not allocated by this package; callers embed a Node at the
// start of their own records (often inside externally managed memory,
// addressed through unsafe.Pointer) and thread prev/next links through
// those records directly. This mirrors the dll collaborator a buddy
// allocator core consumes: node creation, address-ordered traversal,
// insert-after/before, delete-after/before, counting, and a predicate
// based find, all operating purely on links with no backing allocation
// of their own.
package list

import (
	"errors"
	"unsafe"
)

// ErrNilNode is returned when a required node argument is nil.
var ErrNilNode = errors.New("list: unexpected nil node")

// ErrLinkedNode is returned when a node expected to be unlinked (both
// prev and next nil) already belongs to a list.
var ErrLinkedNode = errors.New("list: node is already linked")

// Node is one link in the list. Its zero value is an unlinked node with
// no user data.
type Node struct {
	prev     *Node
	next     *Node
	userData unsafe.Pointer
}

// DecayFn is called on a node at the moment it is unlinked, e.g. to run
// caller-specific cleanup.
type DecayFn func(n *Node)

// TraverseFn visits a node during Traverse. cookie is whatever the
// caller passed to Traverse, shared across every call.
type TraverseFn func(n *Node, cookie any)

// PredicateFn reports whether the node carrying this user data is the
// one Find is looking for.
type PredicateFn func(userData unsafe.Pointer) bool

// InitNode zeroes n's links and stores userData, the same contract as
// creating a fresh standalone node. n must point at valid, writable
// memory; it is not allocated here.
func InitNode(n *Node, userData unsafe.Pointer) error {
	if n == nil {
		return ErrNilNode
	}
	n.prev = nil
	n.next = nil
	n.userData = userData
	return nil
}

// Destroy walks the whole list starting at head, invoking decay on every
// node. It does not unlink anything itself; decay is responsible for
// whatever cleanup the caller's node representation requires.
func Destroy(head *Node, decay DecayFn) error {
	if head == nil || decay == nil {
		return ErrNilNode
	}
	for n := head; n != nil; {
		next := n.next
		decay(n)
		n = next
	}
	return nil
}

// InsertAfter splices newNode in immediately after actNode. newNode must
// be unlinked (both links nil); actNode must be non-nil.
func InsertAfter(actNode, newNode *Node) error {
	if actNode == nil || newNode == nil {
		return ErrNilNode
	}
	if newNode.prev != nil || newNode.next != nil {
		return ErrLinkedNode
	}
	newNode.next = actNode.next
	newNode.prev = actNode
	if actNode.next != nil {
		actNode.next.prev = newNode
	}
	actNode.next = newNode
	return nil
}

// InsertBefore splices newNode in immediately before actNode. newNode
// must be unlinked; actNode must be non-nil.
func InsertBefore(actNode, newNode *Node) error {
	if actNode == nil || newNode == nil {
		return ErrNilNode
	}
	if newNode.prev != nil || newNode.next != nil {
		return ErrLinkedNode
	}
	newNode.prev = actNode.prev
	newNode.next = actNode
	if actNode.prev != nil {
		actNode.prev.next = newNode
	}
	actNode.prev = newNode
	return nil
}

// InsertEnd appends newNode after the last node reachable from head.
func InsertEnd(head, newNode *Node) error {
	return InsertAfter(LastNode(head), newNode)
}

// InsertBegin inserts newNode before head and returns the new head
// (always newNode on success).
func InsertBegin(head, newNode *Node) (*Node, error) {
	if err := InsertBefore(head, newNode); err != nil {
		return head, err
	}
	return newNode, nil
}

// DeleteAfter unlinks actNode's successor, if any, calling decay on it
// when provided. It is a no-op (returns nil, nil) when actNode has no
// successor.
func DeleteAfter(actNode *Node, decay DecayFn) (*Node, error) {
	if actNode == nil {
		return nil, ErrNilNode
	}
	removed := actNode.next
	if removed == nil {
		return nil, nil
	}
	actNode.next = removed.next
	if removed.next != nil {
		removed.next.prev = actNode
	}
	removed.next = nil
	removed.prev = nil
	if decay != nil {
		decay(removed)
	}
	return removed, nil
}

// DeleteBefore unlinks actNode's predecessor, if any, calling decay on it
// when provided. It is a no-op (returns nil, nil) when actNode has no
// predecessor.
func DeleteBefore(actNode *Node, decay DecayFn) (*Node, error) {
	if actNode == nil {
		return nil, ErrNilNode
	}
	removed := actNode.prev
	if removed == nil {
		return nil, nil
	}
	actNode.prev = removed.prev
	if removed.prev != nil {
		removed.prev.next = actNode
	}
	removed.next = nil
	removed.prev = nil
	if decay != nil {
		decay(removed)
	}
	return removed, nil
}

// DeleteBegin removes head itself, calling decay on it when provided, and
// returns the new head of the list (nil if head was the only node).
func DeleteBegin(head *Node, decay DecayFn) (*Node, error) {
	if head == nil {
		return nil, ErrNilNode
	}
	newHead := head.next
	if newHead != nil {
		newHead.prev = nil
	}
	head.next = nil
	head.prev = nil
	if decay != nil {
		decay(head)
	}
	return newHead, nil
}

// DeleteEnd removes the last node reachable from head, calling decay on
// it when provided, and returns head (unchanged unless head itself was
// the only, and thus last, node).
func DeleteEnd(head *Node, decay DecayFn) (*Node, error) {
	if head == nil {
		return nil, ErrNilNode
	}
	last := LastNode(head)
	if last == head {
		return DeleteBegin(head, decay)
	}
	if _, err := DeleteAfter(last.prev, decay); err != nil {
		return head, err
	}
	return head, nil
}

// FindHead walks prev links from n back to the first node of its list.
func FindHead(n *Node) *Node {
	if n == nil {
		return nil
	}
	for n.prev != nil {
		n = n.prev
	}
	return n
}

// LastNode walks next links from head to the last node of the list.
func LastNode(head *Node) *Node {
	if head == nil {
		return nil
	}
	n := head
	for n.next != nil {
		n = n.next
	}
	return n
}

// Traverse visits every node from head to the end of the list in order,
// calling fn with the shared cookie. It does nothing if head or fn is
// nil.
func Traverse(head *Node, fn TraverseFn, cookie any) {
	if head == nil || fn == nil {
		return
	}
	for n := head; n != nil; n = n.next {
		fn(n, cookie)
	}
}

// Count returns the number of nodes reachable from head, including head
// itself. It returns zero for a nil head.
func Count(head *Node) int {
	n := 0
	for cur := head; cur != nil; cur = cur.next {
		n++
	}
	return n
}

// Find returns the first node from head whose user data satisfies
// predicate, or nil if none does (or head is nil).
func Find(head *Node, predicate PredicateFn) *Node {
	if head == nil || predicate == nil {
		return nil
	}
	for n := head; n != nil; n = n.next {
		if predicate(n.userData) {
			return n
		}
	}
	return nil
}

// UserData returns the user data pointer stored in n.
func UserData(n *Node) unsafe.Pointer {
	return n.userData
}

// SetUserData overwrites the user data pointer stored in n.
func SetUserData(n *Node, userData unsafe.Pointer) {
	n.userData = userData
}

// Prev returns n's predecessor, or nil if n is the head of its list.
func Prev(n *Node) *Node {
	return n.prev
}

// Next returns n's successor, or nil if n is the tail of its list.
func Next(n *Node) *Node {
	return n.next
}
