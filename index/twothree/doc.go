// Package twothree implements an in-memory 2-3 search tree: an ordered map
// whose nodes hold one or two entries and, when internal, two or three
// children.
//
// # Structure
//
// Every node is either a leaf (no children) or internal with exactly one more
// child than it has entries:
//
//   - 2-node: one entry, children left and middle
//   - 3-node: two entries, children left, middle and right
//
// All leaves sit at the same depth. Insertion keeps that property by
// splitting a node that would hold three entries and promoting its middle
// entry into the parent; when the root splits, a new root is created and the
// tree grows by one level.
//
// # Usage
//
//	t := twothree.New[int, string]()
//	_ = t.Put(10, "ten")
//	_ = t.Put(5, "five")
//
//	v, ok := t.Find(10)
//
//	for k, v := range t.All() {
//	    fmt.Println(k, v)
//	}
//
// Deletion is not supported; Delete always returns ErrUnimplemented.
//
// A Tree is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves.
package twothree
