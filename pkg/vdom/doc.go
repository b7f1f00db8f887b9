// Package vdom provides the virtual node tree, the diff algorithm, and the
// patch vocabulary used to describe container mutations.
//
// Nodes are plain data. Nothing in this package performs a mutation; Diff
// only describes the operations needed to transform one tree into another.
// The view renderer decides when patches are produced and the session decides
// how they reach the client.
package vdom
