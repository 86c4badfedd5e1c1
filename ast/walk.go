package ast

import (
	"github.com/ava12/spellbreak/internal/queue"
)

// Children returns child nodes of n in field order, list elements are flattened.
func Children(n Node) []Node {
	var result []Node
	for _, f := range n.Fields() {
		result = appendNodes(result, f.Value)
	}
	return result
}

func appendNodes(nodes []Node, v Value) []Node {
	switch x := v.(type) {
	case Node:
		nodes = append(nodes, x)
	case List:
		for _, item := range x {
			nodes = appendNodes(nodes, item)
		}
	}
	return nodes
}

// NodeVisitor is called for each visited node.
// walkChildren tells whether children of n must be visited,
// walkSiblings tells whether following siblings of n must be visited.
type NodeVisitor func(n Node) (walkChildren, walkSiblings bool)

// Walk visits n and its descendants depth-first, parents before children.
func Walk(n Node, visitor NodeVisitor) {
	if n != nil {
		visitNode(n, visitor)
	}
}

func visitNode(n Node, v NodeVisitor) (visitSiblings bool) {
	vc, vs := v(n)
	if vc {
		for _, child := range Children(n) {
			if !visitNode(child, v) {
				break
			}
		}
	}

	return vs
}

// WalkStat contains node being visited by WalkLevels.
type WalkStat struct {
	Node  Node
	Level int
}

// WalkLevels visits n and its descendants breadth-first, level by level, root level is 0.
// Children of a node are not visited if visitor returns false.
func WalkLevels(n Node, visitor func(stat WalkStat) bool) {
	if n == nil {
		return
	}

	q := queue.New(WalkStat{n, 0})
	for !q.IsEmpty() {
		stat, _ := q.First()
		if !visitor(stat) {
			continue
		}

		for _, child := range Children(stat.Node) {
			q.Append(WalkStat{child, stat.Level + 1})
		}
	}
}

// Collect returns all nodes of given kind in depth-first order.
func Collect(n Node, kind string) []Node {
	var result []Node
	Walk(n, func(n Node) (bool, bool) {
		if n.Kind() == kind {
			result = append(result, n)
		}
		return true, true
	})
	return result
}
