package uidom

// Selector decides whether a node matches a query.
type Selector func(*Node) bool

// ByKind matches nodes of the given element kind.
func ByKind(kind string) Selector {
	return func(n *Node) bool { return n.Kind == kind }
}

// ByAttr matches nodes carrying the given attribute, whatever its value.
func ByAttr(key string) Selector {
	return func(n *Node) bool {
		_, ok := n.Attr(key)
		return ok
	}
}

// ByName matches nodes with the given name.
func ByName(name string) Selector {
	return func(n *Node) bool { return n.Name == name }
}

// QueryDeep runs sel against start and every query root nested inside it, at
// any depth: shadow sub-roots and template content both count as roots even
// though neither is visible to plain child traversal. Each root is queried
// independently (descendants only, without crossing into nested roots) and
// the matches are concatenated in root-discovery order. Roots are disjoint
// scopes, so no deduplication is needed.
func QueryDeep(sel Selector, start *Node) []*Node {
	if start == nil {
		return nil
	}

	// Breadth-first sweep collecting every reachable root. Children of a
	// discovered root join the queue so roots nested inside shadow trees or
	// template content are found too.
	roots := []*Node{start}
	queue := append([]*Node(nil), start.children...)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.shadow != nil {
			roots = append(roots, n.shadow)
			queue = append(queue, n.shadow.children...)
		}
		if n.Kind == KindTemplate && n.content != nil {
			roots = append(roots, n.content)
			queue = append(queue, n.content.children...)
		}
		queue = append(queue, n.children...)
	}

	var out []*Node
	for _, r := range roots {
		out = append(out, query(sel, r)...)
	}
	return out
}

// query matches sel against the descendants of root in document order. It
// stays inside root's own scope: shadow trees and template content hanging
// off descendants are separate roots and are not entered here.
func query(sel Selector, root *Node) []*Node {
	var out []*Node
	stack := make([]*Node, len(root.children))
	for i, c := range root.children {
		stack[len(root.children)-1-i] = c
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if sel(n) {
			out = append(out, n)
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
	return out
}

// Count returns the number of nodes reachable from root, root included,
// counting shadow trees and template content.
func Count(root *Node) int {
	if root == nil {
		return 0
	}
	total := 1
	for _, c := range root.children {
		total += Count(c)
	}
	if root.shadow != nil {
		total += Count(root.shadow)
	}
	if root.content != nil {
		total += Count(root.content)
	}
	return total
}
