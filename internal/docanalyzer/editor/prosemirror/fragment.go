package prosemirror

import "strings"

// Fragment - упорядоченный список дочерних нод с общим размером.
type Fragment struct {
	children []*Node
	size     int
}

func newFragment(children []*Node) (Fragment, error) {
	var f Fragment
	if len(children) == 0 {
		return f, nil
	}
	f.children = make([]*Node, 0, len(children))
	for _, child := range children {
		if child == nil || child.typ == nil {
			return Fragment{}, &MalformedTreeError{Reason: "child node has no type"}
		}
		f.children = append(f.children, child)
		f.size += child.NodeSize()
	}
	return f, nil
}

// Size - сумма размеров дочерних нод.
func (f Fragment) Size() int {
	return f.size
}

func (f Fragment) ChildCount() int {
	return len(f.children)
}

// Child возвращает дочернюю ноду по индексу, паникует при выходе за границы.
func (f Fragment) Child(index int) *Node {
	return f.children[index]
}

// MaybeChild возвращает дочернюю ноду по индексу или nil.
func (f Fragment) MaybeChild(index int) *Node {
	if index < 0 || index >= len(f.children) {
		return nil
	}
	return f.children[index]
}

// ForEach вызывает fn для каждой дочерней ноды с ее смещением внутри фрагмента.
func (f Fragment) ForEach(fn func(child *Node, offset int, index int)) {
	pos := 0
	for i, child := range f.children {
		fn(child, pos, i)
		pos += child.NodeSize()
	}
}

// NodesBetween обходит в глубину ноды, пересекающие диапазон [from, to).
// Если fn возвращает false, потомки ноды не посещаются.
func (f Fragment) NodesBetween(from, to int, fn func(node *Node, pos int, parent *Node, index int) bool, nodeStart int, parent *Node) {
	pos := 0
	for i := 0; i < len(f.children) && pos < to; i++ {
		child := f.children[i]
		end := pos + child.NodeSize()
		if end > from && fn(child, nodeStart+pos, parent, i) && child.content.size > 0 {
			start := pos + 1
			child.NodesBetween(max(0, from-start), min(child.content.size, to-start), fn, nodeStart+start)
		}
		pos = end
	}
}

// TextBetween собирает текст диапазона [from, to). Перед каждым текстовым блоком,
// кроме первого, вставляется blockSeparator.
func (f Fragment) TextBetween(from, to int, blockSeparator string) string {
	var sb strings.Builder
	first := true
	f.NodesBetween(from, to, func(node *Node, pos int, _ *Node, _ int) bool {
		var nodeText string
		switch {
		case node.IsText():
			nodeText = sliceRunes(node.text, max(from, pos)-pos, to-pos)
		case node.IsLeaf() && node.typ.Spec.LeafText != nil:
			nodeText = node.typ.Spec.LeafText(node)
		}

		if node.IsBlock() && ((node.IsLeaf() && nodeText != "") || node.IsTextblock()) && blockSeparator != "" {
			if first {
				first = false
			} else {
				sb.WriteString(blockSeparator)
			}
		}
		sb.WriteString(nodeText)
		return true
	}, 0, nil)
	return sb.String()
}

// Cut возвращает фрагмент, содержащий только диапазон [from, to).
// Ноды, попавшие в диапазон целиком, переиспользуются без копирования.
func (f Fragment) Cut(from, to int) Fragment {
	if from == 0 && to == f.size {
		return f
	}

	var res Fragment
	if to <= from {
		return res
	}

	pos := 0
	for i := 0; i < len(f.children) && pos < to; i++ {
		child := f.children[i]
		end := pos + child.NodeSize()
		if end > from {
			if pos < from || end > to {
				if child.IsText() {
					child = child.Cut(max(0, from-pos), min(runeLen(child.text), to-pos))
				} else {
					child = child.Cut(max(0, from-pos-1), min(child.content.size, to-pos-1))
				}
			}
			res.children = append(res.children, child)
			res.size += child.NodeSize()
		}
		pos = end
	}
	return res
}

// Eq сравнивает фрагменты поэлементно.
func (f Fragment) Eq(other Fragment) bool {
	if len(f.children) != len(other.children) {
		return false
	}
	for i := range f.children {
		if !f.children[i].Eq(other.children[i]) {
			return false
		}
	}
	return true
}
