package prosemirror

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"unicode/utf8"
)

// Node - элемент дерева документа. Поля закрыты: нода создается только через Schema
// и после создания не изменяется.
type Node struct {
	typ     *NodeType
	attrs   Attrs
	content Fragment
	marks   []*Mark
	text    string
}

func (n *Node) Type() *NodeType {
	return n.typ
}

// TypeName возвращает имя типа ноды или пустую строку для ноды без типа.
func (n *Node) TypeName() string {
	if n == nil || n.typ == nil {
		return ""
	}
	return n.typ.Name
}

// Attrs возвращает копию атрибутов ноды.
func (n *Node) Attrs() Attrs {
	return maps.Clone(n.attrs)
}

// Attr возвращает значение атрибута или nil.
func (n *Node) Attr(key string) any {
	return n.attrs[key]
}

func (n *Node) Content() Fragment {
	return n.content
}

// Marks возвращает копию списка марок ноды.
func (n *Node) Marks() []*Mark {
	return slices.Clone(n.marks)
}

// Text возвращает текст текстовой ноды.
func (n *Node) Text() string {
	return n.text
}

// TextSlice возвращает часть текста текстовой ноды по позициям [from, to).
func (n *Node) TextSlice(from, to int) string {
	return sliceRunes(n.text, from, to)
}

func (n *Node) ChildCount() int {
	return n.content.ChildCount()
}

func (n *Node) Child(index int) *Node {
	return n.content.Child(index)
}

func (n *Node) MaybeChild(index int) *Node {
	return n.content.MaybeChild(index)
}

// ForEach перебирает прямых потомков ноды.
func (n *Node) ForEach(fn func(child *Node, offset int, index int)) {
	n.content.ForEach(fn)
}

func (n *Node) IsText() bool {
	return n.typ != nil && n.typ.IsText()
}

func (n *Node) IsInline() bool {
	return n.typ != nil && n.typ.IsInline()
}

func (n *Node) IsBlock() bool {
	return n.typ != nil && n.typ.IsBlock()
}

func (n *Node) IsLeaf() bool {
	return n.typ != nil && n.typ.IsLeaf()
}

func (n *Node) IsTextblock() bool {
	return n.typ != nil && n.typ.IsTextblock()
}

// NodeSize - количество позиций, занимаемых нодой: длина текста в рунах для текстовой ноды,
// 1 для листовой ноды, размер содержимого плюс открывающий и закрывающий токены для остальных.
func (n *Node) NodeSize() int {
	switch {
	case n.IsText():
		return runeLen(n.text)
	case n.IsLeaf():
		return 1
	default:
		return n.content.size + 2
	}
}

// NodesBetween обходит потомков, пересекающих диапазон [from, to) содержимого ноды.
func (n *Node) NodesBetween(from, to int, fn func(node *Node, pos int, parent *Node, index int) bool, startPos int) {
	n.content.NodesBetween(from, to, fn, startPos, n)
}

// Descendants обходит всех потомков ноды в глубину слева направо.
// Если fn возвращает false, потомки текущей ноды пропускаются.
func (n *Node) Descendants(fn func(node *Node, pos int, parent *Node, index int) bool) {
	n.NodesBetween(0, n.content.size, fn, 0)
}

// TextContent - конкатенация текста всех потомков без разделителей блоков.
func (n *Node) TextContent() string {
	if n.IsText() {
		return n.text
	}
	return n.TextBetween(0, n.content.size, "")
}

// TextBetween - текст диапазона [from, to) содержимого ноды.
func (n *Node) TextBetween(from, to int, blockSeparator string) string {
	return n.content.TextBetween(from, to, blockSeparator)
}

// Cut возвращает новую ноду с содержимым из диапазона [from, to). Исходная нода не изменяется.
func (n *Node) Cut(from, to int) *Node {
	if n.IsText() {
		if from == 0 && to == runeLen(n.text) {
			return n
		}
		return &Node{typ: n.typ, attrs: n.attrs, marks: n.marks, text: sliceRunes(n.text, from, to)}
	}
	if from == 0 && to == n.content.size {
		return n
	}
	return n.copy(n.content.Cut(from, to))
}

func (n *Node) copy(content Fragment) *Node {
	return &Node{typ: n.typ, attrs: n.attrs, content: content, marks: n.marks}
}

// HasMark проверяет, есть ли у ноды марка указанного типа.
func (n *Node) HasMark(name string) bool {
	return slices.ContainsFunc(n.marks, func(m *Mark) bool {
		return m.typ.Name == name
	})
}

// Eq сравнивает ноды по типу, атрибутам, маркам, тексту и содержимому.
func (n *Node) Eq(other *Node) bool {
	if n == other {
		return true
	}
	if n == nil || other == nil {
		return false
	}
	if n.typ != other.typ || n.text != other.text {
		return false
	}
	if !reflect.DeepEqual(n.attrs, other.attrs) {
		return false
	}
	if !slices.EqualFunc(n.marks, other.marks, func(a, b *Mark) bool { return a.Eq(b) }) {
		return false
	}
	return n.content.Eq(other.content)
}

// Check проверяет структурные инварианты поддерева и возвращает MalformedTreeError при нарушении.
func (n *Node) Check() error {
	return n.check("")
}

func (n *Node) check(path string) error {
	if n == nil || n.typ == nil {
		return &MalformedTreeError{Path: path, Reason: "node has no type"}
	}
	if n.IsText() {
		if n.text == "" {
			return &MalformedTreeError{Path: path, Reason: "empty text nodes are not allowed"}
		}
		if n.content.ChildCount() > 0 {
			return &MalformedTreeError{Path: path, Reason: "text node can not have content"}
		}
		return nil
	}
	if n.IsLeaf() && n.content.ChildCount() > 0 {
		return &MalformedTreeError{Path: path, Reason: fmt.Sprintf("leaf node %q can not have content", n.typ.Name)}
	}

	size := 0
	for i, child := range n.content.children {
		childPath := fmt.Sprintf("%scontent[%d]", pathPrefix(path), i)
		if err := child.check(childPath); err != nil {
			return err
		}
		size += child.NodeSize()
	}
	if size != n.content.size {
		return &MalformedTreeError{Path: path, Reason: fmt.Sprintf("content size %d does not match children size %d", n.content.size, size)}
	}
	return nil
}

// String возвращает отладочное представление поддерева.
func (n *Node) String() string {
	if n == nil || n.typ == nil {
		return "<nil>"
	}
	if n.IsText() {
		return fmt.Sprintf("%q", n.text)
	}
	if n.content.ChildCount() == 0 {
		return n.typ.Name
	}
	parts := make([]string, 0, n.content.ChildCount())
	for _, child := range n.content.children {
		parts = append(parts, child.String())
	}
	return n.typ.Name + "(" + strings.Join(parts, ", ") + ")"
}

func pathPrefix(path string) string {
	if path == "" {
		return ""
	}
	return path + "."
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// sliceRunes возвращает подстроку по позициям рун [from, to).
func sliceRunes(s string, from, to int) string {
	if from <= 0 && to >= runeLen(s) {
		return s
	}
	r := []rune(s)
	from = max(0, from)
	to = min(len(r), to)
	if from >= to {
		return ""
	}
	return string(r[from:to])
}
