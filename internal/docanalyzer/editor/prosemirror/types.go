// Пакет prosemirror описывает дерево содержимого документа в модели ProseMirror/TipTap.
// Схема задаёт типы нод и марок, а ноды, построенные через схему, неизменяемы:
// преобразования (например, Cut) возвращают новое дерево, исходное остаётся прежним.
//
// Основные возможности:
//   - Схема документа с типами нод и марок, значениями атрибутов по умолчанию и сериализаторами в простой текст.
//   - Учёт размеров нод (позиционная адресация ProseMirror) и обход дерева в глубину.
//   - Извлечение текста (TextContent, TextBetween) и срезы дерева (Cut).
//   - Чтение и запись JSON в формате редактора TipTap.
package prosemirror

import (
	"errors"
	"fmt"
	"maps"
)

// Attrs - атрибуты ноды или марки.
type Attrs map[string]any

// NodeSpec описывает тип ноды в схеме.
type NodeSpec struct {
	// Inline - строчная нода (text, mention, hardBreak). Остальные считаются блочными.
	Inline bool
	// Leaf - нода не может иметь содержимого.
	Leaf bool
	// InlineContent - блок содержит строчные ноды (paragraph, heading, codeBlock).
	InlineContent bool
	// Attrs - значения атрибутов по умолчанию.
	Attrs Attrs
	// LeafText возвращает текст листовой ноды для TextContent.
	LeafText func(node *Node) string
	// ToPlainText - собственный сериализатор ноды в простой текст.
	ToPlainText func(node *Node) string
}

// MarkSpec описывает тип марки в схеме.
type MarkSpec struct {
	Attrs Attrs
}

// NodeType - тип ноды, зарегистрированный в схеме.
type NodeType struct {
	Name   string
	Spec   NodeSpec
	schema *Schema
}

func (t *NodeType) Schema() *Schema {
	return t.schema
}

func (t *NodeType) IsText() bool {
	return t.Name == TextNodeName
}

func (t *NodeType) IsInline() bool {
	return t.Spec.Inline || t.IsText()
}

func (t *NodeType) IsBlock() bool {
	return !t.IsInline()
}

func (t *NodeType) IsLeaf() bool {
	return t.Spec.Leaf || t.IsText()
}

func (t *NodeType) IsTextblock() bool {
	return t.IsBlock() && t.Spec.InlineContent
}

// MarkType - тип марки, зарегистрированный в схеме.
type MarkType struct {
	Name   string
	Spec   MarkSpec
	schema *Schema
}

func (t *MarkType) Schema() *Schema {
	return t.schema
}

// Schema - набор типов нод и марок документа.
type Schema struct {
	nodes       map[string]*NodeType
	marks       map[string]*MarkType
	strictMarks bool
}

// SchemaOption настраивает схему при создании.
type SchemaOption func(*Schema)

// StrictMarks включает строгий режим: неизвестная марка в JSON приводит к MalformedTreeError,
// а не пропускается с предупреждением.
func StrictMarks(strict bool) SchemaOption {
	return func(s *Schema) {
		s.strictMarks = strict
	}
}

// NewSchema создает схему из описаний нод и марок. Схема обязана содержать типы doc и text.
func NewSchema(nodes map[string]NodeSpec, marks map[string]MarkSpec, opts ...SchemaOption) (*Schema, error) {
	s := &Schema{
		nodes: make(map[string]*NodeType, len(nodes)),
		marks: make(map[string]*MarkType, len(marks)),
	}
	for _, opt := range opts {
		opt(s)
	}

	for name, spec := range nodes {
		if name == "" {
			return nil, errors.New("node type name is empty")
		}
		s.nodes[name] = &NodeType{Name: name, Spec: spec, schema: s}
	}
	for name, spec := range marks {
		if name == "" {
			return nil, errors.New("mark type name is empty")
		}
		s.marks[name] = &MarkType{Name: name, Spec: spec, schema: s}
	}

	if _, ok := s.nodes[DocNodeName]; !ok {
		return nil, fmt.Errorf("schema is missing the %q node type", DocNodeName)
	}
	if _, ok := s.nodes[TextNodeName]; !ok {
		return nil, fmt.Errorf("schema is missing the %q node type", TextNodeName)
	}
	return s, nil
}

// MustNewSchema аналогична NewSchema, но паникует при ошибке.
func MustNewSchema(nodes map[string]NodeSpec, marks map[string]MarkSpec, opts ...SchemaOption) *Schema {
	s, err := NewSchema(nodes, marks, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// NodeType возвращает тип ноды по имени или nil.
func (s *Schema) NodeType(name string) *NodeType {
	return s.nodes[name]
}

// MarkType возвращает тип марки по имени или nil.
func (s *Schema) MarkType(name string) *MarkType {
	return s.marks[name]
}

// TopNodeType - тип корневой ноды документа.
func (s *Schema) TopNodeType() *NodeType {
	return s.nodes[DocNodeName]
}

// PlainTextSerializers возвращает сериализаторы в простой текст по именам типов нод.
func (s *Schema) PlainTextSerializers() map[string]func(*Node) string {
	res := make(map[string]func(*Node) string)
	for name, t := range s.nodes {
		if t.Spec.ToPlainText != nil {
			res[name] = t.Spec.ToPlainText
		}
	}
	return res
}

// Node создает ноду указанного типа. Текстовые ноды создаются через Text.
func (s *Schema) Node(name string, attrs Attrs, content []*Node, marks ...*Mark) (*Node, error) {
	t := s.nodes[name]
	if t == nil {
		return nil, &MalformedTreeError{Reason: fmt.Sprintf("unknown node type %q", name)}
	}
	if t.IsText() {
		return nil, &MalformedTreeError{Reason: "text nodes must be created with Schema.Text"}
	}
	if t.IsLeaf() && len(content) > 0 {
		return nil, &MalformedTreeError{Reason: fmt.Sprintf("leaf node %q can not have content", name)}
	}

	frag, err := newFragment(content)
	if err != nil {
		return nil, err
	}

	return &Node{
		typ:     t,
		attrs:   computeAttrs(t.Spec.Attrs, attrs),
		content: frag,
		marks:   cloneMarks(marks),
	}, nil
}

// MustNode аналогична Node, но паникует при ошибке.
func (s *Schema) MustNode(name string, attrs Attrs, content ...*Node) *Node {
	n, err := s.Node(name, attrs, content)
	if err != nil {
		panic(err)
	}
	return n
}

// Text создает текстовую ноду. Пустые текстовые ноды не допускаются.
func (s *Schema) Text(text string, marks ...*Mark) (*Node, error) {
	if text == "" {
		return nil, &MalformedTreeError{Reason: "empty text nodes are not allowed"}
	}
	return &Node{
		typ:   s.nodes[TextNodeName],
		attrs: Attrs{},
		text:  text,
		marks: cloneMarks(marks),
	}, nil
}

// MustText аналогична Text, но паникует при ошибке.
func (s *Schema) MustText(text string, marks ...*Mark) *Node {
	n, err := s.Text(text, marks...)
	if err != nil {
		panic(err)
	}
	return n
}

// Mark создает марку указанного типа.
func (s *Schema) Mark(name string, attrs Attrs) (*Mark, error) {
	t := s.marks[name]
	if t == nil {
		return nil, &MalformedTreeError{Reason: fmt.Sprintf("unknown mark type %q", name)}
	}
	return &Mark{typ: t, attrs: computeAttrs(t.Spec.Attrs, attrs)}, nil
}

// MustMark аналогична Mark, но паникует при ошибке.
func (s *Schema) MustMark(name string, attrs Attrs) *Mark {
	m, err := s.Mark(name, attrs)
	if err != nil {
		panic(err)
	}
	return m
}

// computeAttrs объединяет переданные атрибуты со значениями по умолчанию.
// Отсутствующие и null значения заменяются значениями по умолчанию.
func computeAttrs(defaults Attrs, given Attrs) Attrs {
	res := make(Attrs, len(defaults)+len(given))
	maps.Copy(res, given)
	for k, v := range defaults {
		if cur, ok := res[k]; !ok || cur == nil {
			res[k] = v
		}
	}
	return res
}

func cloneMarks(marks []*Mark) []*Mark {
	if len(marks) == 0 {
		return nil
	}
	res := make([]*Mark, 0, len(marks))
	for _, m := range marks {
		if m != nil {
			res = append(res, m)
		}
	}
	return res
}
