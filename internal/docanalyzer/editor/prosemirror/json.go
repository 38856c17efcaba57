package prosemirror

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

// jsonNode - представление ноды в JSON редактора TipTap.
type jsonNode struct {
	Type    string     `json:"type"`
	Attrs   Attrs      `json:"attrs,omitempty"`
	Content []jsonNode `json:"content,omitempty"`
	Marks   []jsonMark `json:"marks,omitempty"`
	Text    string     `json:"text,omitempty"`
}

// jsonMark - представление марки в JSON редактора TipTap.
type jsonMark struct {
	Type  string `json:"type"`
	Attrs Attrs  `json:"attrs,omitempty"`
}

// ParseJSON читает документ TipTap из r и строит дерево по схеме.
// Корневая нода обязана иметь тип doc.
func ParseJSON(r io.Reader, schema *Schema) (*Node, error) {
	var root jsonNode
	if err := json.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("decode document json: %w", err)
	}

	if root.Type != DocNodeName {
		return nil, &MalformedTreeError{Reason: fmt.Sprintf("root node must be %q, got %q", DocNodeName, root.Type)}
	}

	return schema.nodeFromJSON(root, "")
}

// NodeFromJSON строит ноду произвольного типа из JSON.
func (s *Schema) NodeFromJSON(data []byte) (*Node, error) {
	var jn jsonNode
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&jn); err != nil {
		return nil, fmt.Errorf("decode node json: %w", err)
	}
	return s.nodeFromJSON(jn, "")
}

func (s *Schema) nodeFromJSON(jn jsonNode, path string) (*Node, error) {
	if jn.Type == "" {
		return nil, &MalformedTreeError{Path: path, Reason: "node type is missing"}
	}

	marks := make([]*Mark, 0, len(jn.Marks))
	for i, jm := range jn.Marks {
		mark, err := s.Mark(jm.Type, jm.Attrs)
		if err != nil {
			if s.strictMarks {
				return nil, err.(*MalformedTreeError).withPath(fmt.Sprintf("%smarks[%d]", pathPrefix(path), i))
			}
			slog.Warn("Unknown mark type", "type", jm.Type, "path", path)
			continue
		}
		marks = append(marks, mark)
	}

	if jn.Type == TextNodeName {
		if len(jn.Content) > 0 {
			return nil, &MalformedTreeError{Path: path, Reason: "text node can not have content"}
		}
		n, err := s.Text(jn.Text, marks...)
		if err != nil {
			return nil, err.(*MalformedTreeError).withPath(path)
		}
		return n, nil
	}

	content := make([]*Node, 0, len(jn.Content))
	for i, child := range jn.Content {
		n, err := s.nodeFromJSON(child, fmt.Sprintf("%scontent[%d]", pathPrefix(path), i))
		if err != nil {
			return nil, err
		}
		content = append(content, n)
	}

	n, err := s.Node(jn.Type, jn.Attrs, content, marks...)
	if err != nil {
		if mte, ok := err.(*MalformedTreeError); ok {
			return nil, mte.withPath(path)
		}
		return nil, err
	}
	return n, nil
}

// MarshalJSON сериализует ноду в JSON редактора TipTap.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n == nil || n.typ == nil {
		return nil, &MalformedTreeError{Reason: "node has no type"}
	}
	return json.Marshal(n.toJSON())
}

func (n *Node) toJSON() jsonNode {
	jn := jsonNode{
		Type: n.typ.Name,
		Text: n.text,
	}
	if len(n.attrs) > 0 {
		jn.Attrs = n.attrs
	}
	for _, m := range n.marks {
		jm := jsonMark{Type: m.typ.Name}
		if len(m.attrs) > 0 {
			jm.Attrs = m.attrs
		}
		jn.Marks = append(jn.Marks, jm)
	}
	for _, child := range n.content.children {
		jn.Content = append(jn.Content, child.toJSON())
	}
	return jn
}
