package prosemirror

import (
	"maps"
	"reflect"
)

// Mark - форматирование или аннотация текстовой ноды (bold, link, comment и т.д.).
type Mark struct {
	typ   *MarkType
	attrs Attrs
}

func (m *Mark) Type() *MarkType {
	return m.typ
}

// TypeName возвращает имя типа марки.
func (m *Mark) TypeName() string {
	if m == nil || m.typ == nil {
		return ""
	}
	return m.typ.Name
}

// Attrs возвращает копию атрибутов марки.
func (m *Mark) Attrs() Attrs {
	return maps.Clone(m.attrs)
}

func (m *Mark) Attr(key string) any {
	return m.attrs[key]
}

func (m *Mark) Eq(other *Mark) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil {
		return false
	}
	return m.typ == other.typ && reflect.DeepEqual(m.attrs, other.attrs)
}
