package prosemirror_test

import (
	"fmt"
	"strings"

	"github.com/aisa-it/docanalyzer/internal/docanalyzer/editor/prosemirror"
)

// ExampleParseJSON демонстрирует разбор JSON документа TipTap.
func ExampleParseJSON() {
	jsonContent := `{
		"type": "doc",
		"content": [
			{
				"type": "paragraph",
				"content": [
					{"type": "text", "marks": [{"type": "bold"}], "text": "Привет"},
					{"type": "text", "text": " "},
					{"type": "text", "marks": [{"type": "italic"}], "text": "мир"}
				]
			}
		]
	}`

	doc, err := prosemirror.ParseJSON(strings.NewReader(jsonContent), prosemirror.DefaultSchema())
	if err != nil {
		fmt.Printf("Ошибка парсинга: %v\n", err)
		return
	}

	fmt.Println(doc.ChildCount(), doc.TextContent(), doc.Content().Size())

	// Output:
	// 1 Привет мир 12
}
