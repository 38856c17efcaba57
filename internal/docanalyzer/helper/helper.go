// Пакет helper извлекает структурированные данные из дерева документа: простой текст,
// заголовки с уникальными якорями, комментарии, состояние чек-листов, а также обрезает
// пустые блоки в начале и конце документа.
//
// Все функции чистые: входное дерево не изменяется, результат каждый раз вычисляется заново,
// поэтому один документ можно анализировать из нескольких горутин без блокировок.
package helper

// Heading - заголовок верхнего уровня документа.
type Heading struct {
	Title string `json:"title"`
	Level int    `json:"level"`
	ID    string `json:"id"`
}

// CommentMark - комментарий, прикрепленный к фрагменту текста.
type CommentMark struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Text   string `json:"text"`
}

// Task - пункт чек-листа.
type Task struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// TasksSummary - сводка по пунктам чек-листов.
type TasksSummary struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}
