package helper

import (
	"regexp"
	"slices"

	"github.com/gofrs/uuid"
)

const uuidPattern = `[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`

var (
	// AttachmentRedirectRegex - ссылка на вложение через редирект, группа id содержит идентификатор вложения.
	AttachmentRedirectRegex = regexp.MustCompile(`(?i)/api/attachments\.redirect\?id=(?P<id>` + uuidPattern + `)`)

	// AttachmentPublicRegex - путь к вложению в хранилище public/<uuid>/<uuid>, идентификатор вложения во втором сегменте.
	AttachmentPublicRegex = regexp.MustCompile(`(?i)public/(` + uuidPattern + `)/(?P<id>` + uuidPattern + `)`)
)

// ParseAttachmentIDs ищет ссылки на вложения в тексте и возвращает уникальные идентификаторы в порядке появления.
func ParseAttachmentIDs(text string) []uuid.UUID {
	type match struct {
		pos int
		id  uuid.UUID
	}

	var matches []match
	for _, re := range []*regexp.Regexp{AttachmentRedirectRegex, AttachmentPublicRegex} {
		idIndex := re.SubexpIndex("id")
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			id, err := uuid.FromString(text[loc[2*idIndex]:loc[2*idIndex+1]])
			if err != nil {
				continue
			}
			matches = append(matches, match{pos: loc[0], id: id})
		}
	}

	slices.SortStableFunc(matches, func(a, b match) int { return a.pos - b.pos })

	res := make([]uuid.UUID, 0, len(matches))
	seen := make(map[uuid.UUID]struct{}, len(matches))
	for _, m := range matches {
		if _, ok := seen[m.id]; ok {
			continue
		}
		seen[m.id] = struct{}{}
		res = append(res, m.id)
	}
	return res
}
