// Пакет содержит определения ошибок API сервиса анализа документов.
// Каждая ошибка имеет код, статус HTTP и описание на английском и русском языках.
package apierrors

import (
	"fmt"
	"net/http"
	"strings"
)

type DefinedError struct {
	Code       int    `json:"code"`
	StatusCode int    `json:"-"`
	Err        string `json:"error"`
	RuErr      string `json:"ru_error,omitempty"`
}

func (e DefinedError) Error() string {
	return e.Err
}

var (
	// 1*** - document errors
	ErrInvalidDocumentJSON = DefinedError{Code: 1001, StatusCode: http.StatusBadRequest, Err: "invalid document json: %s", RuErr: "Некорректный JSON документа: %s"}
	ErrMalformedTree       = DefinedError{Code: 1002, StatusCode: http.StatusUnprocessableEntity, Err: "malformed document tree: %s", RuErr: "Нарушена структура документа: %s"}
	ErrDocumentRequired    = DefinedError{Code: 1003, StatusCode: http.StatusBadRequest, Err: "document is required", RuErr: "Не передан документ"}

	// 2*** - request errors
	ErrInvalidRequest         = DefinedError{Code: 2001, StatusCode: http.StatusBadRequest, Err: "invalid request: %s", RuErr: "Некорректный запрос: %s"}
	ErrUnknownOperation       = DefinedError{Code: 2002, StatusCode: http.StatusBadRequest, Err: "unknown operation %s", RuErr: "Неизвестная операция %s"}
	ErrAttachmentTextRequired = DefinedError{Code: 2003, StatusCode: http.StatusBadRequest, Err: "text is required", RuErr: "Не передан текст для поиска вложений"}

	// 5*** - common errors
	ErrGeneric       = DefinedError{Code: 5000, StatusCode: http.StatusBadRequest, Err: "Something went wrong. Please try again later or contact the support team.", RuErr: "Что-то пошло не так. Повторите попытку позже или обратитесь в службу поддержки"}
	ErrEntityToLarge = DefinedError{Code: 5010, StatusCode: http.StatusRequestEntityTooLarge, Err: "size exceeds the allowed limit", RuErr: "Размер документа превышает допустимый."}
	ErrNotFound      = DefinedError{Code: 5011, StatusCode: http.StatusNotFound, Err: "not found", RuErr: "Не найдено"}
	ErrUnauthorized  = DefinedError{Code: 5012, StatusCode: http.StatusUnauthorized, Err: "invalid access token", RuErr: "Неверный токен доступа"}
)

func (e DefinedError) WithFormattedMessage(args ...interface{}) DefinedError {
	if len(args) > 0 {
		e.Err = fmt.Sprintf(e.Err, args...)
		e.RuErr = fmt.Sprintf(e.RuErr, args...)
	} else {
		e.Err = strings.Replace(e.Err, "%s", "", -1)
		e.RuErr = strings.Replace(e.RuErr, "%s", "", -1)
	}
	return e
}
