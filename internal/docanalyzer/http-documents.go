package docanalyzer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aisa-it/docanalyzer/internal/docanalyzer/apierrors"
	"github.com/aisa-it/docanalyzer/internal/docanalyzer/editor/prosemirror"
	"github.com/aisa-it/docanalyzer/internal/docanalyzer/helper"
	"github.com/aisa-it/docanalyzer/internal/docanalyzer/report"
	errStack "github.com/aisa-it/docanalyzer/internal/docanalyzer/stack-error"
	"github.com/go-playground/validator"
	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
)

type AnalyzeRequest struct {
	Document   json.RawMessage `json:"document"`
	Operations []string        `json:"operations" validate:"omitempty,dive,operation"`
}

type AttachmentsRequest struct {
	Text string `json:"text" validate:"required"`
}

type TextResponse struct {
	Text  string `json:"text"`
	Empty bool   `json:"empty"`
}

type AttachmentsResponse struct {
	IDs []uuid.UUID `json:"ids"`
}

func (s *Services) AddDocumentServices(g *echo.Group) {
	docGroup := g.Group("documents/")

	docGroup.POST("analyze/", s.analyzeDocument)
	docGroup.POST("trim/", s.trimDocument)
	docGroup.POST("text/", s.documentText)
	docGroup.GET("empty/", s.emptyDocument)

	g.POST("attachments/ids/", s.attachmentIDs)
}

// analyzeDocument godoc
// @id analyzeDocument
// @Summary Документы: анализ документа
// @Description Выполняет перечисленные операции над документом. Без операций выполняются все. С параметром format=markdown отчет возвращается в Markdown.
// @Tags Documents
// @Accept json
// @Produce json
// @Param format query string false "Формат отчета: json или markdown"
// @Param data body AnalyzeRequest true "Документ и операции"
// @Success 200 {object} report.Report "Отчет"
// @Failure 400 {object} apierrors.DefinedError "Некорректные параметры запроса"
// @Failure 413 {object} apierrors.DefinedError "Слишком большой документ"
// @Failure 422 {object} apierrors.DefinedError "Нарушена структура документа"
// @Router /api/documents/analyze/ [post]
func (s *Services) analyzeDocument(c echo.Context) error {
	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return s.documentError(c, err)
	}

	if err := c.Validate(req); err != nil {
		s.metrics.failure(failureInvalidInput)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "operation" {
			return EErrorDefined(c, apierrors.ErrUnknownOperation.WithFormattedMessage(verrs[0].Value()))
		}
		return EErrorDefined(c, apierrors.ErrInvalidRequest.WithFormattedMessage(err.Error()))
	}

	ops := make([]report.Operation, 0, len(req.Operations))
	for _, name := range req.Operations {
		op, err := report.ParseOperation(name)
		if err != nil {
			return EErrorDefined(c, apierrors.ErrUnknownOperation.WithFormattedMessage(name))
		}
		ops = append(ops, op)
	}
	if len(ops) == 0 {
		ops = report.AllOperations()
	}

	raw := bytes.TrimSpace(req.Document)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		s.metrics.failure(failureInvalidInput)
		return EErrorDefined(c, apierrors.ErrDocumentRequired)
	}

	doc, err := prosemirror.ParseJSON(bytes.NewReader(raw), s.schema)
	if err != nil {
		return s.documentError(c, err)
	}

	start := time.Now()
	r, err := report.Build(doc, s.schema, ops...)
	if err != nil {
		errStack.GetError(c, errStack.TrackErrorStack(err).AddContext("operations", ops))
		return EError(c, err)
	}
	s.metrics.observeAnalysis(ops, doc.NodeSize(), start)

	if c.QueryParam("format") == "markdown" {
		var buf bytes.Buffer
		if err := report.WriteMarkdown(&buf, r); err != nil {
			return EError(c, err)
		}
		return c.Blob(http.StatusOK, "text/markdown; charset=UTF-8", buf.Bytes())
	}
	return c.JSON(http.StatusOK, r)
}

// trimDocument godoc
// @id trimDocument
// @Summary Документы: обрезка пустых блоков
// @Description Удаляет пустые блоки верхнего уровня в начале и конце документа
// @Tags Documents
// @Accept json
// @Produce json
// @Param data body object true "Документ"
// @Success 200 {object} object "Документ без пустых блоков"
// @Failure 400 {object} apierrors.DefinedError "Некорректный JSON документа"
// @Failure 422 {object} apierrors.DefinedError "Нарушена структура документа"
// @Router /api/documents/trim/ [post]
func (s *Services) trimDocument(c echo.Context) error {
	doc, err := s.readDocument(c)
	if err != nil {
		return s.documentError(c, err)
	}

	start := time.Now()
	trimmed := helper.Trim(doc)
	s.metrics.observeAnalysis([]report.Operation{report.OpTrim}, doc.NodeSize(), start)

	return c.JSON(http.StatusOK, trimmed)
}

// documentText godoc
// @id documentText
// @Summary Документы: текст документа
// @Description Возвращает простой текст документа и признак пустого документа
// @Tags Documents
// @Accept json
// @Produce json
// @Param data body object true "Документ"
// @Success 200 {object} TextResponse "Текст"
// @Failure 400 {object} apierrors.DefinedError "Некорректный JSON документа"
// @Failure 422 {object} apierrors.DefinedError "Нарушена структура документа"
// @Router /api/documents/text/ [post]
func (s *Services) documentText(c echo.Context) error {
	doc, err := s.readDocument(c)
	if err != nil {
		return s.documentError(c, err)
	}

	start := time.Now()
	resp := TextResponse{
		Text:  helper.ToPlainText(doc, s.schema),
		Empty: helper.IsEmpty(doc),
	}
	s.metrics.observeAnalysis([]report.Operation{report.OpText, report.OpEmpty}, doc.NodeSize(), start)

	return c.JSON(http.StatusOK, resp)
}

// emptyDocument godoc
// @id emptyDocument
// @Summary Документы: пустой документ
// @Description Возвращает пустой документ из одного параграфа
// @Tags Documents
// @Produce json
// @Success 200 {object} object "Пустой документ"
// @Router /api/documents/empty/ [get]
func (s *Services) emptyDocument(c echo.Context) error {
	return c.JSON(http.StatusOK, helper.GetEmptyDocument(s.schema))
}

// attachmentIDs godoc
// @id attachmentIDs
// @Summary Вложения: поиск идентификаторов
// @Description Ищет в тексте ссылки на вложения и возвращает их идентификаторы без повторов
// @Tags Attachments
// @Accept json
// @Produce json
// @Param data body AttachmentsRequest true "Текст"
// @Success 200 {object} AttachmentsResponse "Идентификаторы вложений"
// @Failure 400 {object} apierrors.DefinedError "Некорректные параметры запроса"
// @Router /api/attachments/ids/ [post]
func (s *Services) attachmentIDs(c echo.Context) error {
	var req AttachmentsRequest
	if err := c.Bind(&req); err != nil {
		return s.documentError(c, err)
	}

	if err := c.Validate(req); err != nil {
		return EErrorDefined(c, apierrors.ErrAttachmentTextRequired)
	}

	return c.JSON(http.StatusOK, AttachmentsResponse{IDs: helper.ParseAttachmentIDs(req.Text)})
}

func (s *Services) readDocument(c echo.Context) (*prosemirror.Node, error) {
	return prosemirror.ParseJSON(c.Request().Body, s.schema)
}

// documentError переводит ошибки разбора документа в ошибки API.
func (s *Services) documentError(c echo.Context, err error) error {
	if errStack.IsClientError(err) {
		errStack.GetError(c, errStack.TrackErrorStack(err))
	}

	var mte *prosemirror.MalformedTreeError
	if errors.As(err, &mte) {
		s.metrics.failure(failureMalformedTree)
		msg := mte.Reason
		if mte.Path != "" {
			msg = mte.Path + ": " + mte.Reason
		}
		return EErrorDefined(c, apierrors.ErrMalformedTree.WithFormattedMessage(msg))
	}

	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code == http.StatusRequestEntityTooLarge {
		s.metrics.failure(failureTooLarge)
		return EErrorDefined(c, apierrors.ErrEntityToLarge)
	}

	s.metrics.failure(failureInvalidJSON)
	return EErrorDefined(c, apierrors.ErrInvalidDocumentJSON.WithFormattedMessage(errorMessage(err)))
}

func errorMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			return he.Internal.Error()
		}
		return fmt.Sprint(he.Message)
	}
	return err.Error()
}
