package docanalyzer

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestValidator(t *testing.T) {
	rv := NewRequestValidator()
	require.NotNil(t, rv)

	assert.NoError(t, rv.Validate(AnalyzeRequest{}))
	assert.NoError(t, rv.Validate(AnalyzeRequest{Operations: []string{"text", "Headings"}}))

	err := rv.Validate(AnalyzeRequest{Operations: []string{"text", "render"}})
	require.Error(t, err)
	verrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	assert.Equal(t, "operation", verrs[0].Tag())
	assert.Equal(t, "render", verrs[0].Value())

	assert.Error(t, rv.Validate(AttachmentsRequest{}))
	assert.NoError(t, rv.Validate(AttachmentsRequest{Text: "x"}))

	// не структура
	assert.NoError(t, rv.Validate("text"))
}
