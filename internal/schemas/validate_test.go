package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResume_Valid(t *testing.T) {
	doc := []byte(`{
		"basics": {"name": "Jo Anders", "email": "jo@example.com"},
		"work": [{"name": "Acme", "position": "Engineer", "highlights": ["did things"]}]
	}`)
	assert.NoError(t, ValidateResume(doc))
}

func TestValidateResume_MissingName(t *testing.T) {
	doc := []byte(`{"basics": {"label": "Engineer"}}`)
	err := ValidateResume(doc)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "name")
}

func TestValidateResume_WrongType(t *testing.T) {
	doc := []byte(`{"basics": {"name": "Jo"}, "work": [{"name": "Acme", "position": "Dev", "highlights": "oops"}]}`)
	err := ValidateResume(doc)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateResume_MalformedJSON(t *testing.T) {
	err := ValidateResume([]byte(`{"basics":`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateCoverLetter_Valid(t *testing.T) {
	doc := []byte(`{
		"metadata": {"name": "Jo Anders", "pronouns": "they/them"},
		"content": [
			{"type": "paragraph", "text": "Hello."},
			{"type": "list", "items": ["one", "two"]}
		]
	}`)
	assert.NoError(t, ValidateCoverLetter(doc))
}

func TestValidateCoverLetter_BadBlockType(t *testing.T) {
	doc := []byte(`{
		"metadata": {"name": "Jo"},
		"content": [{"type": "table"}]
	}`)
	err := ValidateCoverLetter(doc)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}
