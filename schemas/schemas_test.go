package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestEmbeddedSchemas_ValidJSON(t *testing.T) {
	for name, data := range map[string][]byte{
		"resume":       Resume,
		"cover_letter": CoverLetter,
	} {
		t.Run(name, func(t *testing.T) {
			require.NotEmpty(t, data)
			var v interface{}
			assert.NoError(t, json.Unmarshal(data, &v))
		})
	}
}

func TestEmbeddedSchemas_LoadAsJSONSchema(t *testing.T) {
	for name, data := range map[string][]byte{
		"resume":       Resume,
		"cover_letter": CoverLetter,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
			assert.NoError(t, err)
		})
	}
}
