package dispatch

import (
	"testing"

	"docdesk/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvelope(t *testing.T) {
	tests := []struct {
		name     string
		stdout   string
		wantType string
		wantKind apperr.Kind
	}{
		{name: "success", stdout: `{"type": "success", "output": "x.pdf"}`, wantType: EnvelopeSuccess},
		{name: "trailing newline", stdout: "{\"type\": \"success\"}\n\n", wantType: EnvelopeSuccess},
		{name: "progress lines skipped", stdout: "{\"type\":\"progress\",\"progress\":10}\n{\"type\":\"success\",\"files\":[]}\n{\"type\":\"progress\",\"progress\":100}\n", wantType: EnvelopeSuccess},
		{name: "error", stdout: `{"type": "error", "message": "Page not found"}`, wantKind: apperr.KindExecutionFailure},
		{name: "error without message", stdout: `{"type": "error"}`, wantKind: apperr.KindExecutionFailure},
		{name: "not json", stdout: "Segmentation fault", wantKind: apperr.KindSerialization},
		{name: "empty", stdout: "", wantKind: apperr.KindSerialization},
		{name: "only progress", stdout: `{"type":"progress","progress":1}`, wantKind: apperr.KindSerialization},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := ParseEnvelope("dispatch.test", tt.stdout)
			if tt.wantKind != apperr.KindUnknown {
				assert.Nil(t, env)
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, env.Type)
			assert.NotEmpty(t, env.Payload)
		})
	}
}

func TestParseEnvelope_ErrorMessage(t *testing.T) {
	_, err := ParseEnvelope("dispatch.ocr_pdf", `{"type": "error", "message": "tesseract is not installed"}`)
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "tesseract is not installed", ae.Detail)
	assert.Equal(t, "dispatch.ocr_pdf", ae.Op)
}
