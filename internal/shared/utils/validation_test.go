package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/toolbox/internal/shared/errors"
)

type createSiteRequest struct {
	URL   string `json:"url" validate:"required,httpurl"`
	Label string `json:"label" validate:"max=10"`
}

func TestValidateStruct(t *testing.T) {
	require.NoError(t, ValidateStruct(createSiteRequest{URL: "https://example.com"}))

	err := ValidateStruct(createSiteRequest{Label: "far too long a label"})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Details, "url is required")
	assert.Contains(t, appErr.Details, "label must be at most 10 characters long")

	err = ValidateStruct(createSiteRequest{URL: "mailto:ops@example.com"})
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Details, "url must be a valid http or https URL")
}

func TestValidateHTTPURL(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr bool
	}{
		{"https://example.com/health", false},
		{"http://example.com", false},
		{"", true},
		{"example.com", true},
		{"ftp://example.com", true},
		{"https://", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			err := ValidateHTTPURL(tt.raw, "url")
			if tt.wantErr {
				assert.True(t, errors.IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
