package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"simple valid", "user@example.com", false},
		{"subdomain", "user@mail.example.co.uk", false},
		{"plus tag", "user+tag@example.com", false},
		{"missing at sign", "userexample.com", true},
		{"missing domain dot", "user@example", true},
		{"embedded space", "us er@example.com", true},
		{"empty", "", true},
		{"only at sign", "@", true},
		{"trailing dot only", "user@.", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEmail)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
