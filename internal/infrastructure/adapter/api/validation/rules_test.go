package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomCodeRule(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("roomcode", roomCode))

	type body struct {
		RoomCode string `validate:"required,roomcode"`
	}

	tests := []struct {
		code  string
		valid bool
	}{
		{"AB12CD", true},
		{" ab12cd ", true},
		{"ABC", false},
		{"AB-12C", false},
		{"ABCDEFGHIJKLM", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := v.Struct(body{RoomCode: tt.code})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRegisterRules(t *testing.T) {
	assert.NoError(t, RegisterRules())
}
