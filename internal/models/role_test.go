package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"student", RoleStudent, false},
		{"Investor", RoleInvestor, false},
		{"  STUDENT ", RoleStudent, false},
		{"admin", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUser_Is(t *testing.T) {
	var nilUser *User
	assert.False(t, nilUser.Is(RoleStudent))

	u := &User{Role: RoleInvestor}
	assert.True(t, u.Is(RoleInvestor))
	assert.False(t, u.Is(RoleStudent))
}
