package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromClaims(t *testing.T) {
	tests := []struct {
		name    string
		claims  map[string]interface{}
		want    Principal
		wantErr bool
	}{
		{
			name: "employee claims",
			claims: map[string]interface{}{
				"sub":   "65f2a7b8c9d0e1f2a3b4c5d6",
				"email": "john@example.com",
				"role":  "employee",
			},
			want: Principal{
				ID:    "65f2a7b8c9d0e1f2a3b4c5d6",
				Email: "john@example.com",
				Role:  RoleEmployee,
			},
		},
		{
			name: "admin claims",
			claims: map[string]interface{}{
				"sub":   "65f2a7b8c9d0e1f2a3b4c5d7",
				"email": "admin@example.com",
				"role":  "admin",
			},
			want: Principal{
				ID:    "65f2a7b8c9d0e1f2a3b4c5d7",
				Email: "admin@example.com",
				Role:  RoleAdmin,
			},
		},
		{
			name:    "missing sub",
			claims:  map[string]interface{}{"role": "employee"},
			wantErr: true,
		},
		{
			name:    "empty sub",
			claims:  map[string]interface{}{"sub": "", "role": "employee"},
			wantErr: true,
		},
		{
			name:    "missing role",
			claims:  map[string]interface{}{"sub": "id-1"},
			wantErr: true,
		},
		{
			name:    "unknown role",
			claims:  map[string]interface{}{"sub": "id-1", "role": "superuser"},
			wantErr: true,
		},
		{
			name:    "non-string sub",
			claims:  map[string]interface{}{"sub": 42, "role": "employee"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromClaims(tt.claims)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
