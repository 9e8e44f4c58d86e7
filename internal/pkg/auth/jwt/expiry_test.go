package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/media-service/internal/pkg/auth/jwt"
)

func TestParseExpiry(t *testing.T) {
	tests := []struct {
		value   string
		want    time.Duration
		wantErr bool
	}{
		{value: "24h", want: 24 * time.Hour},
		{value: "90m", want: 90 * time.Minute},
		{value: "7d", want: 7 * 24 * time.Hour},
		{value: " 1d ", want: 24 * time.Hour},
		{value: "0", want: 0},
		{value: "0d", want: 0},
		{value: "-1h", wantErr: true},
		{value: "-2d", wantErr: true},
		{value: "1.5d", wantErr: true},
		{value: "d", wantErr: true},
		{value: "week", wantErr: true},
		{value: "", wantErr: true},
		{value: "999999999d", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			got, err := jwt.ParseExpiry(tc.value)
			if tc.wantErr {
				assert.ErrorIs(t, err, jwt.ErrInvalidExpiry)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
