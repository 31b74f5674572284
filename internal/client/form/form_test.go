package form

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/apperr"
)

func TestGuard_RejectsSecondSubmission(t *testing.T) {
	var g Guard

	require.True(t, g.TryAcquire())
	assert.True(t, g.Busy())
	assert.False(t, g.TryAcquire())

	g.Release()
	assert.False(t, g.Busy())
	assert.True(t, g.TryAcquire())
}

func TestGuard_ConcurrentAcquireSingleWinner(t *testing.T) {
	var g Guard
	var wins atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.TryAcquire() {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestRequired(t *testing.T) {
	err := Required("email", "Email Address", "   ")
	var ve *apperr.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "email", ve.Field)
	assert.Equal(t, "Email Address is required", ve.Message)

	assert.NoError(t, Required("email", "Email Address", "a"))
}

func TestEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "juan@example.com"},
		{in: "JUAN.DELA+CRUZ@Example.PH"},
		{in: "", want: "Email Address is required"},
		{in: "juan", want: "Please enter a valid email address"},
		{in: "juan@example", want: "Please enter a valid email address"},
		{in: "juan@@example.com", want: "Please enter a valid email address"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := Email("email", "Email Address", tt.in)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestMatchAndFirst(t *testing.T) {
	assert.NoError(t, Match("confirmPassword", "a", "a", "Passwords do not match"))

	err := First(nil, Match("confirmPassword", "a", "b", "Passwords do not match"), Required("x", "X", ""))
	require.Error(t, err)
	assert.Equal(t, "Passwords do not match", err.Error())

	assert.NoError(t, First())
}
