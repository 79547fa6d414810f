package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_RoundTrip(t *testing.T) {
	h := &Handler{stateKey: []byte("k")}
	state, err := h.generateState(map[string]string{"flow": "register", "role": "student"})
	require.NoError(t, err)
	assert.Len(t, strings.Split(state, "."), 3)

	data, err := h.decodeState(state)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"flow": "register", "role": "student"}, data)
}

func TestState_Random(t *testing.T) {
	h := &Handler{stateKey: []byte("k")}
	a, err := h.generateState(map[string]string{"flow": "login"})
	require.NoError(t, err)
	b, err := h.generateState(map[string]string{"flow": "login"})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestState_RejectsTampering(t *testing.T) {
	h := &Handler{stateKey: []byte("k")}
	state, err := h.generateState(map[string]string{"flow": "login"})
	require.NoError(t, err)
	parts := strings.Split(state, ".")

	other := &Handler{stateKey: []byte("other")}
	forged, err := other.generateState(map[string]string{"flow": "register", "role": "investor"})
	require.NoError(t, err)
	forgedParts := strings.Split(forged, ".")

	for name, s := range map[string]string{
		"empty":            "",
		"two parts":        parts[0] + "." + parts[1],
		"swapped payload":  parts[0] + "." + forgedParts[1] + "." + parts[2],
		"foreign key":      forged,
		"signature edited": parts[0] + "." + parts[1] + "." + parts[2] + "x",
	} {
		_, err := h.decodeState(s)
		assert.Error(t, err, name)
	}
}
