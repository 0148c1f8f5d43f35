package fabricclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubContract struct {
	closed bool
}

func (s *stubContract) SubmitTransaction(name string, args ...string) ([]byte, error) {
	return nil, nil
}

func (s *stubContract) EvaluateTransaction(name string, args ...string) ([]byte, error) {
	return nil, nil
}

func (s *stubContract) Close() {
	s.closed = true
}

func TestRegistryUnknownOrganization(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Contract("org1.example.com")
	assert.False(t, ok)
	assert.False(t, r.Connected("org1.example.com"))
}

func TestRegistryLiveAndUnavailable(t *testing.T) {
	r := NewRegistry()
	live := &stubContract{}
	r.Register("org1.example.com", live)
	r.RegisterUnavailable("org2.example.com")

	c, ok := r.Contract("org1.example.com")
	require.True(t, ok)
	assert.Same(t, live, c)
	assert.True(t, r.Connected("org1.example.com"))

	_, ok = r.Contract("org2.example.com")
	assert.False(t, ok)
	assert.False(t, r.Connected("org2.example.com"))
}

func TestRegistryHandleCanBeDropped(t *testing.T) {
	r := NewRegistry()
	r.Register("org1.example.com", &stubContract{})
	require.True(t, r.Connected("org1.example.com"))

	r.RegisterUnavailable("org1.example.com")
	assert.False(t, r.Connected("org1.example.com"))
}

func TestCloseAllDisconnectsEveryLiveHandle(t *testing.T) {
	r := NewRegistry()
	first := &stubContract{}
	second := &stubContract{}
	r.Register("org1.example.com", first)
	r.Register("org2.example.com", second)
	r.RegisterUnavailable("org3.example.com")

	r.CloseAll()

	assert.True(t, first.closed)
	assert.True(t, second.closed)
	assert.False(t, r.Connected("org1.example.com"))
	assert.False(t, r.Connected("org2.example.com"))
}
