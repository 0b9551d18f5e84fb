// AngelaMos | 2026
// entity_test.go

package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransport(t *testing.T) {
	assert.True(t, CanTransport("transporter"))
	assert.True(t, CanTransport("transporter_worker"))
	assert.False(t, CanTransport("worker"))
	assert.False(t, CanTransport("owner"))
}
