package burnsplit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iov-one/burnsplit"
)

func TestVersion(t *testing.T) {
	burnsplit.GitCommit = ""
	assert.Equal(t, "v0.2.0", burnsplit.Version())

	burnsplit.GitCommit = "12345678"
	assert.Equal(t, "v0.2.0 12345678", burnsplit.Version())
	burnsplit.GitCommit = ""
}
