package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCertificationStatus_IsTerminal(t *testing.T) {
	assert.False(t, CertificationPending.IsTerminal())
	assert.True(t, CertificationApproved.IsTerminal())
	assert.True(t, CertificationRejected.IsTerminal())
}
