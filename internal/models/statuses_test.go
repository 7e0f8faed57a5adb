package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, ApplicationStatusPending.CanTransition(ApplicationStatusAccepted))
	assert.True(t, ApplicationStatusPending.CanTransition(ApplicationStatusRejected))

	// pending is not a legal target
	assert.False(t, ApplicationStatusPending.CanTransition(ApplicationStatusPending))

	// terminal states are final
	for _, terminal := range []ApplicationStatus{ApplicationStatusAccepted, ApplicationStatusRejected} {
		assert.False(t, terminal.CanTransition(ApplicationStatusAccepted))
		assert.False(t, terminal.CanTransition(ApplicationStatusRejected))
		assert.False(t, terminal.CanTransition(ApplicationStatusPending))
		assert.True(t, terminal.IsTerminal())
	}

	assert.False(t, ApplicationStatusPending.IsTerminal())
}

func TestValidLiterals(t *testing.T) {
	assert.True(t, ValidRole(UserRoleStudent))
	assert.True(t, ValidRole(UserRoleAdmin))
	assert.False(t, ValidRole("moderator"))

	assert.True(t, ValidApplicationStatus(ApplicationStatusPending))
	assert.False(t, ValidApplicationStatus("withdrawn"))
}
