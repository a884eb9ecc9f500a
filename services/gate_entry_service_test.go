package services

import (
	"testing"

	"gate-app/models"

	"github.com/stretchr/testify/assert"
)

func TestStatusPathToCompleted(t *testing.T) {
	assert.Equal(t, []string{
		models.EntryStatusInProgress,
		models.EntryStatusQCPending,
		models.EntryStatusQCCompleted,
		models.EntryStatusCompleted,
	}, statusPathToCompleted(models.EntryStatusDraft))

	assert.Equal(t, []string{
		models.EntryStatusQCCompleted,
		models.EntryStatusCompleted,
	}, statusPathToCompleted(models.EntryStatusQCPending))

	assert.Equal(t, []string{
		models.EntryStatusCompleted,
	}, statusPathToCompleted(models.EntryStatusQCCompleted))

	assert.Empty(t, statusPathToCompleted(models.EntryStatusCompleted))
	assert.Nil(t, statusPathToCompleted(models.EntryStatusCancelled))
	assert.Nil(t, statusPathToCompleted("UNKNOWN"))
}
