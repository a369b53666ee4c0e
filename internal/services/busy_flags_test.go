package services_test

import (
	"testing"

	"transaction-analyzer/internal/models"
	"transaction-analyzer/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestBusyFlags_TryBeginRefusesRaisedFlag(t *testing.T) {
	b := services.NewBusyFlags()

	assert.True(t, b.TryBegin(models.FlagUploading))
	assert.False(t, b.TryBegin(models.FlagUploading))
	assert.True(t, b.IsSet(models.FlagUploading))

	b.End(models.FlagUploading)
	assert.False(t, b.IsSet(models.FlagUploading))
	assert.True(t, b.TryBegin(models.FlagUploading))
}

func TestBusyFlags_FlagsAreIndependent(t *testing.T) {
	b := services.NewBusyFlags()

	assert.True(t, b.TryBegin(models.FlagUploading))
	assert.True(t, b.TryBegin(models.FlagAnalyzingMerchant))
	assert.False(t, b.IsSet(models.FlagDetectingPatterns))

	b.End(models.FlagUploading)
	assert.True(t, b.IsSet(models.FlagAnalyzingMerchant))
}

func TestBusyFlags_SnapshotListsEveryFlag(t *testing.T) {
	b := services.NewBusyFlags()
	b.TryBegin(models.FlagBulkDeleting)

	snap := b.Snapshot()

	assert.Len(t, snap, len(models.AllBusyFlags))
	assert.True(t, snap[models.FlagBulkDeleting])
	assert.False(t, snap[models.FlagUploading])

	snap[models.FlagUploading] = true
	assert.False(t, b.IsSet(models.FlagUploading))
}
