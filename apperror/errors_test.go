package apperror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPredicates(t *testing.T) {
	assert.True(t, IsDiskError(NewDiskError(DiskNotFound, "/mnt/disk1", nil)))
	assert.False(t, IsDiskError(errors.New("plain")))

	assert.True(t, IsScanError(NewScanError(ScanFailed, "/mnt/disk1", nil)))
	assert.True(t, IsTransferError(NewTransferError(TransferFailed, "/mnt/disk1/f", nil)))
	assert.True(t, IsPlanStorageError(NewPlanStorageError(PlanStorageNotFound, "/config/plan.sh", nil)))
	assert.True(t, IsGenericError(NewGenericError(GenericUnexpected, errors.New("boom"))))
}

func TestTranslate_KnownKinds(t *testing.T) {
	tr := Translate(NewDiskError(DiskNotAMountPoint, "/mnt/disk1", nil))
	assert.Equal(t, "Not a mount point", tr.Title)
	assert.NotEmpty(t, tr.Hint)
}

func TestTranslate_UnknownErrorClassifiedGeneric(t *testing.T) {
	tr := Translate(errors.New("permission denied opening file"))
	assert.Equal(t, "Permission denied", tr.Title)
}

func TestDiskError_UnwrapPreservesCause(t *testing.T) {
	cause := errors.New("root cause")
	err := NewDiskError(DiskStatsFailed, "/mnt/disk1", cause)
	assert.Same(t, cause, errors.Unwrap(err))
}
