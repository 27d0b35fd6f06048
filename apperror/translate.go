package apperror

import (
	"errors"
	"io/fs"
	"strings"
	"syscall"

	"github.com/seethruhead/unraid-binpack/locale"
)

// Translated is the user-facing rendering of a domain error: a short
// title, a one-line detail, and a single actionable hint. This is the
// only place domain errors are converted to prose; everywhere else they
// propagate unchanged (spec.md §7's propagation policy).
type Translated struct {
	Title  string
	Detail string
	Hint   string
}

// Translate converts any domain error from this package (or an arbitrary
// error, classified as Generic) into user-facing text.
func Translate(err error) Translated {
	switch v := err.(type) {
	case *DiskError:
		return translateDisk(v)
	case *ScanError:
		return translateScan(v)
	case *TransferError:
		return translateTransfer(v)
	case *PlanStorageError:
		return translatePlanStorage(v)
	case *GenericError:
		return translateGeneric(v)
	default:
		return translateGeneric(NewGenericError(classifyGeneric(err), err))
	}
}

func translateDisk(err *DiskError) Translated {
	switch err.Kind {
	case DiskNotFound:
		return Translated{"Disk not found", f("%s does not exist.", err.Path), hint(locale.HintDiskNotFound)}
	case DiskNotADirectory:
		return Translated{"Not a directory", f("%s is not a directory.", err.Path), hint(locale.HintDiskNotADirectory)}
	case DiskNotAMountPoint:
		return Translated{"Not a mount point", f("%s is not a separate mount point.", err.Path), hint(locale.HintDiskNotAMountPoint)}
	case DiskPermissionDenied:
		return Translated{"Permission denied", f("Cannot access %s.", err.Path), hint(locale.HintDiskPermissionDenied)}
	default:
		return Translated{"Disk stats unavailable", f("Could not read disk stats for %s.", err.Path), hint(locale.HintDiskStatsFailed)}
	}
}

func translateScan(err *ScanError) Translated {
	switch err.Kind {
	case ScanPathNotFound:
		return Translated{"Scan path missing", f("%s disappeared during scan.", err.Path), hint(locale.HintScanPathNotFound)}
	case ScanPermissionDenied:
		return Translated{"Permission denied", f("Cannot read %s.", err.Path), hint(locale.HintScanPermissionDenied)}
	case ScanFileStatFailed:
		return Translated{"Stat failed", f("Could not stat a file under %s.", err.Path), hint(locale.HintScanFileStatFailed)}
	default:
		return Translated{"Scan failed", f("Scanning %s failed.", err.Path), hint(locale.HintScanFailed)}
	}
}

func translateTransfer(err *TransferError) Translated {
	switch err.Kind {
	case TransferSourceNotFound:
		return Translated{"Source missing", f("%s no longer exists.", err.Path), hint(locale.HintTransferSourceNotFound)}
	case TransferSourcePermissionDenied:
		return Translated{"Source permission denied", f("Cannot read %s.", err.Path), hint(locale.HintTransferSourcePermissionDenied)}
	case TransferDestinationPermissionDenied:
		return Translated{"Destination permission denied", f("Cannot write to %s.", err.Path), hint(locale.HintTransferDestinationPermissionDenied)}
	case TransferDiskFull:
		return Translated{"Destination full", f("Not enough space at %s.", err.Path), hint(locale.HintTransferDiskFull)}
	case TransferBackendUnavailable:
		return Translated{"rsync unavailable", "The rsync executable could not be run.", hint(locale.HintTransferBackendUnavailable)}
	default:
		return Translated{"Transfer failed", f("Transferring %s failed.", err.Path), hint(locale.HintTransferFailed)}
	}
}

func translatePlanStorage(err *PlanStorageError) Translated {
	switch err.Kind {
	case PlanStorageNotFound:
		return Translated{"Plan file not found", f("%s does not exist.", err.Path), hint(locale.HintPlanStorageNotFound)}
	case PlanStoragePermissionDenied:
		return Translated{"Permission denied", f("Cannot access %s.", err.Path), hint(locale.HintPlanStoragePermissionDenied)}
	case PlanStorageParseError:
		return Translated{"Plan file unreadable", f("%s is not a valid plan script.", err.Path), hint(locale.HintPlanStorageParseError)}
	case PlanStorageSaveFailed:
		return Translated{"Could not save plan", f("Writing %s failed.", err.Path), hint(locale.HintPlanStorageSaveFailed)}
	default:
		return Translated{"Could not load plan", f("Reading %s failed.", err.Path), hint(locale.HintPlanStorageLoadFailed)}
	}
}

func translateGeneric(err *GenericError) Translated {
	if err.Kind == GenericPermissionDenied {
		return Translated{"Permission denied", f("%v", err.Cause), hint(locale.HintGenericPermissionDenied)}
	}
	return Translated{"Unexpected error", f("%v", err.Cause), hint(locale.HintGenericUnexpected)}
}

// hint looks up a Hint* message ID, the single actionable-hint text
// spec.md §7 requires alongside every translated error.
func hint(messageID string) string {
	return locale.T(messageID, nil)
}

// classifyGeneric applies spec.md §7's permission-detection precedence:
// OS error codes first (EACCES/EPERM via fs.ErrPermission, and ENOENT/
// ENOTDIR as not-found style codes), falling back to substring matching
// on the error text only when none of these codes is present.
func classifyGeneric(err error) GenericErrorKind {
	if errors.Is(err, fs.ErrPermission) || errors.Is(err, syscall.EACCES) || errors.Is(err, syscall.EPERM) {
		return GenericPermissionDenied
	}
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOENT) || errors.Is(err, syscall.ENOTDIR) {
		return GenericUnexpected
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "permission denied") || strings.Contains(msg, "access is denied") {
		return GenericPermissionDenied
	}
	return GenericUnexpected
}
