package apperror

// DiskErrorKind enumerates the Disk taxonomy from spec.md §7.
type DiskErrorKind int

const (
	DiskNotFound DiskErrorKind = iota
	DiskNotADirectory
	DiskNotAMountPoint
	DiskPermissionDenied
	DiskStatsFailed
)

// DiskError wraps a failure probing or validating a candidate disk path.
type DiskError struct {
	Kind  DiskErrorKind
	Path  string
	Cause error
}

func NewDiskError(kind DiskErrorKind, path string, cause error) *DiskError {
	return &DiskError{Kind: kind, Path: path, Cause: cause}
}

func (err *DiskError) Error() string {
	return f("disk error (%s): %s", diskKindLabel(err.Kind), err.Path)
}

func (err *DiskError) Unwrap() error { return err.Cause }

// IsDiskError reports whether err is a *DiskError.
func IsDiskError(err error) bool {
	_, ok := err.(*DiskError)
	return ok
}

func diskKindLabel(k DiskErrorKind) string {
	switch k {
	case DiskNotFound:
		return "not-found"
	case DiskNotADirectory:
		return "not-a-directory"
	case DiskNotAMountPoint:
		return "not-a-mount-point"
	case DiskPermissionDenied:
		return "permission-denied"
	case DiskStatsFailed:
		return "stats-failed"
	default:
		return "unknown"
	}
}

// ScanErrorKind enumerates the Scan taxonomy from spec.md §7.
type ScanErrorKind int

const (
	ScanPathNotFound ScanErrorKind = iota
	ScanPermissionDenied
	ScanFailed
	ScanFileStatFailed
)

// ScanError wraps a failure encountered while walking a disk's files.
type ScanError struct {
	Kind  ScanErrorKind
	Path  string
	Cause error
}

func NewScanError(kind ScanErrorKind, path string, cause error) *ScanError {
	return &ScanError{Kind: kind, Path: path, Cause: cause}
}

func (err *ScanError) Error() string {
	return f("scan error (%s): %s", scanKindLabel(err.Kind), err.Path)
}

func (err *ScanError) Unwrap() error { return err.Cause }

func IsScanError(err error) bool {
	_, ok := err.(*ScanError)
	return ok
}

func scanKindLabel(k ScanErrorKind) string {
	switch k {
	case ScanPathNotFound:
		return "path-not-found"
	case ScanPermissionDenied:
		return "permission-denied"
	case ScanFailed:
		return "failed"
	case ScanFileStatFailed:
		return "file-stat-failed"
	default:
		return "unknown"
	}
}

// TransferErrorKind enumerates the Transfer taxonomy from spec.md §7.
type TransferErrorKind int

const (
	TransferSourceNotFound TransferErrorKind = iota
	TransferSourcePermissionDenied
	TransferDestinationPermissionDenied
	TransferDiskFull
	TransferBackendUnavailable
	TransferFailed
)

// TransferError wraps a failure applying (executing) a planned move.
type TransferError struct {
	Kind  TransferErrorKind
	Path  string
	Cause error
}

func NewTransferError(kind TransferErrorKind, path string, cause error) *TransferError {
	return &TransferError{Kind: kind, Path: path, Cause: cause}
}

func (err *TransferError) Error() string {
	return f("transfer error (%s): %s", transferKindLabel(err.Kind), err.Path)
}

func (err *TransferError) Unwrap() error { return err.Cause }

func IsTransferError(err error) bool {
	_, ok := err.(*TransferError)
	return ok
}

func transferKindLabel(k TransferErrorKind) string {
	switch k {
	case TransferSourceNotFound:
		return "source-not-found"
	case TransferSourcePermissionDenied:
		return "source-permission-denied"
	case TransferDestinationPermissionDenied:
		return "destination-permission-denied"
	case TransferDiskFull:
		return "disk-full"
	case TransferBackendUnavailable:
		return "backend-unavailable"
	case TransferFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// PlanStorageErrorKind enumerates the legacy plan-storage taxonomy from
// spec.md §7. No SQLite path is implemented (see DESIGN.md); this kind
// still covers failures reading/writing the plan script file itself.
type PlanStorageErrorKind int

const (
	PlanStorageNotFound PlanStorageErrorKind = iota
	PlanStoragePermissionDenied
	PlanStorageParseError
	PlanStorageSaveFailed
	PlanStorageLoadFailed
)

// PlanStorageError wraps a failure reading or writing the plan script.
type PlanStorageError struct {
	Kind  PlanStorageErrorKind
	Path  string
	Cause error
}

func NewPlanStorageError(kind PlanStorageErrorKind, path string, cause error) *PlanStorageError {
	return &PlanStorageError{Kind: kind, Path: path, Cause: cause}
}

func (err *PlanStorageError) Error() string {
	return f("plan storage error (%s): %s", planStorageKindLabel(err.Kind), err.Path)
}

func (err *PlanStorageError) Unwrap() error { return err.Cause }

func IsPlanStorageError(err error) bool {
	_, ok := err.(*PlanStorageError)
	return ok
}

func planStorageKindLabel(k PlanStorageErrorKind) string {
	switch k {
	case PlanStorageNotFound:
		return "not-found"
	case PlanStoragePermissionDenied:
		return "permission-denied"
	case PlanStorageParseError:
		return "parse-error"
	case PlanStorageSaveFailed:
		return "save-failed"
	case PlanStorageLoadFailed:
		return "load-failed"
	default:
		return "unknown"
	}
}

// GenericErrorKind enumerates the Generic taxonomy from spec.md §7.
type GenericErrorKind int

const (
	GenericUnexpected GenericErrorKind = iota
	GenericPermissionDenied
)

// GenericError is the catch-all kind for failures that don't fit a more
// specific taxonomy.
type GenericError struct {
	Kind  GenericErrorKind
	Cause error
}

func NewGenericError(kind GenericErrorKind, cause error) *GenericError {
	return &GenericError{Kind: kind, Cause: cause}
}

func (err *GenericError) Error() string {
	if err.Kind == GenericPermissionDenied {
		return f("permission denied: %v", err.Cause)
	}
	return f("unexpected error: %v", err.Cause)
}

func (err *GenericError) Unwrap() error { return err.Cause }

func IsGenericError(err error) bool {
	_, ok := err.(*GenericError)
	return ok
}
