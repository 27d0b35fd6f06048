//--------------------------------------------------------------------------------------------------
// This file is a part of Gorsync Backup project (backup RSYNC frontend).
// Copyright (c) 2017-2020 Denis Dyakov <denis.dyakov@gmail.com>
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING
// BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM,
// DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
//--------------------------------------------------------------------------------------------------

package locale

// ------------------------------------------------------------
// File contains message identifiers for localization purpose.
// Message identifier names is self-descriptive, so ordinary
// it's easy to understand what message is made for.
// Message ID is used to call translation functions from
// "locale" package.
// ------------------------------------------------------------

const (
	MsgLocaleSetAppLangugeInterface = "LocaleSetAppLangugeInterface"

	MsgPromptSrc         = "PromptSrc"
	MsgPromptDest        = "PromptDest"
	MsgPromptMinSpace    = "PromptMinSpace"
	MsgPromptMinFileSize = "PromptMinFileSize"
	MsgPromptPathFilter  = "PromptPathFilter"
	MsgPromptPlanFile    = "PromptPlanFile"
	MsgPromptConcurrency = "PromptConcurrency"

	MsgPlanSummary      = "PlanSummary"
	MsgPlanNoMoves      = "PlanNoMoves"
	MsgPlanWroteScript  = "PlanWroteScript"
	MsgApplyStarting    = "ApplyStarting"
	MsgApplyBatchOK     = "ApplyBatchOK"
	MsgApplyBatchFailed = "ApplyBatchFailed"
	MsgApplyComplete    = "ApplyComplete"
	MsgShowHeader       = "ShowHeader"

	// Hint* message IDs are the single actionable hint spec.md §7 requires
	// alongside each error's title/detail; apperror.Translate looks these
	// up instead of hardcoding English strings.
	HintDiskNotFound          = "HintDiskNotFound"
	HintDiskNotADirectory     = "HintDiskNotADirectory"
	HintDiskNotAMountPoint    = "HintDiskNotAMountPoint"
	HintDiskPermissionDenied  = "HintDiskPermissionDenied"
	HintDiskStatsFailed       = "HintDiskStatsFailed"
	HintScanPathNotFound      = "HintScanPathNotFound"
	HintScanPermissionDenied  = "HintScanPermissionDenied"
	HintScanFileStatFailed    = "HintScanFileStatFailed"
	HintScanFailed            = "HintScanFailed"
	HintTransferSourceNotFound              = "HintTransferSourceNotFound"
	HintTransferSourcePermissionDenied      = "HintTransferSourcePermissionDenied"
	HintTransferDestinationPermissionDenied = "HintTransferDestinationPermissionDenied"
	HintTransferDiskFull                    = "HintTransferDiskFull"
	HintTransferBackendUnavailable          = "HintTransferBackendUnavailable"
	HintTransferFailed                      = "HintTransferFailed"
	HintPlanStorageNotFound         = "HintPlanStorageNotFound"
	HintPlanStoragePermissionDenied = "HintPlanStoragePermissionDenied"
	HintPlanStorageParseError       = "HintPlanStorageParseError"
	HintPlanStorageSaveFailed       = "HintPlanStorageSaveFailed"
	HintPlanStorageLoadFailed       = "HintPlanStorageLoadFailed"
	HintGenericPermissionDenied = "HintGenericPermissionDenied"
	HintGenericUnexpected       = "HintGenericUnexpected"
)
