package planerror

import "fmt"

const (
	NSCAN_UNEXPECTED      = "NSCANU"
	NSCAN_ALIAS_NOT_FOUND = "NSCANA"
	NSCAN_PATH_MISMATCH   = "NSCANP"
	NSCAN_WALK_FAILED     = "NSCANW"
	NSCAN_CONFIG          = "NSCANC"
	NSCAN_PLAN_FILE       = "NSCANF"
)

var existingErrorCodeMap = map[string]string{
	NSCAN_ALIAS_NOT_FOUND: "AliasForTableScanNotFound",
	NSCAN_PATH_MISMATCH:   "PathAliasesMismatch",
	NSCAN_WALK_FAILED:     "OperatorWalkFailed",
	NSCAN_CONFIG:          "BadOptimizerConfig",
	NSCAN_PLAN_FILE:       "BadPlanDocument",
}

func GetMessageByCode(errorCode string) string {
	rep, ok := existingErrorCodeMap[errorCode]
	if ok {
		return rep
	}
	return "Unexpected error"
}

var _ error = &PlanError{}

// PlanError is a compile-phase error. Any PlanError returned by the
// optimizer aborts the pass for the whole plan.
type PlanError struct {
	Err error

	ErrorCode string
}

func New(errorMsg string, errorCode string) *PlanError {
	return &PlanError{
		Err:       fmt.Errorf("%s", errorMsg),
		ErrorCode: errorCode,
	}
}

func Newf(errorCode string, format string, a ...any) *PlanError {
	return &PlanError{
		Err:       fmt.Errorf(format, a...),
		ErrorCode: errorCode,
	}
}

func (er *PlanError) Error() string {
	return fmt.Sprintf("Code: %s. Name: %s. Description: %s.",
		er.ErrorCode, GetMessageByCode(er.ErrorCode), er.Err)
}

func (er *PlanError) Unwrap() error {
	return er.Err
}

// IsInvariantViolation reports codes that mean the plan was malformed upstream.
func (er *PlanError) IsInvariantViolation() bool {
	return er.ErrorCode == NSCAN_ALIAS_NOT_FOUND || er.ErrorCode == NSCAN_PATH_MISMATCH
}
