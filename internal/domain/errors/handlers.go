package errors

// Result is the structured outcome every wallet endpoint returns, so that
// nothing is thrown across the service boundary.
type Result struct {
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
	Details   string `json:"details,omitempty"`
}

// ResultFrom converts an AppError into a failed Result.
func ResultFrom(err AppError) Result {
	return Result{
		Success:   false,
		Error:     err.Message(),
		ErrorCode: err.ErrorCode(),
		Details:   err.Details(),
	}
}
