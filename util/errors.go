package util

const (
	ERROR_BAD_CLONE_PATH     = 201
	ERROR_BAD_CLONE_GIT      = 202
	ERROR_BAD_OUTPUT_PATH    = 203
	ERROR_BAD_PATTERN        = 204
	ERROR_NO_REVISION        = 205
	ERROR_HEAD_REF_NOT_FOUND = 207
	ERROR_TREE_NOT_FOUND     = 208
	ERROR_UNKNOWN_LANGUAGE   = 209
)

// ErrorWithCode carries the process exit status for errors surfaced by the CLI
type ErrorWithCode struct {
	StatusCode    int
	InternalError error
}

var _ error = &ErrorWithCode{}

func (e ErrorWithCode) Error() string {
	return e.InternalError.Error()
}

func (e ErrorWithCode) Unwrap() error {
	return e.InternalError
}
