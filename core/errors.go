package core

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Error codes. They double as process exit codes of the command line tools.
const (
	NOERROR     int = 0
	EMISSING    int = 122 // collaborator or resource does not exist
	EINVALID    int = 123 // validation failed
	ECONNECTION int = 124 // display device not connected
	EINTERNAL   int = 125 // internal error
	EIO         int = 126 // writing an image or flushing a device failed
)

var codeTexts = map[int]string{
	NOERROR:     "OK",
	EMISSING:    "not found",
	EINVALID:    "invalid",
	ECONNECTION: "device not connected",
	EINTERNAL:   "internal error",
	EIO:         "i/o error",
}

// CodeText returns a short description of an error code.
func CodeText(code int) string {
	if t, ok := codeTexts[code]; ok {
		return t
	}
	return "undefined error"
}

// AppError is an error carrying a code and a message to show to users.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

// codedError attaches a code and a user message to a cause.
type codedError struct {
	cause error
	code  int
	msg   string
}

var _ AppError = codedError{}

func (e codedError) Error() string {
	if e.msg == "" {
		return fmt.Sprintf("[%d] %v", e.code, e.cause)
	}
	return fmt.Sprintf("[%d] %s: %v", e.code, e.msg, e.cause)
}

func (e codedError) Unwrap() error       { return e.cause }
func (e codedError) ErrorCode() int      { return e.code }
func (e codedError) UserMessage() string { return e.msg }

// WrapError attaches code and a formatted user message to err.
// A nil err is replaced by the description of code.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(CodeText(code))
	}
	return codedError{cause: err, code: code, msg: fmt.Sprintf(format, v...)}
}

// Error creates an error with code and a formatted user message.
func Error(code int, format string, v ...interface{}) error {
	return WrapError(nil, code, format, v...)
}

// Code finds the code of err or of an error it wraps.
// Errors without a code count as EINTERNAL, nil as NOERROR.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	var app AppError
	if errors.As(err, &app) {
		return app.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage finds the user message of err or of an error it wraps.
// Errors without one are described by their code.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var app AppError
	if errors.As(err, &app) {
		return app.UserMessage()
	}
	return CodeText(Code(err))
}

// UserError reports err on stderr in a form suitable for end users.
func UserError(err error) {
	printUserError(os.Stderr, err)
}

func printUserError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "[%d] %s\n", Code(err), UserMessage(err))
}
