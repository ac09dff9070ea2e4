package errors

import "net/http"

var ErrAlreadyApplied = &Exception{
	Message:    "you already applied to this task",
	StatusCode: http.StatusConflict,
}
