package apperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/netx"
)

// Classify maps err into exactly one category. It never panics and always
// returns a non-nil *Error.
func Classify(op Op, err error) *Error {
	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return &Error{Op: op, Category: CategoryValidation, Message: verr.Message, Err: err}
	}

	var resp *ResponseError
	if errors.As(err, &resp) {
		category := categoryForStatus(resp.StatusCode)
		msg := strings.TrimSpace(resp.Message)
		if msg == "" {
			msg = messageFor(op, category)
		}
		return &Error{Op: op, Category: category, Message: msg, Status: resp.StatusCode, Err: err}
	}

	if netx.IsConnectivityError(err) {
		return &Error{Op: op, Category: CategoryConnectivity, Message: messageFor(op, CategoryConnectivity), Err: err}
	}

	return &Error{Op: op, Category: CategoryUnknown, Message: messageFor(op, CategoryUnknown), Err: err}
}

func categoryForStatus(status int) Category {
	switch {
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return CategoryValidation
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return CategoryAuth
	case status == http.StatusNotFound:
		return CategoryNotFound
	case status == http.StatusConflict:
		return CategoryConflict
	case status == http.StatusTooManyRequests:
		return CategoryRateLimited
	case status >= 500 && status <= 599:
		return CategoryServer
	default:
		return CategoryUnknown
	}
}
