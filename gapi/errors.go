package gapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
)

// CredentialError is returned when the service account key file is missing or malformed,
// or when the hosted API rejects the derived bearer token.
type CredentialError struct {
	File string
	Err  error
}

func (e *CredentialError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("invalid credentials %s (%v)", e.File, e.Err)
	}

	return fmt.Sprintf("invalid credentials (%v)", e.Err)
}

func (e *CredentialError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned when a spreadsheet or file ID does not exist or is not
// shared with the service account.
type NotFoundError struct {
	Resource string
	Err      error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found (%v)", e.Resource, e.Err)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// RangeError is returned for a spreadsheet range expression the Sheets API could not parse.
type RangeError struct {
	Range string
	Err   error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range '%s' (%v)", e.Range, e.Err)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}

// QuotaError is returned when the hosted API rejects a request because of rate or usage
// limits.
type QuotaError struct {
	Err error
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("quota exceeded (%v)", e.Err)
}

func (e *QuotaError) Unwrap() error {
	return e.Err
}

// PermissionError is returned when the service account is authenticated but not permitted
// to perform the request.
type PermissionError struct {
	Err error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied (%v)", e.Err)
}

func (e *PermissionError) Unwrap() error {
	return e.Err
}

var quotaReasons = map[string]bool{
	"quotaExceeded":         true,
	"rateLimitExceeded":     true,
	"userRateLimitExceeded": true,
	"dailyLimitExceeded":    true,
	"storageQuotaExceeded":  true,
}

// Wrap classifies an error returned by the Sheets or Drive API, wrapping it in the
// matching error type. resource identifies the spreadsheet/file for 'not found' errors
// and area is the range expression (blank for Drive requests). Errors that are not
// googleapi errors (and googleapi errors that don't match a known category) are passed
// through verbatim.
func Wrap(err error, resource, area string) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}

	switch gerr.Code {
	case http.StatusUnauthorized:
		return &CredentialError{Err: err}

	case http.StatusNotFound:
		return &NotFoundError{Resource: resource, Err: err}

	case http.StatusTooManyRequests:
		return &QuotaError{Err: err}

	case http.StatusForbidden:
		for _, e := range gerr.Errors {
			if quotaReasons[e.Reason] {
				return &QuotaError{Err: err}
			}
		}

		return &PermissionError{Err: err}

	case http.StatusBadRequest:
		if strings.Contains(gerr.Message, "Unable to parse range") {
			return &RangeError{Range: area, Err: err}
		}
	}

	return err
}
