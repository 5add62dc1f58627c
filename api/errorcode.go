package api

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/zerowaste/zerowaste-api/claim"
	"github.com/zerowaste/zerowaste-api/matching"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",
		1004: "this action is not available for your role",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1101: "account not found",

		1200: "donation not found",
		1201: "claim request not found",
		1202: "you are not allowed to change this record",
		1203: "donation is no longer available for this action",
		1204: "donation has expired",
		1205: "you have already claimed this donation",
		1206: "someone else updated this donation first, please refresh",

		1300: "invalid coordinates",
		1301: "invalid radius",

		1400: "only image files are accepted",
		1401: "image must not exceed 5MB",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)
	errorRoleNotPermitted           = errorJSON(1004)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountNotFound = errorJSON(1101)

	errorDonationNotFound = errorJSON(1200)
	errorClaimNotFound    = errorJSON(1201)
	errorForbidden        = errorJSON(1202)
	errorInvalidState     = errorJSON(1203)
	errorDonationExpired  = errorJSON(1204)
	errorDuplicateClaim   = errorJSON(1205)
	errorConflict         = errorJSON(1206)

	errorInvalidCoordinates = errorJSON(1300)
	errorInvalidRadius      = errorJSON(1301)

	errorInvalidImage  = errorJSON(1400)
	errorImageTooLarge = errorJSON(1401)
)

// FieldError describes a single invalid input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the failure envelope
type ErrorResponse struct {
	Success bool         `json:"success"`
	Code    int64        `json:"code"`
	Message string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// withDetails returns a copy of the response carrying field errors
func (e ErrorResponse) withDetails(details []FieldError) ErrorResponse {
	e.Details = details
	return e
}

func messageID(code int64) string {
	return fmt.Sprintf("error_%d", code)
}

// domainError maps errors from the claim coordinator and the matching
// service to an http status and error response
func domainError(err error) (int, ErrorResponse) {
	switch errors.Cause(err) {
	case claim.ErrNotFound:
		return http.StatusNotFound, errorDonationNotFound
	case claim.ErrForbidden:
		return http.StatusForbidden, errorForbidden
	case claim.ErrInvalidState:
		return http.StatusBadRequest, errorInvalidState
	case claim.ErrExpired:
		return http.StatusBadRequest, errorDonationExpired
	case claim.ErrDuplicateClaim:
		return http.StatusBadRequest, errorDuplicateClaim
	case claim.ErrConflict:
		return http.StatusConflict, errorConflict
	case matching.ErrInvalidCoordinates:
		return http.StatusBadRequest, errorInvalidCoordinates
	case matching.ErrInvalidRadius:
		return http.StatusBadRequest, errorInvalidRadius
	}
	return http.StatusInternalServerError, errorInternalServer
}
