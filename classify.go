package fincode

import (
	"regexp"
	"slices"
)

// ErrorCategory is the semantic category of an API error code.
type ErrorCategory string

// Error categories.
const (
	CategoryUnknown               ErrorCategory = "UNKNOWN_ERROR"
	CategorySDK                   ErrorCategory = "SDK_ERROR"
	CategoryInvalidAPIVersion     ErrorCategory = "INVALID_API_VERSION"
	CategoryBadRequest            ErrorCategory = "BAD_REQUEST"
	CategoryInvalidParameter      ErrorCategory = "INVALID_PARAMETER"
	CategoryPayment               ErrorCategory = "PAYMENT_ERROR"
	CategoryAuth                  ErrorCategory = "AUTH_ERROR"
	CategoryIdempotency           ErrorCategory = "IDEMPOTENCY_ERROR"
	CategoryResourceNotFound      ErrorCategory = "RESOURCE_NOT_FOUND"
	CategoryDuplicateResource     ErrorCategory = "DUPLICATE_RESOURCE"
	CategoryInvalidResourceLength ErrorCategory = "INVALID_RESOURCE_LENGTH"
	CategoryContract              ErrorCategory = "CONTRACT_ERROR"
)

// Backend and system error codes.
const (
	CodeInvalidParameter = "E9990000001"

	CodePaymentFailed             = "E9993134001"
	CodePaymentCardDeclined       = "E9993134002"
	CodePaymentCardExpired        = "E9993134003"
	CodePaymentInsufficientFunds  = "E9993134004"
	CodePaymentLimitExceeded      = "E9993134005"
	CodePaymentInvalidCard        = "E9993134006"
	CodePaymentSecurityCode       = "E9993134007"
	CodePaymentFraudSuspected     = "E9993134008"
	CodePaymentCardUnsupported    = "E9993134009"
	CodePaymentIssuerUnavailable  = "E9993134010"
	CodePaymentAlreadyProcessed   = "E9993134011"
	CodePaymentProcessingRejected = "E9993134012"

	CodeIdempotencyKeyDuplicated = "E9993901001"

	CodeSystemDatabase    = "E9999000001"
	CodeSystemNetwork     = "E9999000002"
	CodeSystemTimeout     = "E9999000003"
	CodeSystemUnknown     = "E9999000004"
	CodeSystemMaintenance = "E9999000005"

	CodeMalformedRequestBody = "E9999400001"
	CodeNotFound             = "E9999404001"
	CodeMethodNotAllowed     = "E9999405001"
	CodeNotAcceptable        = "E9999406001"
	CodeUnsupportedMedia     = "E9999415001"
)

var literalCodes = map[string]ErrorCategory{
	CodeInvalidParameter: CategoryInvalidParameter,

	CodePaymentFailed:             CategoryPayment,
	CodePaymentCardDeclined:       CategoryPayment,
	CodePaymentCardExpired:        CategoryPayment,
	CodePaymentInsufficientFunds:  CategoryPayment,
	CodePaymentLimitExceeded:      CategoryPayment,
	CodePaymentInvalidCard:        CategoryPayment,
	CodePaymentSecurityCode:       CategoryPayment,
	CodePaymentFraudSuspected:     CategoryPayment,
	CodePaymentCardUnsupported:    CategoryPayment,
	CodePaymentIssuerUnavailable:  CategoryPayment,
	CodePaymentAlreadyProcessed:   CategoryPayment,
	CodePaymentProcessingRejected: CategoryPayment,

	CodeIdempotencyKeyDuplicated: CategoryIdempotency,

	CodeSystemDatabase:    CategoryUnknown,
	CodeSystemNetwork:     CategoryUnknown,
	CodeSystemTimeout:     CategoryUnknown,
	CodeSystemUnknown:     CategoryUnknown,
	CodeSystemMaintenance: CategoryUnknown,

	CodeMalformedRequestBody: CategoryBadRequest,
	CodeNotFound:             CategoryBadRequest,
	CodeMethodNotAllowed:     CategoryBadRequest,
	CodeNotAcceptable:        CategoryBadRequest,
	CodeUnsupportedMedia:     CategoryBadRequest,
}

// codeLength is the fixed width of every provider error code.
const codeLength = 11

// codePattern splits a code into functional code, index code and check ID.
var codePattern = regexp.MustCompile(`^([0-9A-Z]{5})([0-9A-Z]{3})([0-9A-Z]{3})$`)

// Functional codes.
const (
	functionAuthorization  = "E9994"
	functionAuthentication = "E9995"
)

// Check IDs.
const (
	checkInvalidLength  = "002"
	checkNotFound       = "005"
	checkDuplicate      = "006"
	checkContract       = "C01"
	checkAuthentication = "A02"
	checkAccountLocked  = "L01"

	indexContractAgreement = "106"
	checkContractAgreement = "A01"
)

// authFunctions are functional codes of login, password, token and
// permission related operations.
var authFunctions = []string{
	"E0101", "E0102", "E0103", "E0104", "E0105",
	"E0106", "E0107", "E0108", "E0109", "E0110",
	"E0111", "E0112", "E0113", "E0114", "E0115",
	"E0116", "E0117", "E0118", "E0119",
}

// Classify maps an 11 character API error code to its category. Literal
// system codes are checked first, then the structure of the code. Codes of
// the wrong length or shape return a *ValidationError.
func Classify(code string) (ErrorCategory, error) {
	if len(code) != codeLength {
		return "", &ValidationError{Field: "error_code", Message: "must be 11 characters"}
	}

	if c, ok := literalCodes[code]; ok {
		return c, nil
	}

	m := codePattern.FindStringSubmatch(code)
	if m == nil {
		return "", &ValidationError{Field: "error_code", Message: "must match " + codePattern.String()}
	}
	function, index, check := m[1], m[2], m[3]

	switch {
	case function == functionAuthorization || function == functionAuthentication:
		return CategoryAuth, nil
	case check == checkNotFound:
		return CategoryResourceNotFound, nil
	case check == checkDuplicate:
		return CategoryDuplicateResource, nil
	case check == checkInvalidLength:
		return CategoryInvalidResourceLength, nil
	case check == checkContract || (index == indexContractAgreement && check == checkContractAgreement):
		return CategoryContract, nil
	case check == checkAuthentication || check == checkAccountLocked || slices.Contains(authFunctions, function):
		return CategoryAuth, nil
	default:
		return CategoryInvalidParameter, nil
	}
}
