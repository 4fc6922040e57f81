package errors

import "strings"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal      ErrorCode = "COMMON_001"
	ErrCodeBadRequest    ErrorCode = "COMMON_002"
	ErrCodeNotFound      ErrorCode = "COMMON_005"
	ErrCodeTimeout       ErrorCode = "COMMON_009"
	ErrCodeValidation    ErrorCode = "COMMON_010"
	ErrCodeSerialization ErrorCode = "COMMON_011"
	ErrCodeCancelled     ErrorCode = "COMMON_017"
)

// Term Module Error Codes
const (
	ErrCodeTermUnsupportedAtom  ErrorCode = "TERM_001"
	ErrCodeTermUnknownKind      ErrorCode = "TERM_002"
	ErrCodeTermConfigInvalid    ErrorCode = "TERM_003"
	ErrCodeTermWeightMismatch   ErrorCode = "TERM_004"
	ErrCodeTermDuplicateKind    ErrorCode = "TERM_005"
	ErrCodeTermInvalidPairInput ErrorCode = "TERM_006"
)

// Config Module Error Codes
const (
	ErrCodeConfigReadFailed ErrorCode = "CFG_001"
	ErrCodeConfigInvalid    ErrorCode = "CFG_002"
)

// Aliases used at call sites.
const (
	CodeOK           = ErrorCode("OK")
	CodeUnknown      = ErrorCode("UNKNOWN")
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeNotFound     = ErrCodeNotFound
	CodeCancelled    = ErrCodeCancelled

	CodeTermUnsupportedAtom  = ErrCodeTermUnsupportedAtom
	CodeTermUnknownKind      = ErrCodeTermUnknownKind
	CodeTermConfigInvalid    = ErrCodeTermConfigInvalid
	CodeTermWeightMismatch   = ErrCodeTermWeightMismatch
	CodeTermDuplicateKind    = ErrCodeTermDuplicateKind
	CodeTermInvalidPairInput = ErrCodeTermInvalidPairInput

	CodeConfigReadFailed = ErrCodeConfigReadFailed
	CodeConfigInvalid    = ErrCodeConfigInvalid
)

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:      "internal error",
	ErrCodeBadRequest:    "bad request",
	ErrCodeNotFound:      "resource not found",
	ErrCodeTimeout:       "operation timeout",
	ErrCodeValidation:    "validation failed",
	ErrCodeSerialization: "serialization failed",
	ErrCodeCancelled:     "operation cancelled",

	ErrCodeTermUnsupportedAtom:  "atom type not interpretable by active terms",
	ErrCodeTermUnknownKind:      "unknown term kind",
	ErrCodeTermConfigInvalid:    "invalid term configuration",
	ErrCodeTermWeightMismatch:   "weight vector does not match registered terms",
	ErrCodeTermDuplicateKind:    "term kind already registered",
	ErrCodeTermInvalidPairInput: "invalid atom pair input",

	ErrCodeConfigReadFailed: "failed to read configuration",
	ErrCodeConfigInvalid:    "invalid configuration",
}

// configurationCodes are the codes that make a scoring run unrecoverable.
var configurationCodes = map[ErrorCode]struct{}{
	ErrCodeTermUnsupportedAtom: {},
	ErrCodeTermUnknownKind:     {},
	ErrCodeTermConfigInvalid:   {},
	ErrCodeTermWeightMismatch:  {},
}

func isConfigurationCode(code ErrorCode) bool {
	_, ok := configurationCodes[code]
	return ok
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}

//Personal.AI order the ending
