package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeInvalidArgument    = "INVALID_ARGUMENT"
	ErrCodeDuplicateRule      = "DUPLICATE_RULE"
	ErrCodeNilRule            = "NIL_RULE"
	ErrCodeInvalidBundleSize  = "INVALID_BUNDLE_SIZE"
	ErrCodeNegativeCost       = "NEGATIVE_COST"
	ErrCodeInvalidRuleType    = "INVALID_RULE_TYPE"
	ErrCodeInvalidProductCode = "INVALID_PRODUCT_CODE"
	ErrCodeReceiptNotFound    = "RECEIPT_NOT_FOUND"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrMissingItems       = NewDomainError(ErrCodeInvalidArgument, "Items must be provided")
	ErrDuplicateRule      = NewDomainError(ErrCodeDuplicateRule, "At most one pricing rule may target a product code")
	ErrNilRule            = NewDomainError(ErrCodeNilRule, "Pricing rule must not be nil")
	ErrInvalidBundleSize  = NewDomainError(ErrCodeInvalidBundleSize, "Bundle size must be greater than zero")
	ErrNegativeCost       = NewDomainError(ErrCodeNegativeCost, "Cost must not be negative")
	ErrInvalidRuleType    = NewDomainError(ErrCodeInvalidRuleType, "Rule type must be either flat or bundle")
	ErrInvalidProductCode = NewDomainError(ErrCodeInvalidProductCode, "Product code must be a single character")
	ErrReceiptNotFound    = NewDomainError(ErrCodeReceiptNotFound, "Receipt not found")
)
