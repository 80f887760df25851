package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors. Every typed error in this package unwraps to one of them so callers can
// classify failures with errors.Is without knowing the concrete type.
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrRuleViolation      = errors.New("domain rule violation")
	ErrDependencyFailures = errors.New("external dependency failure")
)

// ObjectNotFoundError reports that a referenced aggregate or entity does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports malformed input.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside of [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(fmt.Sprint(e.Value)), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// IsValidation reports whether err belongs to the validation family (required, invalid, out of range).
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange)
}

// RuleViolationError is a domain rule violation carrying a machine readable code,
// a human message and structured context for the calling layer.
//
// Two rule violations are considered the same by errors.Is when their codes match,
// so packages can export code-only sentinels:
//
//	var ErrOrderNotActive = errs.NewRuleViolation("OrderNotActive", "order is not active")
//
//	if errors.Is(err, order.ErrOrderNotActive) { ... }
type RuleViolationError struct {
	Code    string
	Message string
	Context map[string]any
}

func NewRuleViolation(code, message string) *RuleViolationError {
	return &RuleViolationError{Code: code, Message: message}
}

func NewRuleViolationWithContext(code, message string, context map[string]any) *RuleViolationError {
	return &RuleViolationError{Code: code, Message: message, Context: context}
}

// With returns a copy of the violation enriched with one more context entry.
func (e *RuleViolationError) With(key string, value any) *RuleViolationError {
	ctx := make(map[string]any, len(e.Context)+1)
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &RuleViolationError{Code: e.Code, Message: e.Message, Context: ctx}
}

func (e *RuleViolationError) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, sanitize(fmt.Sprint(e.Context[k]))))
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, strings.Join(parts, ", "))
}

func (e *RuleViolationError) Is(target error) bool {
	var other *RuleViolationError
	if errors.As(target, &other) {
		return other.Code == e.Code
	}
	return false
}

func (e *RuleViolationError) Unwrap() error {
	return ErrRuleViolation
}

// RuleCode extracts the code of the first rule violation in err's chain.
func RuleCode(err error) (string, bool) {
	var violation *RuleViolationError
	if errors.As(err, &violation) {
		return violation.Code, true
	}
	return "", false
}

// DependencyWarning describes a failure of a best-effort collaborator (stock ledger,
// notification sink). It is recovered locally and reported next to the primary outcome,
// never returned as the operation's error.
type DependencyWarning struct {
	Source  string
	Message string
	Context map[string]any
	Cause   error
}

func NewDependencyWarning(source, message string, cause error) DependencyWarning {
	return DependencyWarning{Source: source, Message: message, Cause: cause}
}

// WithContext returns a copy of the warning with an extra context entry.
func (w DependencyWarning) WithContext(key string, value any) DependencyWarning {
	ctx := make(map[string]any, len(w.Context)+1)
	for k, v := range w.Context {
		ctx[k] = v
	}
	ctx[key] = value
	w.Context = ctx
	return w
}

func (w DependencyWarning) Error() string {
	if w.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", w.Source, w.Message, w.Cause)
	}
	return fmt.Sprintf("%s: %s", w.Source, w.Message)
}

func (w DependencyWarning) Unwrap() error {
	return ErrDependencyFailures
}

func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
