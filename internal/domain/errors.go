package domain

import (
	"errors"
	"fmt"
)

// Классификация отказов. Ошибки движка возвращаются вызывающей стороне
// как есть (через CommandResult); транспортные и персистентные ошибки
// логируются и не фатальны.
var (
	ErrNotFound     = errors.New("key not found")
	ErrInvalidState = errors.New("key is not in a valid state for this operation")
	ErrTransport    = errors.New("transport failure")
	ErrPersistence  = errors.New("persistence write failed")
)

// ValidationError — отсутствующий или некорректный параметр команды.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid parameter %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid parameter %q (value: %s): %s", e.Field, e.Value, e.Reason)
}

// MissingParam — шорткат для обязательного параметра без значения.
func MissingParam(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "parameter is required"}
}

// ApprovalRequiredError возвращается, когда операция над ключом с
// requires_approval записана как pending. Несет ID, по которому операцию
// можно будет подтвердить.
type ApprovalRequiredError struct {
	OperationID string
	KeyID       string
	Operation   string
}

func (e *ApprovalRequiredError) Error() string {
	return fmt.Sprintf("operation %s on key %s requires approval, approval id: %s", e.Operation, e.KeyID, e.OperationID)
}
