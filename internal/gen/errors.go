package gen

import (
	"blockgen/internal/api/models"
	"errors"
	"fmt"
)

var (
	ErrExpectedValue      = errors.New("expected a value from block")
	ErrExpectedStatement  = errors.New("expected a statement from block")
	ErrHelperBodyMismatch = errors.New("helper provided twice with different bodies")
)

// UnknownBlockError is returned when no emitter is registered for a kind.
type UnknownBlockError struct {
	Kind string
}

func (e *UnknownBlockError) Error() string {
	return fmt.Sprintf("no emitter registered for block kind %q", e.Kind)
}

// UnhandledOptionError is returned when a block carries a dropdown option
// its emitter does not know.
type UnhandledOptionError struct {
	Kind   string
	Field  string
	Option string
}

func (e *UnhandledOptionError) Error() string {
	return fmt.Sprintf("block kind %q: unhandled %s option %q", e.Kind, e.Field, e.Option)
}

func unhandled(b *models.Block, field string) error {
	return &UnhandledOptionError{Kind: b.Type, Field: field, Option: b.Field(field)}
}

// BlockError ties a failure to the block where it happened.
type BlockError struct {
	BlockID string
	Kind    string
	Err     error
}

func (e *BlockError) Error() string {
	if e.BlockID == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", e.Kind, e.BlockID, e.Err)
}

func (e *BlockError) Unwrap() error {
	return e.Err
}

// blockError wraps err with b unless a deeper block already claimed it.
func blockError(b *models.Block, err error) error {
	var be *BlockError
	if errors.As(err, &be) {
		return err
	}
	return &BlockError{BlockID: b.ID, Kind: b.Type, Err: err}
}
