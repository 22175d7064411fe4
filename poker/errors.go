package poker

import (
	"errors"
	"fmt"
)

// ValidationKind discriminates the two ways Evaluate6Cards can reject its
// input.
type ValidationKind int32

const (
	// WrongCardCount means the hole cards were not exactly 2 or the
	// community cards were not exactly 4.
	WrongCardCount ValidationKind = iota + 1
	// DuplicateCard means the same (suit, rank) card appeared twice among
	// the combined 6 cards.
	DuplicateCard
)

// ValidationError reports invalid evaluator input. Validation happens
// before any classification work; a returned ValidationError means no
// partial result was produced.
type ValidationError struct {
	Kind ValidationKind
	msg  string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func newWrongCardCount(holeCount, communityCount int) *ValidationError {
	return &ValidationError{
		Kind: WrongCardCount,
		msg:  fmt.Sprintf("expected 2 hole cards and 4 community cards, got %d and %d", holeCount, communityCount),
	}
}

func newDuplicateCard(card Card) *ValidationError {
	return &ValidationError{
		Kind: DuplicateCard,
		msg:  fmt.Sprintf("duplicate card %s in input", card),
	}
}

// IsWrongCardCount reports whether err is a WrongCardCount validation
// failure.
func IsWrongCardCount(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) && ve.Kind == WrongCardCount
}

// IsDuplicateCard reports whether err is a DuplicateCard validation
// failure.
func IsDuplicateCard(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) && ve.Kind == DuplicateCard
}
