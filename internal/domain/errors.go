package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the domain package.
// Use errors.Is to check: errors.Is(err, domain.ErrInvalidArgument)
var (
	ErrInvalidArgument  = errors.New("poematic: invalid argument")
	ErrInvalidHideCount = fmt.Errorf("%w: hide count must not be negative", ErrInvalidArgument)
	ErrBadSample        = errors.New("poematic: sampler returned an invalid selection")
	ErrEmptyCorpus      = errors.New("poematic: corpus has no line with words to hide")
	ErrSessionOver      = errors.New("poematic: session is over")
	ErrNoPendingRound   = errors.New("poematic: no round is waiting for a guess")
)
