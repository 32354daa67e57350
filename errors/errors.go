package errors

import (
	"github.com/cockroachdb/errors"
)

var (
	New          = errors.New
	Newf         = errors.Newf
	Errorf       = errors.Errorf
	Wrap         = errors.Wrap
	Wrapf        = errors.Wrapf
	WithStack    = errors.WithStack
	WithMessage  = errors.WithMessage
	WithMessagef = errors.WithMessagef
	Cause        = errors.Cause
	Unwrap       = errors.Unwrap
	Is           = errors.Is
	As           = errors.As
	Mark         = errors.Mark
)
