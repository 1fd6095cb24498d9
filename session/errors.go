// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package session

import "errors"

var (
	ErrEmptyCommand  = errors.New("empty command")
	ErrUnknownTarget = errors.New("unknown target")
	ErrUnknownOp     = errors.New("unknown operation")
	ErrInvalidArgs   = errors.New("invalid number of arguments")
	ErrInvalidNumber = errors.New("invalid number")
)
