package services

// services should wrap any error that can come from their process
//    e.i. http errors should be wrapped
//    and cache store errors need not be wrapped

import "errors"

var (
	// the remote could not be reached or answered with a status we do not handle,
	// this is never retried automatically
	ErrTransportFailure = errors.New("network failure")

	// the remote answered but not in a shape we understand
	ErrIncorrectAssumption = errors.New("unrecoverable failure")
)
