package domain

import "errors"

var (
	ErrRequestNotFound = errors.New("help request not found")
	ErrAlreadyOffered  = errors.New("request already has a helper")
	ErrNoOffer         = errors.New("request has no pending offer")
	ErrForbidden       = errors.New("not allowed to modify this request")
	ErrValidation      = errors.New("invalid request input")
)
