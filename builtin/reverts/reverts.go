// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reverts

import (
	"errors"
)

// Kind classifies business rule failures.
type Kind uint8

const (
	Unauthorized Kind = iota + 1
	SequenceMismatch
	InvalidInput
	CapacityExceeded
	PoolStopped
	NotFound
	AdmissionDenied
)

func (k Kind) String() string {
	switch k {
	case Unauthorized:
		return "Unauthorized"
	case SequenceMismatch:
		return "SequenceMismatch"
	case InvalidInput:
		return "InvalidInput"
	case CapacityExceeded:
		return "CapacityExceeded"
	case PoolStopped:
		return "PoolStopped"
	case NotFound:
		return "NotFound"
	case AdmissionDenied:
		return "AdmissionDenied"
	}
	return "Unknown"
}

// ErrRevert is a business rule failure. Operations failing with an ErrRevert
// leave no state change behind.
type ErrRevert struct {
	kind    Kind
	message string
}

func New(kind Kind, message string) *ErrRevert {
	return &ErrRevert{
		kind:    kind,
		message: message,
	}
}

func (e *ErrRevert) Error() string {
	return e.message
}

func (e *ErrRevert) Kind() Kind {
	return e.kind
}

var (
	ErrMissingSigner                    = New(Unauthorized, "MissingSigner")
	ErrInvalidSuperOwner                = New(Unauthorized, "InvalidSuperOwner")
	ErrInvalidNFTOwner                  = New(Unauthorized, "InvalidNFTOwner")
	ErrInvalidAuthority                 = New(Unauthorized, "InvalidAuthority")
	ErrInvalidFarmCount                 = New(SequenceMismatch, "InvalidFarmCount")
	ErrInvalidNonce                     = New(SequenceMismatch, "InvalidNonce")
	ErrInvalidInput                     = New(InvalidInput, "InvalidInput")
	ErrInvalidWithdrawTime              = New(InvalidInput, "InvalidWithdrawTime")
	ErrInsufficientBalance              = New(InvalidInput, "InsufficientBalance")
	ErrAlreadyInitialized               = New(InvalidInput, "AccountAlreadyInitialized")
	ErrWhitelistExists                  = New(InvalidInput, "WhitelistAlreadyExists")
	ErrAccountNotEmpty                  = New(InvalidInput, "AccountNotEmpty")
	ErrAlreadyStaked                    = New(InvalidInput, "AlreadyStaked")
	ErrExceedMaxCount                   = New(CapacityExceeded, "ExceedMaxCount")
	ErrUserPoolFull                     = New(CapacityExceeded, "UserPoolFull")
	ErrPoolStopped                      = New(PoolStopped, "PoolStopped")
	ErrInvalidGlobalPool                = New(NotFound, "InvalidGlobalPool")
	ErrInvalidUserPool                  = New(NotFound, "InvalidUserPool")
	ErrInvalidFarm                      = New(NotFound, "InvalidFarm")
	ErrInvalidNFTAddress                = New(NotFound, "InvalidNFTAddress")
	ErrInvalidWhitelistAddress          = New(NotFound, "InvalidWhitelistAddress")
	ErrInvalidMint                      = New(NotFound, "InvalidMint")
	ErrMetadataCreatorParseError        = New(AdmissionDenied, "MetadataCreatorParseError")
	ErrUnknownOrNotAllowedNFTCollection = New(AdmissionDenied, "UnknownOrNotAllowedNFTCollection")
)

// IsRevertErr reports whether err, or an error it wraps, is an ErrRevert.
func IsRevertErr(err any) bool {
	_, ok := asRevert(err)
	return ok
}

// KindOf returns the kind of the revert wrapped by err.
func KindOf(err error) (Kind, bool) {
	if re, ok := asRevert(err); ok {
		return re.kind, true
	}
	return 0, false
}

// Is reports whether err is a revert of the given kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

func asRevert(err any) (*ErrRevert, bool) {
	if err == nil {
		return nil, false
	}
	e, ok := err.(error)
	if !ok {
		return nil, false
	}
	var re *ErrRevert
	if errors.As(e, &re) {
		return re, true
	}
	return nil, false
}
