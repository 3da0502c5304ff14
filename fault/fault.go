// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	CannotDecodeAccount          = RecordError("cannot decode account")
	CannotDecodePrivateKey       = RecordError("cannot decode private key")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ChecksumMismatch             = ProcessError("checksum mismatch")
	ConfigurationFileNotFound    = NotFoundError("configuration file not found")
	DatabaseIsNotSet             = ProcessError("database is not set")
	InsufficientAllowance        = InvalidError("insufficient allowance")
	InsufficientBalance          = InvalidError("insufficient balance")
	InsufficientSupply           = InvalidError("insufficient shard supply")
	IndexOutOfRange              = InvalidError("shard index out of range")
	InvalidChain                 = InvalidError("invalid chain")
	InvalidConfiguration         = InvalidError("configuration must return a table")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidDnsTxtRecord          = InvalidError("invalid DNS TXT record")
	InvalidExpiration            = InvalidError("expiration ledger is before current ledger")
	InvalidFingerprint           = InvalidError("invalid fingerprint")
	InvalidIPAddress             = InvalidError("invalid IP address")
	InvalidItem                  = InvalidError("invalid item")
	InvalidKeyLength             = InvalidError("invalid key length")
	InvalidKeyType               = InvalidError("invalid key type")
	InvalidMetadata              = InvalidError("decimal must not be greater than 18")
	InvalidNodeDomain            = InvalidError("invalid node domain")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidPostIdentifier        = InvalidError("invalid post identifier")
	InvalidPublicKey             = InvalidError("invalid public key")
	InvalidPrivateKey            = InvalidError("invalid private key")
	InvalidSignature             = InvalidError("invalid signature")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingParameters            = InvalidError("missing parameters")
	MissingRecord                = NotFoundError("record not found")
	NegativeAmount               = InvalidError("negative amount is not allowed")
	NoNodesFound                 = NotFoundError("no nodes found")
	NotInitialised               = NotFoundError("not initialised")
	NotPublicKey                 = RecordError("not a public key")
	NotPrivateKey                = RecordError("not a private key")
	NotShardOwner                = InvalidError("not shard owner")
	PostExists                   = ExistsError("post already exists")
	RateLimiting                 = InvalidError("rate limiting")
	ReplayedRequest              = ExistsError("request already processed")
	ShardCountTooLarge           = LengthError("shard count too large")
	StaleRequest                 = InvalidError("request nonce outside replay window")
	TransactionNotStarted        = ProcessError("transaction not started")
	TruncatedRecord              = LengthError("truncated record")
	Unauthorized                 = InvalidError("unauthorized")
	UnmappedShard                = NotFoundError("shard not mapped to any post")
	WrongNetworkForPublicKey     = InvalidError("wrong network for public key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
