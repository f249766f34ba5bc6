package ledger

import "fmt"

type ErrorCode string

const (
	// ErrCodeRPC is used when a call to the ledger RPC endpoint fails (unreachable, rate limited, rejected)
	ErrCodeRPC ErrorCode = "rpc"

	// ErrCodeInstruction is used when an instruction cannot be built from the supplied accounts
	ErrCodeInstruction ErrorCode = "instruction"

	// ErrCodeTransaction is used when a transaction cannot be assembled or signed, or fails on chain
	ErrCodeTransaction ErrorCode = "transaction"

	// ErrCodeConfirmation is used when a submitted transaction is not confirmed in time
	ErrCodeConfirmation ErrorCode = "confirmation"

	// ErrCodeSignerUnavailable is used when an operation needs the signer key but none is configured
	ErrCodeSignerUnavailable ErrorCode = "signer_unavailable"

	// ErrCodeOwnerMismatch is used when a caller asks the server to act for an account whose key it does not hold
	ErrCodeOwnerMismatch ErrorCode = "owner_mismatch"
)

// LedgerError represents a structured error from the ledger package
type LedgerError struct {
	code    ErrorCode
	message string
	wrapped error
}

func (e *LedgerError) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", e.message, e.wrapped)
	}
	return e.message
}

func (e *LedgerError) Code() ErrorCode { return e.code }
func (e *LedgerError) Unwrap() error   { return e.wrapped }

// WrapRPCError wraps an error returned by the RPC client
func WrapRPCError(err error, msg string) error {
	return &LedgerError{code: ErrCodeRPC, message: msg, wrapped: err}
}

// WrapInstructionError wraps an error returned while building an instruction
func WrapInstructionError(err error, msg string) error {
	return &LedgerError{code: ErrCodeInstruction, message: msg, wrapped: err}
}

// NewTransactionError is returned when a submitted transaction fails on chain
func NewTransactionError(msg string) error {
	return &LedgerError{code: ErrCodeTransaction, message: msg}
}

// WrapTransactionError wraps an error returned while assembling, signing or executing a transaction
func WrapTransactionError(err error, msg string) error {
	return &LedgerError{code: ErrCodeTransaction, message: msg, wrapped: err}
}

// WrapConfirmationError wraps the error that ended the wait for a transaction confirmation
func WrapConfirmationError(err error, msg string) error {
	return &LedgerError{code: ErrCodeConfirmation, message: msg, wrapped: err}
}

// NewSignerUnavailableError is returned by operations that submit transactions when no signer key is configured
func NewSignerUnavailableError() error {
	return &LedgerError{code: ErrCodeSignerUnavailable, message: "signer not configured: set SIGNER_KEY_PATH to enable transaction submission"}
}

// NewOwnerMismatchError creates an owner mismatch error
func NewOwnerMismatchError(msg string) error {
	return &LedgerError{code: ErrCodeOwnerMismatch, message: msg}
}
