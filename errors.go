package xcoin

import "github.com/pkg/errors"

// Error codes reported by bitcoind-style daemons in RPCError.Code.
const (
	ErrCodeInvalidRequest = -32600
	ErrCodeMethodNotFound = -32601
	ErrCodeInvalidParams  = -32602
	ErrCodeInternal       = -32603
	ErrCodeParse          = -32700

	ErrCodeMisc                    = -1
	ErrCodeForbiddenBySafeMode     = -2
	ErrCodeType                    = -3
	ErrCodeInvalidAddressOrKey     = -5
	ErrCodeOutOfMemory             = -7
	ErrCodeInvalidParameter        = -8
	ErrCodeClientNotConnected      = -9
	ErrCodeClientInInitialDownload = -10
	ErrCodeDatabase                = -20
	ErrCodeDeserialization         = -22

	ErrCodeWallet                    = -4
	ErrCodeWalletInsufficientFunds   = -6
	ErrCodeWalletInvalidAccountName  = -11
	ErrCodeWalletKeypoolRanOut       = -12
	ErrCodeWalletUnlockNeeded        = -13
	ErrCodeWalletPassphraseIncorrect = -14
	ErrCodeWalletWrongEncState       = -15
	ErrCodeWalletEncryptionFailed    = -16
	ErrCodeWalletAlreadyUnlocked     = -17
)

// IsRPCError reports whether err is an RPCError carrying code.
func IsRPCError(err error, code int) bool {
	var rpcErr *RPCError
	return errors.As(err, &rpcErr) && rpcErr.Code == code
}
