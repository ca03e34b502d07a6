package xcoin

import (
	"context"
	"encoding/json"
	"time"

	"github.com/btcsuite/btcutil"
	"github.com/pkg/errors"
)

// AddMultiSignatureAddress adds a nRequired-to-sign multi-signature address
// to the wallet and returns it. Each key is an address or a hex-encoded
// public key. The address is assigned to account when present.
func (c *Client) AddMultiSignatureAddress(ctx context.Context, nRequired int, keys []string, account Opt[string]) (string, error) {
	params := withOpt([]any{nRequired, keys}, account)
	return CallResult[string](ctx, c, AddMultiSignatureAddress, params...)
}

type MultiSigAddress struct {
	Address      string `json:"address"`
	RedeemScript string `json:"redeemScript"`
}

// CreateMultiSignatureAddress creates a nRequired-to-sign multi-signature
// address without adding it to the wallet.
func (c *Client) CreateMultiSignatureAddress(ctx context.Context, nRequired int, keys []string) (*MultiSigAddress, error) {
	return CallResult[*MultiSigAddress](ctx, c, CreateMultiSignatureAddress, nRequired, keys)
}

// BackupWallet safely copies wallet.dat to destination, a directory or a
// path with filename.
func (c *Client) BackupWallet(ctx context.Context, destination string) error {
	return c.callNoResult(ctx, BackupWallet, destination)
}

// DumpPrivateKey reveals the private key of address. Requires an unlocked
// wallet.
func (c *Client) DumpPrivateKey(ctx context.Context, address string) (string, error) {
	return CallResult[string](ctx, c, DumpPrivateKey, address)
}

// ImportPrivateKey adds a private key, as returned by DumpPrivateKey, to the
// wallet. The daemon rescans the chain unless rescan is false, which can take
// a while. Requires an unlocked wallet.
// Parameters are positional: set label to set rescan.
func (c *Client) ImportPrivateKey(ctx context.Context, key string, label Opt[string], rescan Opt[bool]) error {
	params := withOpt(withOpt([]any{key}, label), rescan)
	return c.callNoResult(ctx, ImportPrivateKey, params...)
}

// EncryptWallet encrypts the wallet with passphrase and returns the daemon's
// message. The daemon shuts down afterwards.
func (c *Client) EncryptWallet(ctx context.Context, passphrase string) (string, error) {
	return CallResult[string](ctx, c, EncryptWallet, passphrase)
}

// KeyPoolRefill fills the key pool. Requires an unlocked wallet.
func (c *Client) KeyPoolRefill(ctx context.Context) error {
	return c.callNoResult(ctx, KeyPoolRefill)
}

// WalletLock removes the wallet encryption key from memory. WalletPassPhrase
// must be called again before using methods requiring an unlocked wallet.
func (c *Client) WalletLock(ctx context.Context) error {
	return c.callNoResult(ctx, WalletLock)
}

// WalletPassPhrase keeps the wallet decryption key in memory for timeout,
// rounded up to whole seconds.
func (c *Client) WalletPassPhrase(ctx context.Context, passphrase string, timeout time.Duration) error {
	return c.callNoResult(ctx, WalletPassPhrase, passphrase, int64((timeout+time.Second-1)/time.Second))
}

func (c *Client) WalletPassPhraseChange(ctx context.Context, oldPassphrase, newPassphrase string) error {
	return c.callNoResult(ctx, WalletPassPhraseChange, oldPassphrase, newPassphrase)
}

// SignMessage signs message with the private key of address and returns the
// base64 signature. Requires an unlocked wallet.
func (c *Client) SignMessage(ctx context.Context, address, message string) (string, error) {
	return CallResult[string](ctx, c, SignMessage, address, message)
}

func (c *Client) VerifyMessage(ctx context.Context, address, signature, message string) (bool, error) {
	return CallResult[bool](ctx, c, VerifyMessage, address, signature, message)
}

// AddressValidation as returned by validateaddress.
type AddressValidation struct {
	IsValid      bool   `json:"isvalid"`
	Address      string `json:"address,omitempty"`
	IsMine       bool   `json:"ismine,omitempty"`
	IsScript     bool   `json:"isscript,omitempty"`
	PubKey       string `json:"pubkey,omitempty"`
	IsCompressed bool   `json:"iscompressed,omitempty"`
	Account      string `json:"account,omitempty"`
}

func (c *Client) ValidateAddress(ctx context.Context, address string) (*AddressValidation, error) {
	return CallResult[*AddressValidation](ctx, c, ValidateAddress, address)
}

// SetTxFee sets the transaction fee per kB.
func (c *Client) SetTxFee(ctx context.Context, amount btcutil.Amount) (bool, error) {
	return CallResult[bool](ctx, c, SetTxFee, btc(amount))
}

// SendFrom sends amount from fromAccount to toAddress, making sure the
// account has a valid balance using minConf confirmations, and returns the
// transaction id. Requires an unlocked wallet.
// Parameters are positional: set minConf to set comment, and comment to set
// commentTo.
func (c *Client) SendFrom(ctx context.Context, fromAccount, toAddress string, amount btcutil.Amount, minConf Opt[int], comment, commentTo Opt[string]) (string, error) {
	params := []any{fromAccount, toAddress, btc(amount)}
	params = withOpt(params, minConf)
	params = withOpt(params, comment)
	params = withOpt(params, commentTo)
	return CallResult[string](ctx, c, SendFrom, params...)
}

// SendMany sends to several addresses at once and returns the transaction
// id. Requires an unlocked wallet.
// Parameters are positional: set minConf to set comment.
func (c *Client) SendMany(ctx context.Context, fromAccount string, receivers map[string]btcutil.Amount, minConf Opt[int], comment Opt[string]) (string, error) {
	params := withOpt(withOpt([]any{fromAccount, amounts(receivers)}, minConf), comment)
	return CallResult[string](ctx, c, SendMany, params...)
}

// SendToAddress sends amount to address and returns the transaction id.
// Requires an unlocked wallet.
// Parameters are positional: set comment to set commentTo.
func (c *Client) SendToAddress(ctx context.Context, address string, amount btcutil.Amount, comment, commentTo Opt[string]) (string, error) {
	params := withOpt(withOpt([]any{address, btc(amount)}, comment), commentTo)
	return CallResult[string](ctx, c, SendToAddress, params...)
}

func amounts(m map[string]btcutil.Amount) map[string]float64 {
	out := make(map[string]float64, len(m))
	for address, amount := range m {
		out[address] = amount.ToBTC()
	}
	return out
}

// TransactionDetail is one wallet entry of a Transaction.
type TransactionDetail struct {
	Account  string  `json:"account"`
	Address  string  `json:"address"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Fee      float64 `json:"fee,omitempty"`
}

// Transaction as returned by gettransaction.
type Transaction struct {
	Amount        float64             `json:"amount"`
	Fee           float64             `json:"fee,omitempty"`
	Confirmations int64               `json:"confirmations"`
	BlockHash     string              `json:"blockhash,omitempty"`
	BlockIndex    int64               `json:"blockindex,omitempty"`
	BlockTime     int64               `json:"blocktime,omitempty"`
	TxID          string              `json:"txid"`
	Time          int64               `json:"time"`
	TimeReceived  int64               `json:"timereceived"`
	Details       []TransactionDetail `json:"details"`
	Hex           string              `json:"hex,omitempty"`
}

func (c *Client) GetTransaction(ctx context.Context, txID string) (*Transaction, error) {
	return CallResult[*Transaction](ctx, c, GetTransaction, txID)
}

// WalletTransaction is an entry of listtransactions and listsinceblock.
type WalletTransaction struct {
	Account       string  `json:"account"`
	Address       string  `json:"address,omitempty"`
	Category      string  `json:"category"`
	Amount        float64 `json:"amount"`
	Fee           float64 `json:"fee,omitempty"`
	Confirmations int64   `json:"confirmations"`
	BlockHash     string  `json:"blockhash,omitempty"`
	BlockIndex    int64   `json:"blockindex,omitempty"`
	BlockTime     int64   `json:"blocktime,omitempty"`
	TxID          string  `json:"txid"`
	Time          int64   `json:"time"`
	TimeReceived  int64   `json:"timereceived"`
	Comment       string  `json:"comment,omitempty"`
	To            string  `json:"to,omitempty"`
	OtherAccount  string  `json:"otheraccount,omitempty"`
}

// ListTransactions returns up to count most recent transactions, skipping
// the first from, for account or every account when absent.
// Parameters are positional: set account ("*" for all) to set count, and
// count to set from.
func (c *Client) ListTransactions(ctx context.Context, account Opt[string], count, from Opt[int]) ([]WalletTransaction, error) {
	params := withOpt(withOpt(withOpt([]any{}, account), count), from)
	return CallResult[[]WalletTransaction](ctx, c, ListTransactions, params...)
}

type SinceBlock struct {
	Transactions []WalletTransaction `json:"transactions"`
	LastBlock    string              `json:"lastblock"`
}

// ListSinceBlock returns all transactions in blocks since blockHash, or all
// transactions when absent. targetConfirmations does not filter the list,
// it only changes the returned LastBlock.
// Parameters are positional: set blockHash to set targetConfirmations.
func (c *Client) ListSinceBlock(ctx context.Context, blockHash Opt[string], targetConfirmations Opt[int]) (*SinceBlock, error) {
	params := withOpt(withOpt([]any{}, blockHash), targetConfirmations)
	return CallResult[*SinceBlock](ctx, c, ListSinceBlock, params...)
}

// Unspent is a wallet output as returned by listunspent.
type Unspent struct {
	TxID          string  `json:"txid"`
	Vout          uint32  `json:"vout"`
	Address       string  `json:"address"`
	Account       string  `json:"account,omitempty"`
	ScriptPubKey  string  `json:"scriptPubKey"`
	RedeemScript  string  `json:"redeemScript,omitempty"`
	Amount        float64 `json:"amount"`
	Confirmations int64   `json:"confirmations"`
}

// OutPoint references the output Vout of transaction TxID.
type OutPoint struct {
	TxID string `json:"txid"`
	Vout uint32 `json:"vout"`
}

// ListUnspent returns the unspent outputs of the wallet having between
// minConf and maxConf confirmations.
// Parameters are positional: set minConf to set maxConf.
func (c *Client) ListUnspent(ctx context.Context, minConf, maxConf Opt[int]) ([]Unspent, error) {
	params := withOpt(withOpt([]any{}, minConf), maxConf)
	return CallResult[[]Unspent](ctx, c, ListUnspent, params...)
}

// ListLockUnspent returns the temporarily unspendable outputs.
func (c *Client) ListLockUnspent(ctx context.Context) ([]OutPoint, error) {
	return CallResult[[]OutPoint](ctx, c, ListLockUnspent)
}

// LockUnspent updates the list of temporarily unspendable outputs: it locks
// outputs, or unlocks them when unlock is true. Without outputs, unlock
// releases every locked output.
func (c *Client) LockUnspent(ctx context.Context, unlock bool, outputs Opt[[]OutPoint]) (bool, error) {
	params := withOpt([]any{unlock}, outputs)
	return CallResult[bool](ctx, c, LockUnspent, params...)
}

// AddressBalance is an entry of listaddressgroupings, sent by the daemon as
// [address, amount] or [address, amount, account].
type AddressBalance struct {
	Address string
	Amount  float64
	Account string
}

func (a *AddressBalance) UnmarshalJSON(b []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	if len(fields) < 2 {
		return errors.Errorf("address grouping entry has %d fields, want 2 or 3", len(fields))
	}
	if err := json.Unmarshal(fields[0], &a.Address); err != nil {
		return errors.Wrap(err, "address")
	}
	if err := json.Unmarshal(fields[1], &a.Amount); err != nil {
		return errors.Wrap(err, "amount")
	}
	if len(fields) > 2 {
		if err := json.Unmarshal(fields[2], &a.Account); err != nil {
			return errors.Wrap(err, "account")
		}
	}
	return nil
}

// ListAddressGroupings returns the wallet addresses grouped by common
// ownership, as used for coin control.
func (c *Client) ListAddressGroupings(ctx context.Context) ([][]AddressBalance, error) {
	return CallResult[[][]AddressBalance](ctx, c, ListAddressGroupings)
}
