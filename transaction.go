package xcoin

import (
	"context"

	"github.com/btcsuite/btcutil"
	"github.com/pkg/errors"
)

// CreateRawTransaction creates a raw transaction spending inputs to the
// payments and returns it hex-encoded. It is neither signed nor stored.
func (c *Client) CreateRawTransaction(ctx context.Context, inputs []OutPoint, payments map[string]btcutil.Amount) (string, error) {
	if inputs == nil {
		inputs = []OutPoint{}
	}
	return CallResult[string](ctx, c, CreateRawTransaction, inputs, amounts(payments))
}

type Vin struct {
	TxID      string `json:"txid,omitempty"`
	Vout      uint32 `json:"vout"`
	Coinbase  string `json:"coinbase,omitempty"`
	ScriptSig *struct {
		Asm string `json:"asm"`
		Hex string `json:"hex"`
	} `json:"scriptSig,omitempty"`
	Sequence uint32 `json:"sequence"`
}

type Vout struct {
	Value        float64      `json:"value"`
	N            uint32       `json:"n"`
	ScriptPubKey ScriptPubKey `json:"scriptPubKey"`
}

// DecodedTransaction as returned by decoderawtransaction.
type DecodedTransaction struct {
	TxID     string `json:"txid"`
	Version  int32  `json:"version"`
	LockTime uint32 `json:"locktime"`
	Vin      []Vin  `json:"vin"`
	Vout     []Vout `json:"vout"`
}

// DecodeRawTransaction returns the decoded form of the hex-encoded
// transaction.
func (c *Client) DecodeRawTransaction(ctx context.Context, hexString string) (*DecodedTransaction, error) {
	return CallResult[*DecodedTransaction](ctx, c, DecodeRawTransaction, hexString)
}

// RawTransactionInfo as returned by a verbose getrawtransaction.
type RawTransactionInfo struct {
	DecodedTransaction
	Hex           string `json:"hex"`
	BlockHash     string `json:"blockhash,omitempty"`
	Confirmations int64  `json:"confirmations,omitempty"`
	Time          int64  `json:"time,omitempty"`
	BlockTime     int64  `json:"blocktime,omitempty"`
}

// GetRawTransaction returns the hex-encoded transaction txID.
func (c *Client) GetRawTransaction(ctx context.Context, txID string) (string, error) {
	return CallResult[string](ctx, c, GetRawTransaction, txID)
}

// GetRawTransactionVerbose returns transaction txID decoded, along with its
// hex encoding and block information.
func (c *Client) GetRawTransactionVerbose(ctx context.Context, txID string) (*RawTransactionInfo, error) {
	return CallResult[*RawTransactionInfo](ctx, c, GetRawTransaction, txID, 1)
}

// PrevTx describes a previous output spent by a transaction to sign, for
// outputs the daemon does not know yet.
type PrevTx struct {
	TxID         string `json:"txid"`
	Vout         uint32 `json:"vout"`
	ScriptPubKey string `json:"scriptPubKey"`
	RedeemScript string `json:"redeemScript,omitempty"`
}

type SignRawTransactionResult struct {
	Hex      string `json:"hex"`
	Complete bool   `json:"complete"`
}

// SignRawTransaction adds signatures to the hex-encoded transaction and
// returns the result. privKeys restricts signing to those keys instead of
// the wallet's. May require an unlocked wallet.
// Parameters are positional: set prevTxs to set privKeys.
func (c *Client) SignRawTransaction(ctx context.Context, hexString string, prevTxs Opt[[]PrevTx], privKeys Opt[[]string]) (*SignRawTransactionResult, error) {
	params := withOpt(withOpt([]any{hexString}, prevTxs), privKeys)
	return CallResult[*SignRawTransactionResult](ctx, c, SignRawTransaction, params...)
}

// SendRawTransaction submits the hex-encoded transaction to the local node
// and network, and returns its id.
func (c *Client) SendRawTransaction(ctx context.Context, hexString string) (string, error) {
	return CallResult[string](ctx, c, SendRawTransaction, hexString)
}

type (
	RawTransaction struct {
		client *Client
		build  *rawTransactionBuild
	}

	rawTransactionBuild struct {
		inputs   []OutPoint
		outputs  map[string]btcutil.Amount
		prevTxs  []PrevTx
		privKeys []string

		hex    string
		signed *SignRawTransactionResult
	}
)

const (
	ErrorRequiredClient        = "Client is required"
	ErrorRequiredInputs        = "At least one input is required"
	ErrorRequiredOutputs       = "At least one output is required"
	ErrorTransactionIncomplete = "Transaction is not completely signed"
)

// NewRawTransaction returns a raw transaction builder that can create, sign
// and send a transaction.
//
// Example:
//
//	txID, err := xcoin.NewRawTransaction().
//		Client(client).
//		Input(prevTxID, 0).
//		Output(address, btcutil.Amount(50000)).
//		Send(ctx)
func NewRawTransaction() *RawTransaction {
	return &RawTransaction{
		build: &rawTransactionBuild{
			outputs: map[string]btcutil.Amount{},
		},
	}
}

func (t *RawTransaction) Client(c *Client) *RawTransaction {
	t.client = c
	return t
}

// Input spends output vout of transaction txID.
func (t *RawTransaction) Input(txID string, vout uint32) *RawTransaction {
	t.build.inputs = append(t.build.inputs, OutPoint{TxID: txID, Vout: vout})
	t.reset()
	return t
}

// Output pays amount to address. Paying the same address twice adds up.
func (t *RawTransaction) Output(address string, amount btcutil.Amount) *RawTransaction {
	t.build.outputs[address] += amount
	t.reset()
	return t
}

// PrevTx describes a spent output the daemon does not know, used when
// signing.
func (t *RawTransaction) PrevTx(prev ...PrevTx) *RawTransaction {
	t.build.prevTxs = append(t.build.prevTxs, prev...)
	t.build.signed = nil
	return t
}

// PrivateKey signs with key instead of the wallet's keys.
func (t *RawTransaction) PrivateKey(keys ...string) *RawTransaction {
	t.build.privKeys = append(t.build.privKeys, keys...)
	t.build.signed = nil
	return t
}

func (t *RawTransaction) reset() {
	t.build.hex = ""
	t.build.signed = nil
}

// Hex returns the last hex encoding obtained from the daemon, signed if
// Sign was called.
func (t *RawTransaction) Hex() string {
	if t.build.signed != nil {
		return t.build.signed.Hex
	}
	return t.build.hex
}

// Create creates the unsigned transaction and returns its hex encoding.
func (t *RawTransaction) Create(ctx context.Context) (string, error) {
	if t.client == nil {
		return "", errors.New(ErrorRequiredClient)
	}
	if len(t.build.inputs) == 0 {
		return "", errors.New(ErrorRequiredInputs)
	}
	if len(t.build.outputs) == 0 {
		return "", errors.New(ErrorRequiredOutputs)
	}
	hex, err := t.client.CreateRawTransaction(ctx, t.build.inputs, t.build.outputs)
	if err != nil {
		return "", err
	}
	t.build.hex = hex
	t.build.signed = nil
	return hex, nil
}

// Sign signs the transaction, creating it first if needed.
func (t *RawTransaction) Sign(ctx context.Context) (*SignRawTransactionResult, error) {
	if t.build.hex == "" {
		if _, err := t.Create(ctx); err != nil {
			return nil, err
		}
	}

	var prevTxs Opt[[]PrevTx]
	var privKeys Opt[[]string]
	// an empty prevtxs keeps the keys in position
	if len(t.build.prevTxs) > 0 || len(t.build.privKeys) > 0 {
		prevTxs = Some(append([]PrevTx{}, t.build.prevTxs...))
	}
	if len(t.build.privKeys) > 0 {
		privKeys = Some(t.build.privKeys)
	}

	signed, err := t.client.SignRawTransaction(ctx, t.build.hex, prevTxs, privKeys)
	if err != nil {
		return nil, err
	}
	if signed == nil {
		return nil, errors.Errorf("%s returned no result", SignRawTransaction)
	}
	t.build.signed = signed
	return signed, nil
}

// Send signs the transaction if needed and submits it, returning its id.
func (t *RawTransaction) Send(ctx context.Context) (string, error) {
	if t.build.signed == nil {
		if _, err := t.Sign(ctx); err != nil {
			return "", err
		}
	}
	if !t.build.signed.Complete {
		return "", errors.New(ErrorTransactionIncomplete)
	}
	return t.client.SendRawTransaction(ctx, t.build.signed.Hex)
}
