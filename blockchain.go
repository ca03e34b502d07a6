package xcoin

import (
	"context"
	"encoding/json"
)

// Block as returned by getblock.
type Block struct {
	Hash              string   `json:"hash"`
	Confirmations     int64    `json:"confirmations"`
	Size              int64    `json:"size"`
	Height            int64    `json:"height"`
	Version           int32    `json:"version"`
	MerkleRoot        string   `json:"merkleroot"`
	Tx                []string `json:"tx"`
	Time              int64    `json:"time"`
	Nonce             uint32   `json:"nonce"`
	Bits              string   `json:"bits"`
	Difficulty        float64  `json:"difficulty"`
	PreviousBlockHash string   `json:"previousblockhash,omitempty"`
	NextBlockHash     string   `json:"nextblockhash,omitempty"`
}

// GetBestBlockHash returns the hash of the best (tip) block in the longest
// block chain.
func (c *Client) GetBestBlockHash(ctx context.Context) (string, error) {
	return CallResult[string](ctx, c, GetBestBlockHash)
}

// GetBlock returns information about the block with the given hash.
func (c *Client) GetBlock(ctx context.Context, hash string) (*Block, error) {
	return CallResult[*Block](ctx, c, GetBlock, hash)
}

// GetBlockCount returns the number of blocks in the longest block chain.
func (c *Client) GetBlockCount(ctx context.Context) (int64, error) {
	return CallResult[int64](ctx, c, GetBlockCount)
}

// GetBlockHash returns the hash of the block in best-block-chain at index;
// index 0 is the genesis block.
func (c *Client) GetBlockHash(ctx context.Context, index int64) (string, error) {
	return CallResult[string](ctx, c, GetBlockHash, index)
}

// GetBlockNumber is the getblocknumber procedure removed by the daemon, it
// answers with GetBlockCount.
//
// Deprecated: use GetBlockCount.
func (c *Client) GetBlockNumber(ctx context.Context) (int64, error) {
	return c.GetBlockCount(ctx)
}

func (c *Client) GetDifficulty(ctx context.Context) (float64, error) {
	return CallResult[float64](ctx, c, GetDifficulty)
}

// GetRawMemPool returns the ids of all transactions in the memory pool.
func (c *Client) GetRawMemPool(ctx context.Context) ([]string, error) {
	return CallResult[[]string](ctx, c, GetRawMemPool)
}

// GetMemoryPool is the getmemorypool procedure, replaced by the daemon with
// getblocktemplate, submitblock and getrawmempool. It never reaches the
// daemon and always returns a nil result.
//
// Deprecated: use GetBlockTemplate, SubmitBlock or GetRawMemPool.
func (c *Client) GetMemoryPool(ctx context.Context) (json.RawMessage, error) {
	return nil, nil
}

// ScriptPubKey of a transaction output.
type ScriptPubKey struct {
	Asm       string   `json:"asm"`
	Hex       string   `json:"hex"`
	ReqSigs   int32    `json:"reqSigs,omitempty"`
	Type      string   `json:"type"`
	Addresses []string `json:"addresses,omitempty"`
}

// TxOut as returned by gettxout.
type TxOut struct {
	BestBlock     string       `json:"bestblock"`
	Confirmations int64        `json:"confirmations"`
	Value         float64      `json:"value"`
	ScriptPubKey  ScriptPubKey `json:"scriptPubKey"`
	Version       int32        `json:"version"`
	Coinbase      bool         `json:"coinbase"`
}

// GetTxOut returns details about the unspent transaction output n of txID.
// A nil TxOut means the output is spent or unknown.
// includeMemPool defaults to true on the daemon.
func (c *Client) GetTxOut(ctx context.Context, txID string, n uint32, includeMemPool Opt[bool]) (*TxOut, error) {
	params := withOpt([]any{txID, n}, includeMemPool)
	return CallResult[*TxOut](ctx, c, GetTxOut, params...)
}

// TxOutSetInfo holds statistics about the unspent transaction output set.
type TxOutSetInfo struct {
	Height          int64   `json:"height"`
	BestBlock       string  `json:"bestblock"`
	Transactions    int64   `json:"transactions"`
	TxOuts          int64   `json:"txouts"`
	BytesSerialized int64   `json:"bytes_serialized"`
	HashSerialized  string  `json:"hash_serialized"`
	TotalAmount     float64 `json:"total_amount"`
}

func (c *Client) GetTxOutSetInfo(ctx context.Context) (*TxOutSetInfo, error) {
	return CallResult[*TxOutSetInfo](ctx, c, GetTxOutSetInfo)
}
