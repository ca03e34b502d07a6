package xcoin

import (
	"context"
)

// TemplateRequest is the request object of getblocktemplate, see BIP 22.
type TemplateRequest struct {
	Mode         string   `json:"mode,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
	Data         string   `json:"data,omitempty"`
}

// TemplateTransaction is a transaction to include in a block template.
type TemplateTransaction struct {
	Data    string  `json:"data"`
	Hash    string  `json:"hash"`
	Depends []int64 `json:"depends"`
	Fee     int64   `json:"fee"`
	SigOps  int64   `json:"sigops"`
}

// BlockTemplate as returned by getblocktemplate.
type BlockTemplate struct {
	Version           int32                 `json:"version"`
	PreviousBlockHash string                `json:"previousblockhash"`
	Transactions      []TemplateTransaction `json:"transactions"`
	CoinbaseAux       map[string]string     `json:"coinbaseaux"`
	CoinbaseValue     int64                 `json:"coinbasevalue"`
	Target            string                `json:"target"`
	MinTime           int64                 `json:"mintime"`
	Mutable           []string              `json:"mutable"`
	NonceRange        string                `json:"noncerange"`
	SigOpLimit        int64                 `json:"sigoplimit"`
	SizeLimit         int64                 `json:"sizelimit"`
	CurTime           int64                 `json:"curtime"`
	Bits              string                `json:"bits"`
	Height            int64                 `json:"height"`
}

// GetBlockTemplate returns data needed to construct a block to work on.
func (c *Client) GetBlockTemplate(ctx context.Context, request TemplateRequest) (*BlockTemplate, error) {
	return CallResult[*BlockTemplate](ctx, c, GetBlockTemplate, request)
}

// GetGenerate reports whether the daemon is generating hashes.
func (c *Client) GetGenerate(ctx context.Context) (bool, error) {
	return CallResult[bool](ctx, c, GetGenerate)
}

// SetGenerate turns generation on or off. Generation is limited to
// genProcLimit processors, -1 is unlimited.
func (c *Client) SetGenerate(ctx context.Context, generate bool, genProcLimit Opt[int]) error {
	params := withOpt([]any{generate}, genProcLimit)
	return c.callNoResult(ctx, SetGenerate, params...)
}

// GetHashesPerSec returns a recent hashes per second measurement while
// generating.
func (c *Client) GetHashesPerSec(ctx context.Context) (int64, error) {
	return CallResult[int64](ctx, c, GetHashesPerSec)
}

// MiningInfo as returned by getmininginfo.
type MiningInfo struct {
	Blocks           int64   `json:"blocks"`
	CurrentBlockSize int64   `json:"currentblocksize"`
	CurrentBlockTx   int64   `json:"currentblocktx"`
	Difficulty       float64 `json:"difficulty"`
	Errors           string  `json:"errors"`
	Generate         bool    `json:"generate"`
	GenProcLimit     int64   `json:"genproclimit"`
	HashesPerSec     int64   `json:"hashespersec"`
	NetworkHashPS    float64 `json:"networkhashps"`
	PooledTx         int64   `json:"pooledtx"`
	Testnet          bool    `json:"testnet"`
}

func (c *Client) GetMiningInfo(ctx context.Context) (*MiningInfo, error) {
	return CallResult[*MiningInfo](ctx, c, GetMiningInfo)
}

// GetNetworkHashPerSecond returns the estimated network hashes per second.
// blocks overrides the 120 blocks window, -1 means since the last difficulty
// change. height estimates at the time the block at that height was found.
// Parameters are positional: a height without blocks is read as blocks.
func (c *Client) GetNetworkHashPerSecond(ctx context.Context, blocks, height Opt[int64]) (float64, error) {
	params := withOpt(withOpt([]any{}, blocks), height)
	return CallResult[float64](ctx, c, GetNetworkHashPerSecond, params...)
}

// Work is the formatted hash data returned by getwork.
type Work struct {
	Midstate string `json:"midstate"`
	Data     string `json:"data"`
	Hash1    string `json:"hash1"`
	Target   string `json:"target"`
}

// GetWork returns formatted hash data to work on.
func (c *Client) GetWork(ctx context.Context) (*Work, error) {
	return CallResult[*Work](ctx, c, GetWork)
}

// SubmitWork tries to solve the block with data, using getwork, and reports
// whether it succeeded.
func (c *Client) SubmitWork(ctx context.Context, data string) (bool, error) {
	return CallResult[bool](ctx, c, GetWork, data)
}

// SubmitBlockOptions is the optional parameter object of submitblock.
type SubmitBlockOptions struct {
	WorkID string `json:"workid,omitempty"`
}

// SubmitBlock attempts to submit a new block to the network. It returns the
// rejection reason, empty when the block was accepted.
func (c *Client) SubmitBlock(ctx context.Context, hexData string, options Opt[SubmitBlockOptions]) (string, error) {
	params := withOpt([]any{hexData}, options)
	return CallResult[string](ctx, c, SubmitBlock, params...)
}
