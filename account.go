package xcoin

import (
	"context"

	"github.com/btcsuite/btcutil"
)

// btc converts an amount to the BTC float the daemon expects, rounded to
// 8 decimal places.
func btc(a btcutil.Amount) any {
	return a.ToBTC()
}

// GetAccount returns the account associated with address.
func (c *Client) GetAccount(ctx context.Context, address string) (string, error) {
	return CallResult[string](ctx, c, GetAccount, address)
}

// GetAccountAddress returns the current address for receiving payments to
// account. The account is created along with a new address if it does not
// exist.
func (c *Client) GetAccountAddress(ctx context.Context, account string) (string, error) {
	return CallResult[string](ctx, c, GetAccountAddress, account)
}

func (c *Client) GetAddressesByAccount(ctx context.Context, account string) ([]string, error) {
	return CallResult[[]string](ctx, c, GetAddressesByAccount, account)
}

// SetAccount sets the account associated with address. Assigning an address
// already assigned to the same account creates a new address for it.
func (c *Client) SetAccount(ctx context.Context, address, account string) error {
	return c.callNoResult(ctx, SetAccount, address, account)
}

// GetNewAddress returns a new address for receiving payments, credited to
// account when present.
func (c *Client) GetNewAddress(ctx context.Context, account Opt[string]) (string, error) {
	params := withOpt([]any{}, account)
	return CallResult[string](ctx, c, GetNewAddress, params...)
}

// GetRawChangeAddress returns a new address for receiving change, for use
// with raw transactions.
func (c *Client) GetRawChangeAddress(ctx context.Context, account Opt[string]) (string, error) {
	params := withOpt([]any{}, account)
	return CallResult[string](ctx, c, GetRawChangeAddress, params...)
}

// ListAccounts returns account balances by account name.
func (c *Client) ListAccounts(ctx context.Context, minConf Opt[int]) (map[string]float64, error) {
	params := withOpt([]any{}, minConf)
	return CallResult[map[string]float64](ctx, c, ListAccounts, params...)
}

// GetBalance returns the server's total available balance, or the balance of
// account when present. Parameters are positional: set account ("*" for all)
// to set minConf.
func (c *Client) GetBalance(ctx context.Context, account Opt[string], minConf Opt[int]) (float64, error) {
	params := withOpt(withOpt([]any{}, account), minConf)
	return CallResult[float64](ctx, c, GetBalance, params...)
}

type ReceivedByAccount struct {
	Account       string  `json:"account"`
	Amount        float64 `json:"amount"`
	Confirmations int64   `json:"confirmations"`
}

// ListReceivedByAccount lists amounts received by account.
// Parameters are positional: set minConf to set includeEmpty.
func (c *Client) ListReceivedByAccount(ctx context.Context, minConf Opt[int], includeEmpty Opt[bool]) ([]ReceivedByAccount, error) {
	params := withOpt(withOpt([]any{}, minConf), includeEmpty)
	return CallResult[[]ReceivedByAccount](ctx, c, ListReceivedByAccount, params...)
}

type ReceivedByAddress struct {
	Address       string   `json:"address"`
	Account       string   `json:"account"`
	Amount        float64  `json:"amount"`
	Confirmations int64    `json:"confirmations"`
	TxIDs         []string `json:"txids,omitempty"`
}

// ListReceivedByAddress lists amounts received by address. Calling it with
// minConf 0 and includeEmpty true lists every address of the wallet.
// Parameters are positional: set minConf to set includeEmpty.
func (c *Client) ListReceivedByAddress(ctx context.Context, minConf Opt[int], includeEmpty Opt[bool]) ([]ReceivedByAddress, error) {
	params := withOpt(withOpt([]any{}, minConf), includeEmpty)
	return CallResult[[]ReceivedByAddress](ctx, c, ListReceivedByAddress, params...)
}

// Move moves amount from one account of the wallet to another.
// Parameters are positional: set minConf to set comment.
func (c *Client) Move(ctx context.Context, fromAccount, toAccount string, amount btcutil.Amount, minConf Opt[int], comment Opt[string]) (bool, error) {
	params := withOpt(withOpt([]any{fromAccount, toAccount, btc(amount)}, minConf), comment)
	return CallResult[bool](ctx, c, Move, params...)
}
