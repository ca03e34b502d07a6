package xcoin_test

import (
	"context"
	"testing"
	"time"

	"github.com/btcsuite/btcutil"
	"github.com/sebamiro/xcoin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every wrapper sends its procedure lower-cased, required params first, then
// the present optional params in order. Numbers decode as float64.
func TestWrapperEnvelopes(t *testing.T) {
	none := xcoin.None[string]()
	noInt := xcoin.None[int]()
	noBool := xcoin.None[bool]()
	s := xcoin.Some[string]
	i := xcoin.Some[int]
	b := xcoin.Some[bool]
	amount := btcutil.Amount(150_000_000)

	cases := []struct {
		name   string
		call   func(ctx context.Context, c *xcoin.Client) error
		method string
		params []any
	}{
		{"AddMultiSignatureAddress", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.AddMultiSignatureAddress(ctx, 2, []string{"k1", "k2"}, none)
			return err
		}, "addmultisigaddress", []any{2.0, []any{"k1", "k2"}}},
		{"AddMultiSignatureAddress account", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.AddMultiSignatureAddress(ctx, 1, []string{"k1"}, s("savings"))
			return err
		}, "addmultisigaddress", []any{1.0, []any{"k1"}, "savings"}},
		{"AddNode", func(ctx context.Context, c *xcoin.Client) error {
			return c.AddNode(ctx, "10.0.0.1:8333", xcoin.AddNodeOneTry)
		}, "addnode", []any{"10.0.0.1:8333", "onetry"}},
		{"BackupWallet", func(ctx context.Context, c *xcoin.Client) error {
			return c.BackupWallet(ctx, "/backup")
		}, "backupwallet", []any{"/backup"}},
		{"CreateMultiSignatureAddress", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.CreateMultiSignatureAddress(ctx, 2, []string{"k1", "k2", "k3"})
			return err
		}, "createmultisig", []any{2.0, []any{"k1", "k2", "k3"}}},
		{"CreateRawTransaction", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.CreateRawTransaction(ctx, []xcoin.OutPoint{{TxID: "aa", Vout: 1}}, map[string]btcutil.Amount{"addr": amount})
			return err
		}, "createrawtransaction", []any{
			[]any{map[string]any{"txid": "aa", "vout": 1.0}},
			map[string]any{"addr": 1.5},
		}},
		{"DecodeRawTransaction", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.DecodeRawTransaction(ctx, "0100")
			return err
		}, "decoderawtransaction", []any{"0100"}},
		{"DumpPrivateKey", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.DumpPrivateKey(ctx, "addr")
			return err
		}, "dumpprivkey", []any{"addr"}},
		{"EncryptWallet", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.EncryptWallet(ctx, "pass")
			return err
		}, "encryptwallet", []any{"pass"}},
		{"GetAccount", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetAccount(ctx, "addr")
			return err
		}, "getaccount", []any{"addr"}},
		{"GetAccountAddress", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetAccountAddress(ctx, "acc")
			return err
		}, "getaccountaddress", []any{"acc"}},
		{"GetAddedNodeInfo", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetAddedNodeInfo(ctx, true, none)
			return err
		}, "getaddednodeinfo", []any{true}},
		{"GetAddedNodeInfo node", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetAddedNodeInfo(ctx, false, s("10.0.0.1"))
			return err
		}, "getaddednodeinfo", []any{false, "10.0.0.1"}},
		{"GetAddressesByAccount", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetAddressesByAccount(ctx, "acc")
			return err
		}, "getaddressesbyaccount", []any{"acc"}},
		{"GetBalance", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetBalance(ctx, none, noInt)
			return err
		}, "getbalance", []any{}},
		{"GetBalance account minconf", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetBalance(ctx, s("*"), i(6))
			return err
		}, "getbalance", []any{"*", 6.0}},
		{"GetBestBlockHash", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetBestBlockHash(ctx)
			return err
		}, "getbestblockhash", []any{}},
		{"GetBlock", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetBlock(ctx, "00ff")
			return err
		}, "getblock", []any{"00ff"}},
		{"GetBlockCount", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetBlockCount(ctx)
			return err
		}, "getblockcount", []any{}},
		{"GetBlockHash", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetBlockHash(ctx, 0)
			return err
		}, "getblockhash", []any{0.0}},
		{"GetBlockTemplate", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetBlockTemplate(ctx, xcoin.TemplateRequest{Capabilities: []string{"longpoll"}})
			return err
		}, "getblocktemplate", []any{map[string]any{"capabilities": []any{"longpoll"}}}},
		{"GetConnectionCount", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetConnectionCount(ctx)
			return err
		}, "getconnectioncount", []any{}},
		{"GetDifficulty", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetDifficulty(ctx)
			return err
		}, "getdifficulty", []any{}},
		{"GetGenerate", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetGenerate(ctx)
			return err
		}, "getgenerate", []any{}},
		{"GetHashesPerSec", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetHashesPerSec(ctx)
			return err
		}, "gethashespersec", []any{}},
		{"GetInfo", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetInfo(ctx)
			return err
		}, "getinfo", []any{}},
		{"GetMiningInfo", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetMiningInfo(ctx)
			return err
		}, "getmininginfo", []any{}},
		{"GetNetworkHashPerSecond", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetNetworkHashPerSecond(ctx, xcoin.None[int64](), xcoin.None[int64]())
			return err
		}, "getnetworkhashps", []any{}},
		{"GetNetworkHashPerSecond blocks height", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetNetworkHashPerSecond(ctx, xcoin.Some[int64](-1), xcoin.Some[int64](300000))
			return err
		}, "getnetworkhashps", []any{-1.0, 300000.0}},
		{"GetNewAddress", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetNewAddress(ctx, s("acc"))
			return err
		}, "getnewaddress", []any{"acc"}},
		{"GetPeerInfo", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetPeerInfo(ctx)
			return err
		}, "getpeerinfo", []any{}},
		{"GetRawChangeAddress", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetRawChangeAddress(ctx, none)
			return err
		}, "getrawchangeaddress", []any{}},
		{"GetRawMemPool", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetRawMemPool(ctx)
			return err
		}, "getrawmempool", []any{}},
		{"GetRawTransaction", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetRawTransaction(ctx, "aa")
			return err
		}, "getrawtransaction", []any{"aa"}},
		{"GetRawTransactionVerbose", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetRawTransactionVerbose(ctx, "aa")
			return err
		}, "getrawtransaction", []any{"aa", 1.0}},
		{"GetTransaction", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetTransaction(ctx, "aa")
			return err
		}, "gettransaction", []any{"aa"}},
		{"GetTxOut", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetTxOut(ctx, "aa", 2, noBool)
			return err
		}, "gettxout", []any{"aa", 2.0}},
		{"GetTxOut mempool", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetTxOut(ctx, "aa", 2, b(false))
			return err
		}, "gettxout", []any{"aa", 2.0, false}},
		{"GetTxOutSetInfo", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetTxOutSetInfo(ctx)
			return err
		}, "gettxoutsetinfo", []any{}},
		{"GetWork", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.GetWork(ctx)
			return err
		}, "getwork", []any{}},
		{"SubmitWork", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.SubmitWork(ctx, "data")
			return err
		}, "getwork", []any{"data"}},
		{"Help", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.Help(ctx, none)
			return err
		}, "help", []any{}},
		{"Help command", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.Help(ctx, s("getinfo"))
			return err
		}, "help", []any{"getinfo"}},
		{"ImportPrivateKey", func(ctx context.Context, c *xcoin.Client) error {
			return c.ImportPrivateKey(ctx, "key", none, noBool)
		}, "importprivkey", []any{"key"}},
		{"ImportPrivateKey label rescan", func(ctx context.Context, c *xcoin.Client) error {
			return c.ImportPrivateKey(ctx, "key", s("label"), b(false))
		}, "importprivkey", []any{"key", "label", false}},
		{"KeyPoolRefill", func(ctx context.Context, c *xcoin.Client) error {
			return c.KeyPoolRefill(ctx)
		}, "keypoolrefill", []any{}},
		{"ListAccounts", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.ListAccounts(ctx, i(0))
			return err
		}, "listaccounts", []any{0.0}},
		{"ListAddressGroupings", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.ListAddressGroupings(ctx)
			return err
		}, "listaddressgroupings", []any{}},
		{"ListReceivedByAccount", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.ListReceivedByAccount(ctx, i(1), b(true))
			return err
		}, "listreceivedbyaccount", []any{1.0, true}},
		{"ListReceivedByAddress", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.ListReceivedByAddress(ctx, noInt, noBool)
			return err
		}, "listreceivedbyaddress", []any{}},
		{"ListSinceBlock", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.ListSinceBlock(ctx, s("00ff"), noInt)
			return err
		}, "listsinceblock", []any{"00ff"}},
		{"ListTransactions", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.ListTransactions(ctx, s("*"), i(20), i(40))
			return err
		}, "listtransactions", []any{"*", 20.0, 40.0}},
		{"ListUnspent", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.ListUnspent(ctx, i(1), noInt)
			return err
		}, "listunspent", []any{1.0}},
		{"ListLockUnspent", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.ListLockUnspent(ctx)
			return err
		}, "listlockunspent", []any{}},
		{"LockUnspent", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.LockUnspent(ctx, true, xcoin.None[[]xcoin.OutPoint]())
			return err
		}, "lockunspent", []any{true}},
		{"LockUnspent outputs", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.LockUnspent(ctx, false, xcoin.Some([]xcoin.OutPoint{{TxID: "aa", Vout: 0}}))
			return err
		}, "lockunspent", []any{false, []any{map[string]any{"txid": "aa", "vout": 0.0}}}},
		{"Move", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.Move(ctx, "a", "b", amount, noInt, none)
			return err
		}, "move", []any{"a", "b", 1.5}},
		{"Move comment", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.Move(ctx, "a", "b", amount, i(1), s("rent"))
			return err
		}, "move", []any{"a", "b", 1.5, 1.0, "rent"}},
		{"SendFrom", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.SendFrom(ctx, "acc", "addr", amount, i(1), s("c"), s("to"))
			return err
		}, "sendfrom", []any{"acc", "addr", 1.5, 1.0, "c", "to"}},
		{"SendMany", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.SendMany(ctx, "acc", map[string]btcutil.Amount{"a1": amount, "a2": 1}, noInt, none)
			return err
		}, "sendmany", []any{"acc", map[string]any{"a1": 1.5, "a2": 1e-8}}},
		{"SendRawTransaction", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.SendRawTransaction(ctx, "0100")
			return err
		}, "sendrawtransaction", []any{"0100"}},
		{"SendToAddress comment", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.SendToAddress(ctx, "addr", amount, s("c"), none)
			return err
		}, "sendtoaddress", []any{"addr", 1.5, "c"}},
		{"SetAccount", func(ctx context.Context, c *xcoin.Client) error {
			return c.SetAccount(ctx, "addr", "acc")
		}, "setaccount", []any{"addr", "acc"}},
		{"SetGenerate", func(ctx context.Context, c *xcoin.Client) error {
			return c.SetGenerate(ctx, true, i(-1))
		}, "setgenerate", []any{true, -1.0}},
		{"SetTxFee", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.SetTxFee(ctx, btcutil.Amount(10_000))
			return err
		}, "settxfee", []any{0.0001}},
		{"SignMessage", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.SignMessage(ctx, "addr", "hello")
			return err
		}, "signmessage", []any{"addr", "hello"}},
		{"SignRawTransaction", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.SignRawTransaction(ctx, "0100", xcoin.None[[]xcoin.PrevTx](), xcoin.None[[]string]())
			return err
		}, "signrawtransaction", []any{"0100"}},
		{"Stop", func(ctx context.Context, c *xcoin.Client) error {
			return c.Stop(ctx)
		}, "stop", []any{}},
		{"SubmitBlock", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.SubmitBlock(ctx, "00", xcoin.None[xcoin.SubmitBlockOptions]())
			return err
		}, "submitblock", []any{"00"}},
		{"SubmitBlock options", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.SubmitBlock(ctx, "00", xcoin.Some(xcoin.SubmitBlockOptions{WorkID: "w"}))
			return err
		}, "submitblock", []any{"00", map[string]any{"workid": "w"}}},
		{"ValidateAddress", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.ValidateAddress(ctx, "addr")
			return err
		}, "validateaddress", []any{"addr"}},
		{"VerifyMessage", func(ctx context.Context, c *xcoin.Client) error {
			_, err := c.VerifyMessage(ctx, "addr", "sig", "hello")
			return err
		}, "verifymessage", []any{"addr", "sig", "hello"}},
		{"WalletLock", func(ctx context.Context, c *xcoin.Client) error {
			return c.WalletLock(ctx)
		}, "walletlock", []any{}},
		{"WalletPassPhrase", func(ctx context.Context, c *xcoin.Client) error {
			return c.WalletPassPhrase(ctx, "pass", 2*time.Minute)
		}, "walletpassphrase", []any{"pass", 120.0}},
		{"WalletPassPhraseChange", func(ctx context.Context, c *xcoin.Client) error {
			return c.WalletPassPhraseChange(ctx, "old", "new")
		}, "walletpassphrasechange", []any{"old", "new"}},
	}

	d := newFakeDaemon(t)
	c := d.client()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.call(context.Background(), c))
			req := d.last()
			assert.Equal(t, tc.method, req.Method)
			assert.Equal(t, tc.params, req.Params)
		})
	}
}

func TestTypedResults(t *testing.T) {
	d := newFakeDaemon(t)
	c := d.client()
	ctx := context.Background()

	d.respond("getblock", `{"hash":"00ff","confirmations":3,"height":100,"tx":["a","b"],"difficulty":1.5,"previousblockhash":"00fe"}`)
	block, err := c.GetBlock(ctx, "00ff")
	require.NoError(t, err)
	assert.Equal(t, int64(100), block.Height)
	assert.Equal(t, []string{"a", "b"}, block.Tx)
	assert.Equal(t, "00fe", block.PreviousBlockHash)

	d.respond("listaddressgroupings", `[[["addr1",0.5,"acc"],["addr2",1]]]`)
	groups, err := c.ListAddressGroupings(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, []xcoin.AddressBalance{
		{Address: "addr1", Amount: 0.5, Account: "acc"},
		{Address: "addr2", Amount: 1},
	}, groups[0])

	d.respond("listaccounts", `{"":0.1,"savings":2}`)
	accounts, err := c.ListAccounts(ctx, xcoin.None[int]())
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"": 0.1, "savings": 2}, accounts)

	d.respond("submitblock", `"rejected"`)
	reason, err := c.SubmitBlock(ctx, "00", xcoin.None[xcoin.SubmitBlockOptions]())
	require.NoError(t, err)
	assert.Equal(t, "rejected", reason)

	d.respond("getrawtransaction", `{"hex":"0100","txid":"aa","vout":[{"value":0.5,"n":0,"scriptPubKey":{"type":"pubkeyhash","addresses":["addr"]}}],"confirmations":2}`)
	info, err := c.GetRawTransactionVerbose(ctx, "aa")
	require.NoError(t, err)
	assert.Equal(t, "aa", info.TxID)
	assert.Equal(t, "0100", info.Hex)
	require.Len(t, info.Vout, 1)
	assert.Equal(t, []string{"addr"}, info.Vout[0].ScriptPubKey.Addresses)

	d.respond("listaddressgroupings", `[[["addr1"]]]`)
	_, err = c.ListAddressGroupings(ctx)
	assert.Error(t, err)
}

func TestWalletPassPhraseRoundsUpToSeconds(t *testing.T) {
	d := newFakeDaemon(t)
	c := d.client()

	for _, tc := range []struct {
		timeout time.Duration
		seconds float64
	}{
		{500 * time.Millisecond, 1},
		{1500 * time.Millisecond, 2},
		{time.Second, 1},
	} {
		require.NoError(t, c.WalletPassPhrase(context.Background(), "p", tc.timeout))
		assert.Equal(t, []any{"p", tc.seconds}, d.last().Params, tc.timeout.String())
	}
}
