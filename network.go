package xcoin

import (
	"context"
)

// AddNode operations.
const (
	AddNodeAdd    = "add"
	AddNodeRemove = "remove"
	AddNodeOneTry = "onetry"
)

// AddNode adds or removes node from the addnode list, or tries a connection
// to node once, depending on operation.
func (c *Client) AddNode(ctx context.Context, node, operation string) error {
	return c.callNoResult(ctx, AddNode, node, operation)
}

// AddedNodeAddress is a resolved address of an added node.
type AddedNodeAddress struct {
	Address   string `json:"address"`
	Connected string `json:"connected"`
}

// AddedNodeInfo as returned by getaddednodeinfo.
type AddedNodeInfo struct {
	AddedNode string             `json:"addednode"`
	Connected *bool              `json:"connected,omitempty"`
	Addresses []AddedNodeAddress `json:"addresses,omitempty"`
}

// GetAddedNodeInfo returns information about node, or all added nodes when
// node is absent. onetry nodes are not listed. When dns is false only the
// list of added nodes is returned, without connection information.
func (c *Client) GetAddedNodeInfo(ctx context.Context, dns bool, node Opt[string]) ([]AddedNodeInfo, error) {
	params := withOpt([]any{dns}, node)
	return CallResult[[]AddedNodeInfo](ctx, c, GetAddedNodeInfo, params...)
}

// GetConnectionCount returns the number of connections to other nodes.
func (c *Client) GetConnectionCount(ctx context.Context) (int64, error) {
	return CallResult[int64](ctx, c, GetConnectionCount)
}

// PeerInfo describes a connected node.
type PeerInfo struct {
	Addr           string  `json:"addr"`
	AddrLocal      string  `json:"addrlocal,omitempty"`
	Services       string  `json:"services"`
	LastSend       int64   `json:"lastsend"`
	LastRecv       int64   `json:"lastrecv"`
	BytesSent      uint64  `json:"bytessent"`
	BytesRecv      uint64  `json:"bytesrecv"`
	ConnTime       int64   `json:"conntime"`
	PingTime       float64 `json:"pingtime"`
	Version        int32   `json:"version"`
	SubVer         string  `json:"subver"`
	Inbound        bool    `json:"inbound"`
	StartingHeight int64   `json:"startingheight"`
	BanScore       int32   `json:"banscore"`
	SyncNode       bool    `json:"syncnode"`
}

func (c *Client) GetPeerInfo(ctx context.Context) ([]PeerInfo, error) {
	return CallResult[[]PeerInfo](ctx, c, GetPeerInfo)
}

// Info holds the state info returned by getinfo.
type Info struct {
	Version         int32   `json:"version"`
	ProtocolVersion int32   `json:"protocolversion"`
	WalletVersion   int32   `json:"walletversion"`
	Balance         float64 `json:"balance"`
	Blocks          int64   `json:"blocks"`
	TimeOffset      int64   `json:"timeoffset"`
	Connections     int32   `json:"connections"`
	Proxy           string  `json:"proxy"`
	Difficulty      float64 `json:"difficulty"`
	Testnet         bool    `json:"testnet"`
	KeyPoolOldest   int64   `json:"keypoololdest"`
	KeyPoolSize     int32   `json:"keypoolsize"`
	UnlockedUntil   int64   `json:"unlocked_until,omitempty"`
	PayTxFee        float64 `json:"paytxfee"`
	RelayFee        float64 `json:"relayfee"`
	Errors          string  `json:"errors"`
}

func (c *Client) GetInfo(ctx context.Context) (*Info, error) {
	return CallResult[*Info](ctx, c, GetInfo)
}

// Help lists commands, or gets help for command.
func (c *Client) Help(ctx context.Context, command Opt[string]) (string, error) {
	params := withOpt([]any{}, command)
	return CallResult[string](ctx, c, Help, params...)
}

// Stop stops the daemon.
func (c *Client) Stop(ctx context.Context) error {
	return c.callNoResult(ctx, Stop)
}
