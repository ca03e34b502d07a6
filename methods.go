package xcoin

// Methods, as named by the daemon. They are lower-cased on the wire.
const (
	AddMultiSignatureAddress    = "addMultiSigAddress"
	AddNode                     = "addNode"
	BackupWallet                = "backupWallet"
	CreateMultiSignatureAddress = "createMultiSig"
	CreateRawTransaction        = "createRawTransaction"
	DecodeRawTransaction        = "decodeRawTransaction"
	DumpPrivateKey              = "dumpPrivKey"
	EncryptWallet               = "encryptWallet"
	GetAccount                  = "getAccount"
	GetAccountAddress           = "getAccountAddress"
	GetAddedNodeInfo            = "getAddedNodeInfo"
	GetAddressesByAccount       = "getAddressesByAccount"
	GetBalance                  = "getBalance"
	GetBestBlockHash            = "getBestBlockHash"
	GetBlock                    = "getBlock"
	GetBlockCount               = "getBlockCount"
	GetBlockHash                = "getBlockHash"
	GetBlockTemplate            = "getBlockTemplate"
	GetConnectionCount          = "getConnectionCount"
	GetDifficulty               = "getDifficulty"
	GetGenerate                 = "getGenerate"
	GetHashesPerSec             = "getHashesPerSec"
	GetInfo                     = "getInfo"
	GetMiningInfo               = "getMiningInfo"
	GetNetworkHashPerSecond     = "getNetworkHashPs"
	GetNewAddress               = "getNewAddress"
	GetPeerInfo                 = "getPeerInfo"
	GetRawChangeAddress         = "getRawChangeAddress"
	GetRawMemPool               = "getRawMemPool"
	GetRawTransaction           = "getRawTransaction"
	GetTransaction              = "getTransaction"
	GetTxOut                    = "getTxOut"
	GetTxOutSetInfo             = "getTxOutSetInfo"
	GetWork                     = "getWork"
	Help                        = "help"
	ImportPrivateKey            = "importPrivKey"
	KeyPoolRefill               = "keyPoolRefill"
	ListAccounts                = "listAccounts"
	ListAddressGroupings        = "listAddressGroupings"
	ListLockUnspent             = "listLockUnspent"
	ListReceivedByAccount       = "listReceivedByAccount"
	ListReceivedByAddress       = "listReceivedByAddress"
	ListSinceBlock              = "listSinceBlock"
	ListTransactions            = "listTransactions"
	ListUnspent                 = "listUnspent"
	LockUnspent                 = "lockUnspent"
	Move                        = "move"
	SendFrom                    = "sendFrom"
	SendMany                    = "sendMany"
	SendRawTransaction          = "sendRawTransaction"
	SendToAddress               = "sendToAddress"
	SetAccount                  = "setAccount"
	SetGenerate                 = "setGenerate"
	SetTxFee                    = "setTxFee"
	SignMessage                 = "signMessage"
	SignRawTransaction          = "signRawTransaction"
	Stop                        = "stop"
	SubmitBlock                 = "submitBlock"
	ValidateAddress             = "validateAddress"
	VerifyMessage               = "verifyMessage"
	WalletLock                  = "walletLock"
	WalletPassPhrase            = "walletPassPhrase"
	WalletPassPhraseChange      = "walletPassPhraseChange"
)
