package chain

// AccountInfo describes the on-chain state of a Graviton account.
type AccountInfo struct {
	Address  string `json:"address" yaml:"address"`
	Balance  uint64 `json:"balance" yaml:"balance"`
	Denom    string `json:"denom" yaml:"denom"`
	Sequence uint64 `json:"sequence" yaml:"sequence"`
	Nonce    uint64 `json:"nonce" yaml:"nonce"`
}

// Transfer is the payload signed and broadcast by SendTokens.
type Transfer struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Amount   uint64 `json:"amount"`
	Denom    string `json:"denom"`
	GasLimit uint64 `json:"gas_limit"`
	Sequence uint64 `json:"sequence"`
}

// SignedTx wraps a transfer with its signature material.
type SignedTx struct {
	Transfer  Transfer `json:"transfer"`
	PubKey    string   `json:"pub_key"`   // hex, compressed secp256k1
	Signature string   `json:"signature"` // hex, compact ECDSA
}

// BroadcastResult reports the node's answer to a broadcast.
type BroadcastResult struct {
	TxHash string `json:"tx_hash" yaml:"tx_hash"`
	Code   int    `json:"code" yaml:"code"`
	Log    string `json:"log,omitempty" yaml:"log,omitempty"`
}
