package api

import (
	"context"
	"net/http"
)

// CryptoHashMetadata identifies where the submitted transaction lives.
type CryptoHashMetadata struct {
	Network string `json:"network"`
	Chain   string `json:"chain"`
	Coin    string `json:"coin"`
}

type CryptoHashRequest struct {
	OrderID  string             `json:"orderId"`
	TxID     string             `json:"txid"`
	Metadata CryptoHashMetadata `json:"metadata"`
}

// SubmitCryptoHash hands a transaction id to the backend for asynchronous
// on-chain verification. Any 2xx means "submitted" — confirmation happens
// out of band.
func (c *Client) SubmitCryptoHash(ctx context.Context, req CryptoHashRequest) error {
	return c.do(ctx, http.MethodPost, "/payments/submit-crypto-hash-by-order", req, nil)
}
