package api

import (
	"context"
	"net/http"
)

// DownloadGrant is a signed playback/download URL with its lifetime in
// seconds.
type DownloadGrant struct {
	URL       string `json:"url" validate:"required"`
	ExpiresIn int    `json:"expiresIn" validate:"gt=0"`
}

// DownloadURL requests a fresh signed URL for a digital product.
func (c *Client) DownloadURL(ctx context.Context, productID string) (*DownloadGrant, error) {
	var grant DownloadGrant
	if err := c.do(ctx, http.MethodGet, "/products/"+productID+"/download", nil, &grant); err != nil {
		return nil, err
	}
	return &grant, nil
}
