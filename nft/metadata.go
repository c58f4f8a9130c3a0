package nft

import (
	"errors"

	"github.com/tidwall/gjson"
)

// Metadata is the off-chain descriptor attached to a collection.
type Metadata struct {
	Name        string
	Symbol      string
	Description string
	Image       string
	ExternalURL string
}

var ErrBadMetadata = errors.New("nft: malformed metadata document")

// ParseMetadata extracts the collection descriptor from a metadata JSON
// document. Unknown fields are ignored; name and symbol are required.
func ParseMetadata(data []byte) (Metadata, error) {
	if !gjson.ValidBytes(data) {
		return Metadata{}, ErrBadMetadata
	}
	md := Metadata{
		Name:        gjson.GetBytes(data, "name").String(),
		Symbol:      gjson.GetBytes(data, "symbol").String(),
		Description: gjson.GetBytes(data, "description").String(),
		Image:       gjson.GetBytes(data, "image").String(),
		ExternalURL: gjson.GetBytes(data, "external_url").String(),
	}
	if md.Name == "" || md.Symbol == "" {
		return Metadata{}, ErrBadMetadata
	}
	return md, nil
}
