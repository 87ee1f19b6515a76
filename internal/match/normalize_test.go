package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"blake2_128_concat", "blake2128concat"},
		{"Blake2_128Concat", "blake2128concat"},
		{"twox_64_concat", "twox64concat"},
		{"Twox64Concat", "twox64concat"},
		{"Identity", "identity"},
		{"XMLParser", "xmlparser"},
		{"order-id", "orderid"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"TotalIssuance", "total_issuance"},
		{"NextAssetID", "next_asset_id"},
		{"XMLParser", "xml_parser"},
		{"accountNonce", "account_nonce"},
		{"already_snake", "already_snake"},
		{"Count", "count"},
		{"ID", "id"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SnakeCase(tt.input))
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	assert.Equal(t, []string{"get", "http", "response"}, TokenizeIdent("getHTTPResponse"))
	assert.Equal(t, []string{"twox", "64", "concat"}, TokenizeIdent("twox_64_concat"))
	assert.Nil(t, TokenizeIdent(""))
}
