// Package bech32encoding is the byte payload face of the bech32 codec: it
// takes a human-readable prefix and raw bytes to a bech32m string and back.
//
// It also carries the helpers for Chia addresses, which are bech32m encoded
// 32 byte puzzle hashes under the xch (mainnet) or txch (testnet) prefix.
package bech32encoding
