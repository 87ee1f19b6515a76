// Package genesis derives the genesis configuration of a legacy module: the
// config fields collected from storage lines and extra genesis lines, and
// the build blocks that seed storage from that config.
//
// Derivation can fail: extra genesis config lines only accept `doc`
// attributes, and any other attribute rejects the whole definition.
package genesis
