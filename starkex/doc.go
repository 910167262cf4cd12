// Package starkex builds the canonical, domain-separated message hashes
// the Extended exchange settlement layer signs: orders, transfers, and
// withdrawals.
//
// Each message kind is a flat record hashed as a selector-prefixed
// Poseidon sequence, then combined with the SNIP-12 style domain hash and
// the signer's public key into the final digest:
//
//	Poseidon("StarkNet Message", domainHash, publicKey, structHash)
//
// Digests are rendered in minimal hex (no fixed-width padding) — the form
// the reference implementation emits for message hashes. All inputs are
// validated eagerly; no partial hash is ever returned.
package starkex
