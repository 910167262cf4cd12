// Package stark implements the Stark-curve signing core used by the
// Extended exchange protocol.
//
// It composes the ecosystem primitives (the juno field element and the
// starknet.go curve/hash implementations) into the exchange's exact
// protocol rules:
//
//   - a field codec with the two hex renderings the protocol uses
//     (fixed-width for keys and signature components, minimal for
//     message digests)
//   - the Cairo short-string encoding for domain-separation tags
//   - the SHA-256 grinding key-derivation function that maps an
//     Ethereum signature onto a Stark private key
//   - a deterministic (RFC 6979) ECDSA signer over the Stark curve
//
// Every operation is a pure function of its inputs: no shared mutable
// state, no I/O, safe for concurrent use.
package stark
