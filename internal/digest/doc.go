// Package digest computes short content fingerprints for report inputs.
//
// A fingerprint is the first 10 bytes of the BLAKE2b-256 sum of the value's
// JSON encoding, hex encoded. Identical inputs always yield the same
// fingerprint, so two reports can be matched without comparing every field.
package digest
