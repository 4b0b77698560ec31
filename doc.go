// Package weburl implements the WHATWG URL Standard: parsing, relative
// reference resolution, canonical serialization, and origin computation.
//
// A parsed Url holds a single canonical serialization string plus component
// offsets, so String is free and re-parsing a serialization always
// reproduces the same value. Hosts go through the full pipeline of
// percent-decoding, UTS #46 domain processing, and IP address parsing; the
// idna, punycode, and percent packages expose the individual stages.
package weburl
