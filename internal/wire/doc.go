// Package wire implements the primitive layer of the Kafka v0 wire
// format: big-endian fixed-width integers, length-prefixed strings and
// byte arrays (with nullable variants using a -1 sentinel),
// count-prefixed arrays, and length-framed payloads decoded through a
// bounded reader.
//
// Every wire type implements Field. The load-bearing contract is that
// Size reports exactly the number of bytes Encode writes; outer frames
// are sized up front from Size, with no write-then-measure buffering.
// Decoding a frame consumes exactly the declared byte count or fails.
package wire
