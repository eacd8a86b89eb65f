// Package fuzztests holds the fuzz targets for the lexer and parser. Every
// target checks the same guarantees as the unit tests: the token stream
// reproduces the input, the tree covers every token once, and no input
// makes the parser panic or stall.
//
//	go test ./internal/fuzz -fuzz=FuzzParseInvariants -fuzztime=60s
package fuzztests
