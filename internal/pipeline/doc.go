// Package pipeline loads a FASTA file and writes its GFA encoding.
//
// It is synchronous and single-threaded: the whole input is read before
// the destination is created. Config.Threads and Config.MinMatchLength are
// carried for a future alignment stage and are not read here.
package pipeline
