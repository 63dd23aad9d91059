// Package gfa renders a FASTA record set as a GFA 1.0 document.
//
// Every record becomes a segment. The segments are chained in input order
// by one path and by links between neighbours. Links carry a 0M overlap:
// they state adjacency in the input, nothing about shared sequence.
//
// The package is format-only; it never imports cli, app or pipeline.
package gfa
