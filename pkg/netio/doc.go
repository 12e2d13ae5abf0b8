// Package netio reads and writes rail networks as CSV file pairs.
//
// A network is persisted as two files: a station file and a track file.
// Both are plain CSV with a header row, so they can be edited by hand or
// produced by external tooling. See [WriteNetwork] and [ReadNetwork] for
// the exact columns.
package netio
