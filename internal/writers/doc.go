// Package writers turns alignment hits into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV rows, pretty blocks,
//     JSON/JSONL/FASTA).
//   • Engine stays domain-only; Pipeline stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
