// Package engine contains the local alignment core (Smith-Waterman with a
// linear match/mismatch/indel scheme). It never imports app, writers, cli,
// output, store or pipeline; keep it domain-only.
//
// External outputs must not depend on the internal shape here; use pkg/api
// for stable wire types (JSON/JSONL v1).
package engine
