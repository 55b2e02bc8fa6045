// Package hopfield is a content-addressable associative-memory engine: it
// trains a symmetric Hebbian coupling matrix on a set of bipolar reference
// patterns and recovers a stored pattern from a corrupted query by running
// deterministic, synchronous sign dynamics to a fixed point.
//
// 🚀 What is hopfield?
//
//	A small, dependency-lean library plus three pipeline stages:
//		• Pattern: bipolar vectors and their corruption primitives (noise, cut)
//		• PackedSymMatrix: packed symmetric coupling matrix, Hebbian fill
//		• Dynamics: local field, sign rule, energy, synchronous update, cycles
//		• Training: patterns/ → weight_matrix/
//		• Recall: weight_matrix/ + patterns/ → corrupted_files/ → recovered state
//
// ✨ Design goals
//
//   - Deterministic core: Hebbian fill and sign dynamics never depend on
//     wall-clock time, goroutine scheduling, or hidden global state.
//   - Packed storage: the coupling matrix is symmetric with a null diagonal,
//     so only the strict upper triangle is ever stored.
//   - Explicit directories: every persistence call takes its directory as
//     an argument; no package-level working directory is kept.
//
// Under the hood:
//
//	pattern/         — bipolar vector type, corruption, plain-text persistence
//	packedmatrix/    — packed symmetric matrix, Hebbian construction
//	dynamics/        — pure functions: local field, sign, energy, step
//	imaging/         — image↔pattern adaptor (binarize, render) — not core
//	training/        — patterns directory → weight_matrix.txt orchestration
//	recall/          — corrupt → iterate-to-fixed-point → save orchestration
//	internal/grid    — row-major luminance buffer used by imaging
//	internal/fsio    — shared directory/tokenizer helpers for persistence
//	internal/runlog  — ambient sqlite run catalog (diagnostic only)
//	internal/sysstats — ambient CPU/memory snapshot (diagnostic only)
//	internal/convview — ambient terminal live-view of recall convergence
//	cmd/acquisition, cmd/training, cmd/recall — the three entry points
//
//	go get github.com/katalvlaran/hopfield
package hopfield
