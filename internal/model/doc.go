// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the validated domain representation of a knitting
// pattern. It sits between the syntax tree produced by the parser and the
// flat, stitch-by-stitch pattern built by the expander.
//
// # Core Concepts
//
//   - Stitch: A single stitch backed by an entry of the stitch table. It knows
//     how many stitches it consumes and produces and how it is drawn.
//
//   - Repeat: A group of instructions worked several times. The count is either
//     stated ("explicit") or left for the expander to infer from the stitches
//     available ("implicit").
//
//   - Row: A numbered, ordered list of instructions.
//
//   - Part: The cast-on count plus every row, numbered from 1.
//
// Every constructor enforces the invariants of its type, so a value that
// exists is valid. Failures are reported as *ValidationError.
package model
