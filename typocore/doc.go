// Package typocore classifies the difference between a user-entered
// compared text and a known accurate text at single-character granularity,
// producing an annotated sequence that labels each position correct,
// missing, extra, swapped, or misspell. It is the engine behind "find the
// typos" interactive drills.
//
// The public surface is deliberately small: Analyze composes the text
// former and the text editor into the one entry point most callers want;
// FormText and MakeUserFriendly expose the two halves separately for
// callers that need to inspect the pre-edit alignment; BatchAnalyze and
// Similarity are convenience wrappers for fanning out over many pairs and
// for cheaply pre-filtering pairs not worth analyzing at all.
package typocore
