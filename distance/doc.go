// Package distance ranks the objects around a primary object by oracle
// distance and synthesizes "which is closest?" multiple-choice questions.
//
// Only actors whose semantic type is unique in the scene qualify as
// primaries, so the question subject is never itself ambiguous. Around each
// primary, near-identical objects of one type are collapsed to their
// closest representative before ranking; the four closest types form the
// option pool and the closest is the correct answer. A primary whose two
// nearest representatives are closer together than the scene's ambiguity
// threshold is skipped entirely — only the top-2 gap is checked.
package distance
