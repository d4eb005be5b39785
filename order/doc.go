// Package order ranks actors by their first appearance in the source video
// and synthesizes "which order did they appear in?" multiple-choice
// questions over quadruples.
//
// The canonical answer is the four display names sorted by first-appearance
// frame. The question body lists the same names in a deliberately different
// order, and the options are permutations of those names: the canonical one
// plus three randomly sampled incorrect permutations, deduplicated as
// formatted strings so duplicate display names can never smuggle the
// correct text in twice.
package order
