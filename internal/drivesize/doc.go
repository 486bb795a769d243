// Package drivesize computes per-directory size totals for a drive or directory.
//
// A Scanner lists the immediate children of a root path and hands every child
// directory to an Accumulator, which walks the subtree one directory at a time
// and sums the sizes of the regular files it finds. The resulting SizeReport is
// rendered by a Reporter, which picks a KB, MB or GB unit per directory and
// closes with a grand total and the elapsed run time.
//
// All filesystem access goes through an afero.Fs so the traversal can be
// exercised against in-memory trees.
package drivesize
