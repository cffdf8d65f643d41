// Package fstree models a directory tree reconstructed from a shell
// transcript of cd and ls commands.
//
// What:
//
//	A FileSystem stores directories and files as arena.Tree nodes. The root
//	directory "/" is always index 0 and a working directory cursor moves
//	through the tree with Cd and CdRoot. Sizes are aggregated on demand by
//	walking the subtree.
//
// Transcript format (one entry per line):
//
//	$ cd /          return to the root (must also be the first line)
//	$ cd ..         move to the parent directory
//	$ cd <name>     enter <name>, creating it if it was never listed
//	$ ls            no-op; following lines are the listing
//	dir <name>      a subdirectory of the working directory
//	<size> <name>   a file of <size> bytes
//
// Errors:
//
//	ErrAlreadyAtRoot      - "cd .." at the root.
//	ErrDirectoryNotFound  - "cd" to a name that is not a subdirectory.
//	ErrEntryExists        - Mkdir/Touch with a name already present.
//	ErrBadTranscript      - malformed transcript line.
//	ErrNothingToFree      - no directory is large enough to delete.
//
// Complexity:
//
//	DiskUsage is O(subtree). DirSizes is O(D*N) for D directories.
package fstree
