package fstree

import (
	"errors"
	"fmt"
	"strings"

	logging "github.com/op/go-logging"

	"github.com/aoc-go/aocutils/arena"
)

var log = logging.MustGetLogger("fstree")

// Sentinel errors for filesystem operations.
var (
	// ErrAlreadyAtRoot indicates "cd .." from the root directory.
	ErrAlreadyAtRoot = errors.New("fstree: already at root")

	// ErrDirectoryNotFound indicates a cd target that is missing or is a file.
	ErrDirectoryNotFound = errors.New("fstree: directory not found")

	// ErrEntryExists indicates Mkdir or Touch with a name already in use.
	ErrEntryExists = errors.New("fstree: entry already exists")

	// ErrNothingToFree indicates no directory is large enough to delete.
	ErrNothingToFree = errors.New("fstree: no directory frees enough space")
)

// rootIdx is the arena index of "/".
const rootIdx = 0

// Entry is a directory or a file. Size is zero for directories; their
// usage is derived from their contents.
type Entry struct {
	Name string
	Size int64
	Dir  bool
}

// FileSystem is a directory tree with a working directory cursor.
// It is not safe for concurrent use.
type FileSystem struct {
	tree *arena.Tree[Entry]
	cwd  int
}

// New returns a FileSystem holding only the root directory.
func New() *FileSystem {
	tree := arena.New[Entry]()
	tree.AddNode(Entry{Name: "/", Dir: true})

	return &FileSystem{tree: tree, cwd: rootIdx}
}

func (fs *FileSystem) node(idx int) *arena.Node[Entry] {
	n, err := fs.tree.Node(idx)
	if err != nil {
		// indices come from the tree itself
		panic(err)
	}
	return n
}

func (fs *FileSystem) child(name string) (int, bool) {
	idx, err := fs.tree.FindChild(fs.cwd, func(e Entry) bool { return e.Name == name })
	return idx, err == nil
}

// Exists reports whether the working directory holds an entry called name.
func (fs *FileSystem) Exists(name string) bool {
	_, ok := fs.child(name)
	return ok
}

func (fs *FileSystem) add(e Entry) error {
	if fs.Exists(e.Name) {
		return fmt.Errorf("%w: %s in %s", ErrEntryExists, e.Name, fs.Cwd())
	}
	if _, err := fs.tree.AddChildNode(fs.cwd, e); err != nil {
		return err
	}

	return nil
}

// Mkdir creates an empty subdirectory of the working directory.
func (fs *FileSystem) Mkdir(name string) error {
	return fs.add(Entry{Name: name, Dir: true})
}

// Touch creates a file of the given size in the working directory.
func (fs *FileSystem) Touch(name string, size int64) error {
	return fs.add(Entry{Name: name, Size: size})
}

// Cd changes the working directory to the subdirectory name, or to the
// parent for "..".
func (fs *FileSystem) Cd(name string) error {
	if name == ".." {
		parent, ok := fs.node(fs.cwd).Parent()
		if !ok {
			return ErrAlreadyAtRoot
		}
		fs.cwd = parent
		return nil
	}
	idx, ok := fs.child(name)
	if !ok || !fs.node(idx).Value.Dir {
		return fmt.Errorf("%w: %s in %s", ErrDirectoryNotFound, name, fs.Cwd())
	}
	fs.cwd = idx

	return nil
}

// CdRoot moves the working directory to "/".
func (fs *FileSystem) CdRoot() { fs.cwd = rootIdx }

// Cwd returns the absolute path of the working directory.
func (fs *FileSystem) Cwd() string {
	if fs.cwd == rootIdx {
		return "/"
	}
	chain, _ := fs.tree.Ancestors(fs.cwd)
	parts := make([]string, 0, len(chain)+1)
	// chain ends at the root, whose name is the leading separator
	for i := len(chain) - 2; i >= 0; i-- {
		parts = append(parts, fs.node(chain[i]).Value.Name)
	}
	parts = append(parts, fs.node(fs.cwd).Value.Name)

	return "/" + strings.Join(parts, "/")
}

// Len returns the number of entries including the root.
func (fs *FileSystem) Len() int { return fs.tree.Len() }

func (fs *FileSystem) usage(idx int) int64 {
	var total int64
	_ = fs.tree.Walk(idx, func(n *arena.Node[Entry], _ int) error {
		total += n.Value.Size
		return nil
	})

	return total
}

// DiskUsage returns the total size of all files under the working directory.
func (fs *FileSystem) DiskUsage() int64 { return fs.usage(fs.cwd) }

// DirSizes returns the disk usage of every directory in creation order,
// starting with the root.
func (fs *FileSystem) DirSizes() []int64 {
	var sizes []int64
	for idx := 0; idx < fs.tree.Len(); idx++ {
		if fs.node(idx).Value.Dir {
			sizes = append(sizes, fs.usage(idx))
		}
	}

	return sizes
}

// SumSmallDirs sums the usage of every directory strictly below limit.
// Nested directories are counted once for each ancestor that qualifies.
func (fs *FileSystem) SumSmallDirs(limit int64) int64 {
	var sum int64
	for _, s := range fs.DirSizes() {
		if s < limit {
			sum += s
		}
	}

	return sum
}

// SmallestDirToFree returns the usage of the smallest directory whose
// deletion would leave at least need bytes free on a disk of total bytes.
func (fs *FileSystem) SmallestDirToFree(total, need int64) (int64, error) {
	required := need - (total - fs.usage(rootIdx))
	best, found := int64(0), false
	for _, s := range fs.DirSizes() {
		if s > required && (!found || s < best) {
			best, found = s, true
		}
	}
	if !found {
		return 0, fmt.Errorf("%w: need %d more bytes", ErrNothingToFree, required)
	}

	return best, nil
}
