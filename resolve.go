package uitext

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
)

// SourceKind identifies which resolver strategy supplied the font data.
type SourceKind int

const (
	// SourceRequested means the originally requested path supplied the data.
	SourceRequested SourceKind = iota
	// SourceDevTree means a development-tree fallback path supplied the data.
	SourceDevTree
	// SourceSystem means an OS system font supplied the data.
	SourceSystem
)

// FontLoadResult carries the resolved font bytes and the identity of the
// source that actually supplied them. Consumers use Fallback to decide
// whether the requested nominal size can be trusted.
type FontLoadResult struct {
	Data   []byte
	Source string
	Kind   SourceKind
}

// Fallback reports whether the data came from somewhere other than the
// requested path.
func (r *FontLoadResult) Fallback() bool { return r.Kind != SourceRequested }

// fontCandidate is one entry in the ordered resolution chain.
type fontCandidate struct {
	path string
	kind SourceKind
}

// Resolver locates font data through an ordered candidate chain: the
// requested path, a short list of development-tree paths, then OS-specific
// system fonts. Every candidate is tried as a filesystem path first and as
// a resource-FS path second.
type Resolver struct {
	resourceFS  fs.FS
	systemPaths []string // nil means per-OS defaults
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithResourceFS supplies the embedded resource filesystem (typically a
// go:embed FS) consulted after the real filesystem for every candidate.
func WithResourceFS(fsys fs.FS) ResolverOption {
	return func(r *Resolver) { r.resourceFS = fsys }
}

// WithSystemFontPaths overrides the per-OS system font candidate list.
// An empty (non-nil) slice disables system font fallback entirely.
func WithSystemFontPaths(paths []string) ResolverOption {
	return func(r *Resolver) { r.systemPaths = paths }
}

// NewResolver creates a font resolver.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve walks the candidate chain and returns the first font that loads,
// together with the source that supplied it. Returns ErrFontNotFound when
// every candidate fails.
func (r *Resolver) Resolve(requested string) (*FontLoadResult, error) {
	for _, c := range r.candidates(requested) {
		data, ok := r.attempt(c.path)
		if !ok {
			continue
		}
		if c.kind != SourceRequested {
			logger.Info("loaded fallback font", "requested", requested, "source", c.path)
		} else {
			logger.Debug("loaded font", "source", c.path)
		}
		return &FontLoadResult{Data: data, Source: c.path, Kind: c.kind}, nil
	}
	return nil, fmt.Errorf("%w: %q and all fallbacks exhausted", ErrFontNotFound, requested)
}

// candidates builds the ordered chain for one resolution.
func (r *Resolver) candidates(requested string) []fontCandidate {
	cands := make([]fontCandidate, 0, 8)
	if requested != "" {
		cands = append(cands, fontCandidate{requested, SourceRequested})
	}
	cands = append(cands,
		fontCandidate{"assets/fonts/default.ttf", SourceDevTree},
		fontCandidate{"fonts/default.ttf", SourceDevTree},
	)
	sys := r.systemPaths
	if sys == nil {
		sys = systemFontPaths()
	}
	for _, p := range sys {
		cands = append(cands, fontCandidate{p, SourceSystem})
	}
	return cands
}

// attempt tries one candidate path: first as a regular file on the real
// filesystem, then against the resource FS with the path normalized to the
// fs.FS form (forward slashes, no leading separator).
func (r *Resolver) attempt(p string) ([]byte, bool) {
	if p == "" {
		return nil, false
	}
	if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
		if data, err := os.ReadFile(p); err == nil {
			return data, true
		}
	}
	if r.resourceFS != nil {
		rp := strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(p)), "/")
		if data, err := fs.ReadFile(r.resourceFS, rp); err == nil {
			return data, true
		}
	}
	return nil, false
}

// systemFontPaths returns the per-OS fallback font list.
func systemFontPaths() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			`C:\Windows\Fonts\segoeui.ttf`,
			`C:\Windows\Fonts\arial.ttf`,
		}
	case "darwin":
		return []string{
			"/System/Library/Fonts/SFNS.ttf",
			"/Library/Fonts/Arial.ttf",
		}
	default:
		return []string{
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
		}
	}
}
