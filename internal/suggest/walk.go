package suggest

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/NikitaCOEUR/wsfind/internal/derrors"
)

// workspace is a matched descriptor file
type workspace struct {
	// path is the file as reached from root, e.g. root/a/b.code-workspace
	path string
	// subtitle is the path relative to root without its suffix, e.g. a/b
	subtitle string
	// title is the base name without its suffix, e.g. b
	title string
}

// walk visits every non-directory entry under root whose base name matches
// the pattern. Symbolic links to directories are reported as files and never
// followed.
func (e *Engine) walk(root string, visit func(workspace)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root || !e.skipUnreadable {
				return derrors.NewWalkError(path, err)
			}
			e.log.Warn().Str("path", path).Err(err).Msg("Skipping unreadable entry")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if path == root {
			return nil
		}

		if d.IsDir() {
			if _, skip := e.exclude[d.Name()]; skip {
				e.log.Debug().Str("path", path).Msg("Skipping excluded directory")
				return filepath.SkipDir
			}
			return nil
		}

		if ok, _ := filepath.Match(e.pattern, d.Name()); !ok {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return derrors.NewWalkError(path, err)
		}

		visit(workspace{
			path:     path,
			subtitle: filepath.Join(filepath.Dir(rel), stripSuffix(d.Name())),
			title:    stripSuffix(d.Name()),
		})
		return nil
	})
}

// stripSuffix removes the final extension of a file name. A leading dot does
// not start an extension and neither does a trailing one, so ".code-workspace"
// and "name." are returned unchanged.
func stripSuffix(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i > 0 && i < len(name)-1 {
		return name[:i]
	}
	return name
}
