package bunny

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/wagner-austin/bunny/animation"
)

// ManifestName is the optional file mapping frame set names to directories.
const ManifestName = "frames.yaml"

//go:embed frames
var defaultFramesFS embed.FS

// DefaultFrames returns the built-in ASCII bunny.
func DefaultFrames() *animation.BunnyFrames {
	sub, err := fs.Sub(defaultFramesFS, "frames")
	if err != nil {
		panic(err)
	}
	frames, err := LoadFramesFS(sub)
	if err != nil {
		panic(err)
	}
	return frames
}

// LoadFrames loads frame sets from dir. See LoadFramesFS.
func LoadFrames(dir string) (*animation.BunnyFrames, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("bunny: load frames %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("bunny: load frames %s: not a directory", dir)
	}

	frames, err := LoadFramesFS(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("bunny: load frames %s: %w", dir, err)
	}
	return frames, nil
}

// LoadFramesFS loads frame sets from fsys.
// It is assumed that each set is located in its own subdirectory, named
// after the set in camel case ("walkToIdleLeft") or snake case
// ("walk_to_idle_left"), unless frames.yaml names another directory for it.
// Each *.txt file is one frame; frames are ordered by filename. A set with no
// directory is left empty.
func LoadFramesFS(fsys fs.FS) (*animation.BunnyFrames, error) {
	manifest, err := loadManifest(fsys)
	if err != nil {
		return nil, err
	}

	frames := &animation.BunnyFrames{}
	named := frames.Named()
	for name := range manifest {
		if _, ok := named[name]; !ok {
			return nil, fmt.Errorf("%s: unknown frame set %q", ManifestName, name)
		}
	}

	for name, set := range named {
		dir, ok := manifest[name]
		if !ok {
			dir = findSetDir(fsys, name)
		}
		if dir == "" {
			continue
		}

		if *set, err = loadSet(fsys, dir); err != nil {
			return nil, err
		}
	}
	return frames, nil
}

func loadManifest(fsys fs.FS) (map[string]string, error) {
	data, err := fs.ReadFile(fsys, ManifestName)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var manifest map[string]string
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", ManifestName, err)
	}
	for name, dir := range manifest {
		manifest[name] = path.Clean(dir)
	}
	return manifest, nil
}

func findSetDir(fsys fs.FS, name string) string {
	for _, dir := range []string{name, snakeCase(name)} {
		if info, err := fs.Stat(fsys, dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return ""
}

func loadSet(fsys fs.FS, dir string) ([]string, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.txt"))
	if err != nil {
		return nil, err
	}
	if files == nil {
		if _, err := fs.Stat(fsys, dir); err != nil {
			return nil, err
		}
	}
	sort.Strings(files)

	set := make([]string, 0, len(files))
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, err
		}
		frame := strings.TrimSuffix(string(data), "\n")
		frame = strings.TrimSuffix(frame, "\r")
		set = append(set, strings.ReplaceAll(frame, "\r\n", "\n"))
	}
	return set, nil
}

// snakeCase turns "walkToIdleLeft" into "walk_to_idle_left".
func snakeCase(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
