// Package articles builds the section → articles document served at
// /articles from a two-level directory tree.
package articles

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/macarona-salsa/wawa-news/internal/logger"
)

// Article is a single article file.
type Article struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Set maps section names to their articles in directory order. It encodes
// to and decodes from a JSON object without losing key order.
type Set = orderedmap.OrderedMap[string, []Article]

// NewSet returns an empty Set.
func NewSet() *Set {
	return orderedmap.New[string, []Article]()
}

// Options controls Encode.
type Options struct {
	// Exclude holds doublestar patterns matched against "section/file"
	// paths and bare entry names. Matching entries are skipped silently.
	Exclude []string
	Logger  *slog.Logger
}

// Encode walks root and returns every readable article grouped by section.
// Only a failure to read root itself is returned as an error; unreadable
// sections and files are logged and skipped.
func Encode(ctx context.Context, root string, opts Options) (*Set, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	sections, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("couldn't open articles directory: %w", err)
	}

	set := NewSet()
	for _, sd := range sections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := sd.Name()
		sectionPath := filepath.Join(root, name)
		if excluded(name, opts.Exclude) {
			continue
		}
		if !sd.IsDir() {
			log.Log(ctx, logger.LevelLog, fmt.Sprintf("%s is not a directory, moving to the next one", sectionPath))
			continue
		}

		entries, err := os.ReadDir(sectionPath)
		if err != nil {
			log.Error(fmt.Sprintf("couldn't read section directory %q, moving to the next one", sectionPath), "err", err)
			continue
		}

		list := make([]Article, 0, len(entries))
		for _, ad := range entries {
			filename := ad.Name()
			articlePath := filepath.Join(sectionPath, filename)
			if excluded(name+"/"+filename, opts.Exclude) {
				continue
			}
			if !ad.Type().IsRegular() {
				log.Log(ctx, logger.LevelLog, fmt.Sprintf("%s is not a file, moving to the next one", articlePath))
				continue
			}

			content, err := readArticle(articlePath)
			if err != nil {
				log.Error(fmt.Sprintf("couldn't read article file %q, moving to the next one", articlePath), "err", err)
				continue
			}
			list = append(list, Article{Title: Title(filename), Content: content})
		}
		set.Set(name, list)
	}
	return set, nil
}

func readArticle(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), "�"), nil
}

// Title derives an article title from its filename by dropping the last
// extension. Names with nothing before or after the final dot are kept.
func Title(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i <= 0 || i == len(filename)-1 {
		return filename
	}
	return filename[:i]
}

// excluded reports whether rel or its last element matches a pattern.
func excluded(rel string, patterns []string) bool {
	base := filepath.Base(rel)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}
