// Package web holds the site shell served at / and its static assets.
package web

import (
	"embed"
	"io/fs"
	"os"
)

// IndexFile is the site shell every page load starts from.
const IndexFile = "index.html"

//go:embed static
var static embed.FS

// Embedded returns the assets compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// FS returns the site filesystem rooted at dir, or the embedded assets
// when dir is empty.
func FS(dir string) fs.FS {
	if dir == "" {
		return Embedded()
	}
	return os.DirFS(dir)
}
