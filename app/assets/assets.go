package assets

import (
	"embed"
	"io/fs"
)

//go:embed *.ico *.png
var icons embed.FS

// Icons is the filesystem the accessors read from; swappable in tests.
var Icons fs.FS = icons

func ListIcons() ([]string, error) {
	return fs.Glob(Icons, "*")
}

func GetIcon(filename string) ([]byte, error) {
	return fs.ReadFile(Icons, filename)
}
