// Package data embeds the application's locale message bundle. The
// teacher generates this file with vfsgen from a "gorsync_rel" build
// tag switch between http.Dir (dev) and a generated in-binary
// filesystem (release); go:embed replaces both with a single
// always-embedded tree, so there is no dev/release split to maintain.
package data

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed assets
var embedded embed.FS

var assetsFS, _ = fs.Sub(embedded, "assets")

// Assets contains project assets, exposed as an http.FileSystem so
// locale.mustParseMessageFile's data.Assets.Open(name) call keeps the
// teacher's access pattern unchanged.
var Assets http.FileSystem = http.FS(assetsFS)
