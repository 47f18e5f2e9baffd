package frontend

import (
	"embed"
	"io/fs"
	"net/http"
)

// DistFS contains the embedded web UI.
//
//go:embed all:dist
var DistFS embed.FS

// GetEmbeddedFileSystem returns an http.FileSystem for serving the embedded UI.
// The "dist" prefix is stripped from paths.
func GetEmbeddedFileSystem() (http.FileSystem, error) {
	distFS, err := fs.Sub(DistFS, "dist")
	if err != nil {
		return nil, err
	}

	return http.FS(distFS), nil
}
