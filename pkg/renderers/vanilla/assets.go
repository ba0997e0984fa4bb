package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*.css
var embeddedAssets embed.FS

// TemplatesFS exposes the embedded chrome template bundle so callers
// can render with the defaults or fork them via WithTemplatesFS.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the renderer's baseline stylesheet so applications can
// serve it without copying files out of the module.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(vanilla.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}
