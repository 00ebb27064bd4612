package timepicker

import (
	"embed"
	"io/fs"
)

//go:embed pkg/runtime/assets/*.js
var embeddedRuntimeAssets embed.FS

// RuntimeAssetsFS exposes the browser runtime that keeps the hidden input
// in sync with the rendered selects.
//
// Typical mount:
//
//	mux.Handle("/runtime/",
//	  http.StripPrefix("/runtime/",
//	    http.FileServerFS(timepicker.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedRuntimeAssets, "pkg/runtime/assets")
	if err != nil {
		return embeddedRuntimeAssets
	}
	return sub
}
