package httpx

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl.html
var templatesFS embed.FS

// TemplateFS returns the embedded template filesystem rooted at the
// template directory.
func TemplateFS() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		// The embedded tree always contains templates/; reaching this is a build defect.
		panic(err)
	}
	return sub
}
