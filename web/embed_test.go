package web

import (
	"io/fs"
	"testing"
)

func TestStaticFS(t *testing.T) {
	for _, name := range []string{"static/app.js", "static/app.css"} {
		info, err := fs.Stat(StaticFS, name)
		if err != nil {
			t.Errorf("%s missing from embedded assets: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}
