package font

// Test fonts shared by the package tests. The Go fonts are bundled
// with golang.org/x/image, so no external assets are needed.

import "sync"

import "golang.org/x/image/font/gofont/goregular"
import "golang.org/x/image/font/gofont/gomono"

var testFontsOnce sync.Once
var testFontRegular *Source
var testFontMono *Source

func loadTestFonts() {
	testFontsOnce.Do(func() {
		var err error
		testFontRegular, err = Load(goregular.TTF)
		if err != nil { panic(err) }
		testFontMono, err = Load(gomono.TTF)
		if err != nil { panic(err) }
	})
}
