// Package templates embeds the HTML pages so handlers do not depend on the
// working directory they are started from.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
