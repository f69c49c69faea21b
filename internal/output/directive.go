package output

import (
	"fmt"
	"io"
	"path"
	"strings"
)

// Directive is one entry of an aria2c input file: a URL followed by
// tab-indented option lines.
type Directive struct {
	URL     string
	Headers []string
	Out     string
}

// WriteDirective writes d as a single block
func WriteDirective(w io.Writer, d Directive) error {
	lines := []string{d.URL}
	for _, h := range d.Headers {
		lines = append(lines, `header="`+h+`"`)
	}
	lines = append(lines, "out="+d.Out)

	_, err := io.WriteString(w, strings.Join(lines, "\n\t")+"\n")
	return err
}

// SanitizeName trims surrounding whitespace and drops path separators
func SanitizeName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), "/", "")
}

// DownloadPath builds "<dir>/[00042] Name.ext"
func DownloadPath(dir string, id int, name, ext string) string {
	return path.Join(dir, fmt.Sprintf("[%05d] %s.%s", id, SanitizeName(name), ext))
}
