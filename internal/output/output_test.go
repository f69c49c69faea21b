package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	c, err := NewCSV(&buf, "id", "name", "kind")
	require.NoError(t, err)
	assert.Equal(t, "id,name,kind\r\n", buf.String())

	require.NoError(t, c.Row("00001", "Go, the book", "shelf"))
	assert.Equal(t, "id,name,kind\r\n00001,\"Go, the book\",shelf\r\n", buf.String())
}

func TestWriteDirective(t *testing.T) {
	var buf bytes.Buffer
	err := WriteDirective(&buf, Directive{
		URL:     "http://files/ebook/abc?type=PDF",
		Headers: []string{"Authorization: Bearer tok", "Referer: http://www/book/42"},
		Out:     "ebooks/[00042] Sample Name.pdf",
	})
	require.NoError(t, err)

	want := "http://files/ebook/abc?type=PDF\n" +
		"\theader=\"Authorization: Bearer tok\"\n" +
		"\theader=\"Referer: http://www/book/42\"\n" +
		"\tout=ebooks/[00042] Sample Name.pdf\n"
	assert.Equal(t, want, buf.String())
}

func TestDownloadPath(t *testing.T) {
	tests := []struct {
		name string
		id   int
		book string
		ext  string
		want string
	}{
		{"padded", 42, " Sample Name ", "pdf", "ebooks/[00042] Sample Name.pdf"},
		{"slashes removed", 7, "A/B Testing", "epub", "ebooks/[00007] AB Testing.epub"},
		{"wide id", 123456, "Big", "mobi", "ebooks/[123456] Big.mobi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DownloadPath("ebooks", tt.id, tt.book, tt.ext))
		})
	}
}

func TestShellLine(t *testing.T) {
	assert.Equal(t, "echo", ShellLine("echo"))
	assert.Equal(t, "echo '00042 Push book'", ShellLine("echo", "00042 Push book"))
	assert.Equal(t,
		"curl -H 'Authorization: Bearer tok' http://www.ituring.com.cn/api/Kindle/PushBook/42",
		ShellLine("curl", "-H", "Authorization: Bearer tok", "http://www.ituring.com.cn/api/Kindle/PushBook/42"))
}

func TestWriteShell(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteShell(&buf, []string{"echo", "hi there"}, []string{"echo"}))
	assert.Equal(t, "echo 'hi there'\necho\n", buf.String())
}
