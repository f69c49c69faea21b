package ituring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// BookItem is one entry of a paged book list
type BookItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Pagination is the paging block of a list response
type Pagination struct {
	IsLastPage bool `json:"isLastPage"`
}

// Page is the envelope returned by the list endpoints
type Page struct {
	BookItems  []BookItem `json:"bookItems"`
	Pagination Pagination `json:"pagination"`
}

// Book is the detail record returned by Book/{id}
type Book struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	PublishDate     *string    `json:"publishDate"`
	Presale         bool       `json:"presale"`
	CanSalePaper    bool       `json:"canSalePaper"`
	SupportPdf      bool       `json:"supportPdf"`
	SupportEpub     bool       `json:"supportEpub"`
	SupportMobi     bool       `json:"supportMobi"`
	SupportPushMobi bool       `json:"supportPushMobi"`
	Encrypt         string     `json:"encrypt"`
	TupubBookID     OptionalID `json:"tupubBookId"`
}

// Format is an ebook file type as the file endpoint spells it
type Format string

const (
	FormatPDF  Format = "PDF"
	FormatEPUB Format = "EPUB"
	FormatMOBI Format = "MOBI"
)

// Ext returns the file extension without the dot
func (f Format) Ext() string {
	return strings.ToLower(string(f))
}

// Formats lists the downloadable formats in PDF, EPUB, MOBI order
func (b *Book) Formats() []Format {
	var formats []Format
	if b.SupportPdf {
		formats = append(formats, FormatPDF)
	}
	if b.SupportEpub {
		formats = append(formats, FormatEPUB)
	}
	if b.SupportMobi {
		formats = append(formats, FormatMOBI)
	}
	return formats
}

// Flags names the boolean features set on the book
func (b *Book) Flags() []string {
	var flags []string
	for _, f := range []struct {
		on   bool
		name string
	}{
		{b.Presale, "pre-sale"},
		{b.CanSalePaper, "paper"},
		{b.SupportPdf, "pdf"},
		{b.SupportEpub, "epub"},
		{b.SupportMobi, "mobi"},
		{b.SupportPushMobi, "push-mobi"},
	} {
		if f.on {
			flags = append(flags, f.name)
		}
	}
	return flags
}

// Published returns the date part of PublishDate, or "" when unset
func (b *Book) Published() string {
	if b.PublishDate == nil {
		return ""
	}
	date := *b.PublishDate
	if len(date) > 10 {
		date = date[:10]
	}
	return date
}

// PushMode selects the Kindle push endpoint
type PushMode string

const (
	PushBook     PushMode = "PushBook"
	PushMiniBook PushMode = "PushMiniBook"
)

// PushMode reports which push endpoint serves this book. Books with a
// tupub id are full books, the rest are mini books.
func (b *Book) PushMode() PushMode {
	if b.TupubBookID.Present() {
		return PushBook
	}
	return PushMiniBook
}

// OptionalID holds an id that the API sends as null, a bool, a number or a
// string. Falsy values (null, false, zero, "") decode to the empty id.
type OptionalID string

// UnmarshalJSON accepts null, booleans, numbers and strings
func (o *OptionalID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "null", "false":
		*o = ""
		return nil
	case "true":
		*o = "true"
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*o = OptionalID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("ituring: id must be a bool, number or string, got %s", data)
	}
	if f, err := strconv.ParseFloat(n.String(), 64); err == nil && f == 0 {
		*o = ""
		return nil
	}
	*o = OptionalID(n.String())
	return nil
}

// Present reports whether the id was set to a truthy value
func (o OptionalID) Present() bool {
	return o != ""
}
