package ituring

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookDecode(t *testing.T) {
	data := `{
		"id": 42,
		"name": " Sample Name ",
		"publishDate": "2019-05-01T00:00:00",
		"presale": false,
		"canSalePaper": true,
		"supportPdf": true,
		"supportEpub": true,
		"supportMobi": false,
		"supportPushMobi": true,
		"encrypt": "xYz",
		"tupubBookId": 1234
	}`

	var b Book
	require.NoError(t, json.Unmarshal([]byte(data), &b))

	assert.Equal(t, 42, b.ID)
	assert.Equal(t, "2019-05-01", b.Published())
	assert.Equal(t, []Format{FormatPDF, FormatEPUB}, b.Formats())
	assert.Equal(t, []string{"paper", "pdf", "epub", "push-mobi"}, b.Flags())
	assert.Equal(t, PushBook, b.PushMode())
}

func TestBookPublished(t *testing.T) {
	short := "2020"
	assert.Equal(t, "", (&Book{}).Published())
	assert.Equal(t, "2020", (&Book{PublishDate: &short}).Published())
}

func TestBookFlagsOrder(t *testing.T) {
	b := Book{
		Presale:         true,
		CanSalePaper:    true,
		SupportPdf:      true,
		SupportEpub:     true,
		SupportMobi:     true,
		SupportPushMobi: true,
	}
	assert.Equal(t, []string{"pre-sale", "paper", "pdf", "epub", "mobi", "push-mobi"}, b.Flags())
	assert.Empty(t, (&Book{}).Flags())
}

func TestOptionalID(t *testing.T) {
	tests := []struct {
		raw     string
		want    OptionalID
		present bool
	}{
		{`null`, "", false},
		{`false`, "", false},
		{`true`, "true", true},
		{`0`, "", false},
		{`0.0`, "", false},
		{`-0`, "", false},
		{`""`, "", false},
		{`"0"`, "0", true},
		{`17`, "17", true},
		{`1.5`, "1.5", true},
		{`"abc"`, "abc", true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var v struct {
				ID OptionalID `json:"id"`
			}
			require.NoError(t, json.Unmarshal([]byte(`{"id":`+tt.raw+`}`), &v))
			assert.Equal(t, tt.want, v.ID)
			assert.Equal(t, tt.present, v.ID.Present())
		})
	}
}

func TestOptionalIDMissingField(t *testing.T) {
	var b Book
	require.NoError(t, json.Unmarshal([]byte(`{"id":1}`), &b))
	assert.Equal(t, PushMiniBook, b.PushMode())
}

func TestOptionalIDRejectsContainers(t *testing.T) {
	var v OptionalID
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &v))
	assert.Error(t, json.Unmarshal([]byte(`{"id":1}`), &v))
}

func TestBookPushModeFalsyTupubID(t *testing.T) {
	for _, raw := range []string{`false`, `0`, `0.0`, `""`, `null`} {
		var b Book
		require.NoError(t, json.Unmarshal([]byte(`{"id":3,"tupubBookId":`+raw+`}`), &b), raw)
		assert.Equal(t, PushMiniBook, b.PushMode(), raw)
	}
	var b Book
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"tupubBookId":"0"}`), &b))
	assert.Equal(t, PushBook, b.PushMode())
}

func TestFormatExt(t *testing.T) {
	assert.Equal(t, "pdf", FormatPDF.Ext())
	assert.Equal(t, "epub", FormatEPUB.Ext())
	assert.Equal(t, "mobi", FormatMOBI.Ext())
}
