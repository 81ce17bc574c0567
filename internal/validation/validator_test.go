package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var linkFields = []Field{
	{Name: "title", Rules: []Rule{Required(), MaxLen(255)}},
	{Name: "url", Rules: []Rule{Required(), AbsoluteURL(), MaxLen(255)}},
	{Name: "description", Rules: []Rule{Required(), MaxLen(255)}},
}

func TestCheck_AllEmptyReportsEveryField(t *testing.T) {
	errs := New().Check(linkFields, map[string]string{})

	assert.Equal(t, []string{"description", "title", "url"}, errs.Fields())
	for _, field := range errs.Fields() {
		require.Len(t, errs[field], 1, field)
		assert.Equal(t, RequiredField, errs[field][0].Kind)
	}
	assert.Equal(t, "The url field is required.", errs.First("url"))
}

func TestCheck_WhitespaceCountsAsMissing(t *testing.T) {
	errs := New().Check(linkFields, map[string]string{
		"title":       "   ",
		"url":         "http://example.com",
		"description": "\t\n",
	})

	assert.Equal(t, []string{"description", "title"}, errs.Fields())
}

func TestCheck_RejectsURLsWithoutSchemeOrHost(t *testing.T) {
	v := New()
	for _, raw := range []string{"//invalid-url.com", "/invalid-url", "foo.com", "http:/nohost", "mailto:someone@example.com"} {
		t.Run(raw, func(t *testing.T) {
			errs := v.Check(linkFields, map[string]string{
				"title":       "Example Title",
				"url":         raw,
				"description": "Example Description",
			})
			assert.Equal(t, []string{"url"}, errs.Fields())
			assert.Equal(t, "The url format is invalid.", errs.First("url"))
		})
	}
}

func TestCheck_AcceptsAbsoluteURLs(t *testing.T) {
	v := New()
	for _, raw := range []string{"http://example.com", "https://example.com/a?b=c#d", "ftp://files.example.com/x"} {
		errs := v.Check(linkFields, map[string]string{
			"title":       "t",
			"url":         raw,
			"description": "d",
		})
		assert.Empty(t, errs, raw)
	}
}

func TestCheck_MaxLengthBoundary(t *testing.T) {
	v := New()
	at := func(n int) map[string]string {
		return map[string]string{
			"title":       strings.Repeat("a", n),
			"url":         "http://" + strings.Repeat("a", n-len("http://")),
			"description": strings.Repeat("a", n),
		}
	}

	assert.Empty(t, v.Check(linkFields, at(255)))

	errs := v.Check(linkFields, at(256))
	assert.Equal(t, "The title may not be greater than 255 characters.", errs.First("title"))
	assert.Equal(t, "The url may not be greater than 255 characters.", errs.First("url"))
	assert.Equal(t, "The description may not be greater than 255 characters.", errs.First("description"))
	assert.Equal(t, 255, errs["url"][0].Limit)
}

func TestCheck_LengthCountsCharacters(t *testing.T) {
	errs := New().Check(linkFields, map[string]string{
		"title":       strings.Repeat("é", 255),
		"url":         "http://example.com",
		"description": "d",
	})
	assert.Empty(t, errs)
}

func TestCheck_CollectsEveryRuleOfAField(t *testing.T) {
	errs := New().Check(linkFields, map[string]string{
		"title":       "t",
		"url":         strings.Repeat("x", 300),
		"description": "d",
	})

	require.Len(t, errs["url"], 2)
	assert.Equal(t, InvalidFormat, errs["url"][0].Kind)
	assert.Equal(t, MaxLength, errs["url"][1].Kind)
	assert.Equal(t, map[string][]string{
		"url": {"The url format is invalid.", "The url may not be greater than 255 characters."},
	}, errs.Messages())
}

func TestErrors_ErrorString(t *testing.T) {
	errs := Errors{}
	errs.Add(FieldError{Field: "url", Kind: InvalidFormat})
	errs.Add(FieldError{Field: "title", Kind: RequiredField})

	assert.Equal(t, "validation failed: The title field is required. The url format is invalid.", errs.Error())
	assert.False(t, errs.Has("description"))
	assert.Equal(t, "", errs.First("description"))
}
