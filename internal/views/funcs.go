package views

import (
	"bytes"
	"errors"
	"html/template"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cast"
	"github.com/yuin/goldmark"

	"github.com/example/tmrsite/internal/catalog"
	"github.com/example/tmrsite/internal/media"
)

// Funcs returns the template helpers. img resolves API image paths through
// the media resolver.
func Funcs(resolver *media.Resolver) template.FuncMap {
	return template.FuncMap{
		"img": resolver.Fix,
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, errors.New("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, errors.New("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"str": cast.ToString,
		"commas": func(v interface{}) string {
			return humanize.Comma(cast.ToInt64(v))
		},
		"ago": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return humanize.Time(t)
		},
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("02 Jan 2006 15:04")
		},
		"markdown": Markdown,
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
		"hasID": func(set catalog.IDSet, id int64) bool {
			return set.Has(id)
		},
		"initial": func(s string) string {
			s = strings.TrimSpace(s)
			if s == "" {
				return "?"
			}
			return strings.ToUpper(string([]rune(s)[:1]))
		},
		"or": func(values ...string) string {
			for _, v := range values {
				if strings.TrimSpace(v) != "" {
					return v
				}
			}
			return ""
		},
		"add": func(a, b int) int { return a + b },
	}
}

// Markdown renders CMS body text. Raw HTML in the source is dropped.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
