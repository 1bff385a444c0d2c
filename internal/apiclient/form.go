package apiclient

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// Upload is a file picked in an admin form.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type formField struct {
	name  string
	value string
}

type formFile struct {
	name   string
	upload *Upload
}

// Form accumulates a multipart body. Fields keep insertion order and may
// repeat.
type Form struct {
	fields []formField
	files  []formFile
}

func NewForm() *Form {
	return &Form{}
}

// Set appends a single text field.
func (f *Form) Set(name, value string) *Form {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

// Add appends one field per value, producing a repeated field.
func (f *Form) Add(name string, values ...string) *Form {
	for _, v := range values {
		f.fields = append(f.fields, formField{name: name, value: v})
	}
	return f
}

// File attaches an upload. A nil upload is skipped so that an unchanged
// existing file is never resent.
func (f *Form) File(name string, upload *Upload) *Form {
	if upload == nil || len(upload.Data) == 0 {
		return f
	}
	f.files = append(f.files, formFile{name: name, upload: upload})
	return f
}

// Values returns every value recorded for name.
func (f *Form) Values(name string) []string {
	var out []string
	for _, field := range f.fields {
		if field.name == name {
			out = append(out, field.value)
		}
	}
	return out
}

// HasFile reports whether a file is attached under name.
func (f *Form) HasFile(name string) bool {
	for _, file := range f.files {
		if file.name == name {
			return true
		}
	}
	return false
}

// Encode writes the multipart body and returns it with its content type.
func (f *Form) Encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, field := range f.fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", field.name, err)
		}
	}
	for _, file := range f.files {
		part, err := w.CreatePart(fileHeader(file.name, file.upload))
		if err != nil {
			return nil, "", fmt.Errorf("create part %s: %w", file.name, err)
		}
		if _, err := part.Write(file.upload.Data); err != nil {
			return nil, "", fmt.Errorf("write part %s: %w", file.name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func fileHeader(field string, upload *Upload) textproto.MIMEHeader {
	h := make(textproto.MIMEHeader)
	filename := upload.Filename
	if filename == "" {
		filename = field
	}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(filename)))
	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)
	return h
}
