package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

type formField struct {
	name  string
	value string
}

type formFile struct {
	field string
	file  *entity.FileUpload
}

// MultipartBody is a multipart/form-data request body. Fields keep their insertion order.
type MultipartBody struct {
	fields []formField
	files  []formFile
}

// NewMultipartBody creates an empty form.
func NewMultipartBody() *MultipartBody {
	return &MultipartBody{}
}

// Field adds a text field.
func (b *MultipartBody) Field(name, value string) *MultipartBody {
	b.fields = append(b.fields, formField{name: name, value: value})

	return b
}

// File adds a file part. Empty files are skipped.
func (b *MultipartBody) File(field string, file *entity.FileUpload) *MultipartBody {
	if !file.IsEmpty() {
		b.files = append(b.files, formFile{field: field, file: file})
	}

	return b
}

// Encode writes the form and returns it with its boundary content type.
func (b *MultipartBody) Encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range b.fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", errors.Wrapf(err, "write field %s", f.name)
		}
	}

	for _, f := range b.files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(f.field), quoteEscaper.Replace(f.file.Filename)))
		contentType := f.file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", errors.Wrapf(err, "create part %s", f.field)
		}
		if _, err := part.Write(f.file.Data); err != nil {
			return nil, "", errors.Wrapf(err, "write part %s", f.field)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(err, "close multipart writer")
	}

	return &buf, w.FormDataContentType(), nil
}
