package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"
)

// QueryParam is one query string key with zero or more values. A param
// without values is left out of the URL.
type QueryParam struct {
	Key    string
	Values []string
}

// Param builds a QueryParam, formatting each scalar value the way it
// appears on the wire.
func Param(key string, values ...any) QueryParam {
	p := QueryParam{Key: key, Values: make([]string, 0, len(values))}
	for _, v := range values {
		switch val := v.(type) {
		case nil:
			continue
		case string:
			p.Values = append(p.Values, val)
		case []byte:
			p.Values = append(p.Values, string(val))
		case int:
			p.Values = append(p.Values, strconv.Itoa(val))
		case int64:
			p.Values = append(p.Values, strconv.FormatInt(val, 10))
		case float64:
			p.Values = append(p.Values, strconv.FormatFloat(val, 'f', -1, 64))
		case bool:
			p.Values = append(p.Values, strconv.FormatBool(val))
		default:
			p.Values = append(p.Values, fmt.Sprint(val))
		}
	}
	return p
}

// File is a multipart attachment.
type File struct {
	// Field is the form field name.
	Field string
	// Filename is sent in the Content-Disposition header.
	Filename string
	// ContentType defaults to application/octet-stream.
	ContentType string
	// Content is the file body. It is held in memory so the request can be
	// replayed on retry.
	Content []byte
}

// FileFromReader reads r fully into a File.
func FileFromReader(field, filename string, r io.Reader) (File, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return File{}, fmt.Errorf("read file %q: %w", filename, err)
	}
	return File{Field: field, Filename: filename, Content: content}, nil
}

// Params holds the optional parts of a GET or DELETE call.
type Params struct {
	Query   []QueryParam
	Timeout time.Duration
}

// Request holds the optional parts of a call. When Files is set the JSON
// body is never sent and the multipart writer picks the Content-Type.
type Request struct {
	Query []QueryParam
	JSON  any
	Form  url.Values
	Files []File
	// Timeout overrides the client timeout for each attempt of this call.
	Timeout time.Duration
}

// encodedBody is a request body serialized once and replayed per attempt.
type encodedBody struct {
	data        []byte
	contentType string
}

func (b *encodedBody) reader() io.Reader {
	if b == nil {
		return nil
	}
	return bytes.NewReader(b.data)
}

// encodeBody serializes the request body. A nil result means no body.
func encodeBody(req Request) (*encodedBody, error) {
	switch {
	case len(req.Files) > 0:
		return encodeMultipart(req.Form, req.Files)
	case len(req.Form) > 0:
		return &encodedBody{
			data:        []byte(req.Form.Encode()),
			contentType: "application/x-www-form-urlencoded",
		}, nil
	case req.JSON != nil:
		data, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		return &encodedBody{data: data, contentType: "application/json"}, nil
	default:
		return nil, nil
	}
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func encodeMultipart(form url.Values, files []File) (*encodedBody, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, key := range slices.Sorted(maps.Keys(form)) {
		for _, v := range form[key] {
			if err := w.WriteField(key, v); err != nil {
				return nil, fmt.Errorf("write form field %q: %w", key, err)
			}
		}
	}

	for _, f := range files {
		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		filename := f.Filename
		if filename == "" {
			filename = f.Field
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(f.Field), quoteEscaper.Replace(filename)))
		h.Set("Content-Type", contentType)

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, fmt.Errorf("create multipart part %q: %w", f.Field, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, fmt.Errorf("write multipart part %q: %w", f.Field, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}
	return &encodedBody{data: buf.Bytes(), contentType: w.FormDataContentType()}, nil
}

// encodeQuery renders params in order. Unlike url.Values.Encode the keys are
// not sorted.
func encodeQuery(params []QueryParam) string {
	var sb strings.Builder
	for _, p := range params {
		for _, v := range p.Values {
			if sb.Len() > 0 {
				sb.WriteByte('&')
			}
			sb.WriteString(url.QueryEscape(p.Key))
			sb.WriteByte('=')
			sb.WriteString(url.QueryEscape(v))
		}
	}
	return sb.String()
}

// joinURL appends endpoint to base with exactly one separating slash. base
// must already have its trailing slashes removed.
func joinURL(base, endpoint string) string {
	return base + "/" + strings.TrimLeft(endpoint, "/")
}
