package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/casing"
)

// File a binary field value, e.g. an uploaded photo
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// Payload a request body. The set of implementations is closed:
// JSONPayload, MultipartPayload and RawMultipart.
type Payload interface {
	encode() (body io.Reader, contentType string, err error)
}

// JSONPayload a metadata-only body. Keys are snake_cased recursively on the wire.
type JSONPayload struct {
	Value any
}

// MultipartPayload a body carrying at least one file. Field keys are snake_cased,
// non-file values are stringified, nil values are omitted.
type MultipartPayload struct {
	Fields map[string]any
	Files  map[string]*File
}

// RawMultipart a multipart body built by the caller; sent unchanged.
type RawMultipart struct {
	Body        []byte
	ContentType string
}

// Inspect picks the payload kind for a camelCase field map: any *File value
// promotes the whole body to multipart, otherwise it is JSON.
func Inspect(fields map[string]any) Payload {
	var files map[string]*File
	plain := make(map[string]any, len(fields))
	for k, v := range fields {
		switch f := v.(type) {
		case *File:
			if f == nil {
				continue
			}
			if files == nil {
				files = make(map[string]*File)
			}
			files[k] = f
		case File:
			if files == nil {
				files = make(map[string]*File)
			}
			fc := f
			files[k] = &fc
		default:
			plain[k] = v
		}
	}
	if len(files) == 0 {
		return JSONPayload{Value: fields}
	}
	return MultipartPayload{Fields: plain, Files: files}
}

// Fields flattens a struct (or any JSON-encodable value) into its camelCase field map.
// Numbers are kept as json.Number so they stringify without float formatting.
func Fields(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode fields: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("fields of %T: %w", v, err)
	}
	return out, nil
}

func (p JSONPayload) encode() (io.Reader, string, error) {
	raw, err := json.Marshal(p.Value)
	if err != nil {
		return nil, "", fmt.Errorf("encode json body: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, "", fmt.Errorf("encode json body: %w", err)
	}
	out, err := json.Marshal(casing.SnakeKeys(generic))
	if err != nil {
		return nil, "", fmt.Errorf("encode json body: %w", err)
	}
	return bytes.NewReader(out), "application/json", nil
}

func (p MultipartPayload) encode() (io.Reader, string, error) {
	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)

	keys := make([]string, 0, len(p.Fields))
	for k := range p.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := p.Fields[k]
		if v == nil {
			continue
		}
		s, err := stringify(v)
		if err != nil {
			return nil, "", fmt.Errorf("field %s: %w", k, err)
		}
		if err := w.WriteField(casing.ToSnake(k), s); err != nil {
			return nil, "", err
		}
	}

	fileKeys := make([]string, 0, len(p.Files))
	for k := range p.Files {
		fileKeys = append(fileKeys, k)
	}
	sort.Strings(fileKeys)

	for _, k := range fileKeys {
		f := p.Files[k]
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			escapeQuotes(casing.ToSnake(k)), escapeQuotes(f.Name)))
		ct := f.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

func (p RawMultipart) encode() (io.Reader, string, error) {
	return bytes.NewReader(p.Body), p.ContentType, nil
}

func stringify(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case time.Time:
		return t.Format(time.RFC3339), nil
	case fmt.Stringer:
		return t.String(), nil
	case map[string]any, []any:
		raw, err := json.Marshal(casing.SnakeKeys(t))
		if err != nil {
			return "", err
		}
		return string(raw), nil
	default:
		return fmt.Sprint(v), nil
	}
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string { return quoteEscaper.Replace(s) }
