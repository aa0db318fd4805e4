package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/casing"
	apperrors "github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/errors"
)

const maxErrorBody = 64 << 10

// envelopeKeys the keys a response wrapper may carry next to "data"
var envelopeKeys = map[string]bool{
	"data": true, "message": true, "status": true, "success": true,
	"code": true, "meta": true, "total": true,
}

// DecodeJSON checks the status, converts the body's keys to camelCase and decodes
// it into out. A non-2xx status becomes *apperrors.UpstreamError. Responses
// wrapped as {"data": ...} are unwrapped. out may be nil to discard the body.
func DecodeJSON(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read upstream response: %w", err)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	value, err := Normalize(raw)
	if err != nil {
		return err
	}
	return reencode(unwrap(value), out)
}

// DecodeList decodes a list response given either as a bare array or wrapped as {"data": [...]}.
func DecodeList(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read upstream response: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return reencode([]any{}, out)
	}

	value, err := Normalize(raw)
	if err != nil {
		return err
	}
	switch v := value.(type) {
	case []any:
		return reencode(v, out)
	case map[string]any:
		data, has := v["data"]
		if list, ok := data.([]any); ok {
			return reencode(list, out)
		}
		if has && data == nil {
			return reencode([]any{}, out)
		}
	}
	return fmt.Errorf("upstream list response is neither an array nor a data envelope")
}

// Normalize parses a JSON document and renames every object key to camelCase.
func Normalize(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("parse upstream json: %w", err)
	}
	return casing.CamelKeys(value), nil
}

func unwrap(value any) any {
	obj, ok := value.(map[string]any)
	if !ok {
		return value
	}
	data, has := obj["data"]
	if !has {
		return value
	}
	for k := range obj {
		if !envelopeKeys[k] {
			return value
		}
	}
	return data
}

func reencode(value any, out any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode upstream payload into %T: %w", out, err)
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &apperrors.UpstreamError{Status: resp.StatusCode, Message: errorMessage(raw)}
}

func errorMessage(raw []byte) string {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err == nil {
		for _, key := range []string{"message", "error", "detail"} {
			if s, ok := body[key].(string); ok && s != "" {
				return s
			}
		}
	}
	return strings.TrimSpace(string(raw))
}
