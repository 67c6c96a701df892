// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Implements JSON encoding and decoding for the weakly
// typed side of the number boundary, where every number is a double.

// Package codec moves values across the boundary between native Go
// types and JSON documents in which every number is a float64.
//
// Decoding into interface{} yields float64 numbers; Field and
// FieldValue convert them back to native integers through the number
// engine. Encoding lowers native integers to float64 first and refuses
// any integer a double can't hold exactly.
package codec

import (
	"io"
	"log/slog"

	"github.com/getoutreach/safenum/pkg/orio"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// api matches encoding/json behavior, including decoding numbers into
// float64 when the target is interface{}.
var api = jsoniter.ConfigCompatibleWithStandardLibrary

// defaultSnippetSize is how much of the input a decode error carries
// when MaxSnippetSize is not set.
const defaultSnippetSize = 2000

// JSON is a factory for JSON encoders and decoders.
type JSON struct {
	MaxSnippetSize int
}

// NewEncoder returns an encoder that lowers every value with Lower
// before writing it.
func (j *JSON) NewEncoder(w io.Writer) *Encoder {
	return &Encoder{api.NewEncoder(w)}
}

// NewDecoder returns a new encoding/json style decoder augmenting it
// with snippets of the payload in case of errors.
func (j *JSON) NewDecoder(r io.Reader) *Decoder {
	w := &orio.BufferedWriter{N: j.snippetSize()}
	d := api.NewDecoder(io.TeeReader(r, w))
	return &Decoder{d, w}
}

func (j *JSON) snippetSize() int {
	if j.MaxSnippetSize > 0 {
		return j.MaxSnippetSize
	}
	return defaultSnippetSize
}

// Decoder decodes JSON values from a stream.
type Decoder struct {
	// Decoder is embedded to export all underlying functionality.
	*jsoniter.Decoder

	// buf holds the snippet buffer
	buf *orio.BufferedWriter
}

// Decode wraps the jsoniter Decoder but includes a snippet of the
// payload on errors as a *DecodeError. io.EOF is returned as is.
func (d *Decoder) Decode(v interface{}) error {
	if err := d.Decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return err
		}
		return &DecodeError{Err: err, Snippet: string(d.buf.Bytes())}
	}
	return nil
}

// DecodeError is a decode failure carrying the tail of the payload
// read up to the failure. The snippet is a log field, not part of the
// message.
type DecodeError struct {
	Err     error
	Snippet string
}

func (e *DecodeError) Error() string {
	return "decode json: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// MarshalLog adds the payload snippet to a log entry.
func (e *DecodeError) MarshalLog(addField func(field string, value interface{})) {
	addField("error.json", e.Snippet)
}

// LogValue implements slog.LogValuer.
func (e *DecodeError) LogValue() slog.Value {
	var attrs []slog.Attr
	e.MarshalLog(func(field string, value interface{}) {
		attrs = append(attrs, slog.Any(field, value))
	})
	return slog.GroupValue(attrs...)
}

// Encoder writes lowered JSON values to a stream.
type Encoder struct {
	enc *jsoniter.Encoder
}

// SetIndent configures the encoder to indent its output.
func (e *Encoder) SetIndent(prefix, indent string) {
	e.enc.SetIndent(prefix, indent)
}

// Encode lowers v and writes it. Nothing is written if lowering fails.
func (e *Encoder) Encode(v interface{}) error {
	lowered, err := Lower(v)
	if err != nil {
		return err
	}
	return errors.Wrap(e.enc.Encode(lowered), "encode json")
}
