package number_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/getoutreach/safenum/pkg/number"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"gotest.tools/v3/assert"
)

func TestConversionErrorMatchesKindWhenWrapped(t *testing.T) {
	_, err := number.CastIntegerToType[uint8](-3)
	wrapped := errors.Wrap(err, "field \"retries\"")

	assert.Assert(t, errors.Is(wrapped, number.OutsideTypeRange))
	assert.Assert(t, !errors.Is(wrapped, number.OutsideExactRange))

	var ce *number.ConversionError
	assert.Assert(t, errors.As(wrapped, &ce))
	assert.Equal(t, ce.Target, number.Uint8)
}

func TestConversionErrorMarshalLog(t *testing.T) {
	_, err := number.CastDoubleToInteger[int8](300)
	var ce *number.ConversionError
	assert.Assert(t, errors.As(err, &ce))

	fields := map[string]interface{}{}
	ce.MarshalLog(func(field string, value interface{}) { fields[field] = value })

	assert.DeepEqual(t, fields, map[string]interface{}{
		"conversion.error":  "outside type range",
		"conversion.value":  "300",
		"conversion.source": "float64",
		"conversion.target": "int8",
		"conversion.min":    "-128",
		"conversion.max":    "127",
	})
}

func TestConversionErrorLogValue(t *testing.T) {
	_, err := number.CastDoubleToInt64(0.5)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	logger.Info("rejected", "err", err)

	want := "level=INFO msg=rejected err.conversion.error=\"precision loss\" err.conversion.value=0.5 " +
		"err.conversion.source=float64 err.conversion.target=int64 " +
		"err.conversion.min=-9.007199254740992e+15 err.conversion.max=9.007199254740992e+15\n"
	assert.Equal(t, buf.String(), want, cmp.Diff(buf.String(), want))
}

func TestErrorKindMessages(t *testing.T) {
	assert.Equal(t, number.OutsideExactRange.Error(), "outside exact integer representation range")
	assert.Equal(t, number.OutsideDoubleExactRange.Error(), "outside exact floating-point range")
	assert.Equal(t, number.ErrorKind(42).Error(), "unknown conversion error kind 42")
}
