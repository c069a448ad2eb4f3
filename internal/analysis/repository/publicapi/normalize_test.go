package publicapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgLog "minwon-analytics/pkg/log"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var v any
	require.NoError(t, dec.Decode(&v))
	return v
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Shape
	}{
		{"top-level sequence", `[{"a":1}]`, ShapeRecords},
		{"wrapped singular", `{"items":{"item":{"a":1}}}`, ShapeWrappedSingular},
		{"wrapped plural", `{"items":{"item":[{"a":1}]}}`, ShapeWrappedPlural},
		{"flat items", `{"items":[{"a":1}]}`, ShapeFlatItems},
		{"no items", `{"totalCount":0}`, ShapeOther},
		{"items without item", `{"items":{}}`, ShapeOther},
		{"item is scalar", `{"items":{"item":"x"}}`, ShapeOther},
		{"items is scalar", `{"items":""}`, ShapeOther},
		{"scalar body", `42`, ShapeOther},
		{"null body", `null`, ShapeOther},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(decode(t, tc.body)).Shape)
		})
	}
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "records", ShapeRecords.String())
	assert.Equal(t, "wrapped_singular", ShapeWrappedSingular.String())
	assert.Equal(t, "wrapped_plural", ShapeWrappedPlural.String())
	assert.Equal(t, "flat_items", ShapeFlatItems.String())
	assert.Equal(t, "other", ShapeOther.String())
}

type debugCapture struct {
	pkgLog.Logger
	lines []string
}

func (d *debugCapture) Debugf(_ context.Context, template string, arg ...any) {
	d.lines = append(d.lines, fmt.Sprintf(template, arg...))
}

func TestRecords_LogsShape(t *testing.T) {
	l := &debugCapture{Logger: pkgLog.NewNop()}
	r := &implRepository{l: l}

	rows := r.records(context.Background(), SourceTimeSeries, decode(t, `{"items":{"item":[{"a":1},{"b":2}]}}`))

	assert.Len(t, rows, 2)
	assert.Equal(t, []string{"publicapi.time_series: shape=wrapped_plural rows=2"}, l.lines)
}

func TestNormalize_EquivalentShapes(t *testing.T) {
	want := []Record{{"a": json.Number("1")}}

	for _, body := range []string{
		`{"items":{"item":{"a":1}}}`,
		`{"items":{"item":[{"a":1}]}}`,
		`{"items":[{"a":1}]}`,
		`[{"a":1}]`,
	} {
		t.Run(body, func(t *testing.T) {
			assert.Equal(t, want, Normalize(decode(t, body)))
		})
	}
}

func TestNormalize_DropsNonRecords(t *testing.T) {
	got := Normalize(decode(t, `{"items":[1,"x",{"a":1},null,[2]]}`))
	assert.Equal(t, []Record{{"a": json.Number("1")}}, got)

	got = Normalize(decode(t, `[true,{"b":"y"}]`))
	assert.Equal(t, []Record{{"b": "y"}}, got)
}

func TestNormalize_EmptyForUnknownShapes(t *testing.T) {
	for _, body := range []string{`{}`, `{"items":null}`, `"text"`, `{"items":{"item":null}}`, `[]`} {
		got := Normalize(decode(t, body))
		assert.NotNil(t, got, body)
		assert.Empty(t, got, body)
	}
}
