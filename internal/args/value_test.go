package args

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		raw  string
		want Value
	}{
		{raw: "10", want: NumberValue(10)},
		{raw: "-3.5", want: NumberValue(-3.5)},
		{raw: "+7", want: NumberValue(7)},
		{raw: "1e3", want: NumberValue(1000)},
		{raw: "true", want: BoolValue(true)},
		{raw: "TRUE", want: BoolValue(true)},
		{raw: "False", want: BoolValue(false)},
		{raw: "000001.SZ", want: StringValue("000001.SZ")},
		{raw: "20240101", want: NumberValue(20240101)},
		{raw: "", want: StringValue("")},
		{raw: "NaN", want: StringValue("NaN")},
		{raw: "inf", want: StringValue("inf")},
		{raw: "0x1p4", want: StringValue("0x1p4")},
		{raw: "yes", want: StringValue("yes")},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Coerce(tt.raw))
		})
	}
}

func TestValue_JSONValue(t *testing.T) {
	params := []Param{
		{Key: "i", Value: Coerce("10")},
		{Key: "f", Value: Coerce("2.5")},
		{Key: "e", Value: Coerce("1e2")},
		{Key: "b", Value: Coerce("true")},
		{Key: "s", Value: Coerce("abc")},
	}

	data, err := json.Marshal(ParamsMap(params))
	require.NoError(t, err)
	assert.JSONEq(t, `{"i":10,"f":2.5,"e":100,"b":true,"s":"abc"}`, string(data))
	assert.Contains(t, string(data), `"i":10`)
	assert.Contains(t, string(data), `"e":100`)
}

func TestParamsMap_Empty(t *testing.T) {
	data, err := json.Marshal(ParamsMap(nil))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "10", NumberValue(10).String())
	assert.Equal(t, "0.25", NumberValue(0.25).String())
	assert.Equal(t, "false", BoolValue(false).String())
	assert.Equal(t, "x", StringValue("x").String())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "bool", KindBool.String())
	assert.Equal(t, "string", KindString.String())
}
