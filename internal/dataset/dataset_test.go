package dataset

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBlock(t *testing.T, data string) *Block {
	t.Helper()
	var b Block
	require.NoError(t, json.Unmarshal([]byte(data), &b))
	return &b
}

func TestBlock_UnmarshalJSON_Fields(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []string
	}{
		{name: "array", data: `{"fields":["a","b"],"items":[]}`, want: []string{"a", "b"}},
		{name: "comma string", data: `{"fields":"a, b ,c","items":[]}`, want: []string{"a", "b", "c"}},
		{name: "array drops non-strings", data: `{"fields":["a",1,null,"b"],"items":[]}`, want: []string{"a", "b"}},
		{name: "number is empty", data: `{"fields":42,"items":[]}`, want: []string{}},
		{name: "object is empty", data: `{"fields":{"a":1},"items":[]}`, want: []string{}},
		{name: "missing", data: `{"items":[]}`, want: []string{}},
		{name: "null", data: `{"fields":null}`, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeBlock(t, tt.data).Fields)
		})
	}
}

func TestBlock_UnmarshalJSON_MissingItems(t *testing.T) {
	b := decodeBlock(t, `{"fields":["a"]}`)
	assert.NotNil(t, b.Items)
	assert.Empty(t, ToRows(b))
}

func TestToRows(t *testing.T) {
	b := decodeBlock(t, `{"fields":"a,b","items":[["x",1],["y",2]]}`)

	assert.Equal(t, []Row{
		{"a": "x", "b": json.Number("1")},
		{"a": "y", "b": json.Number("2")},
	}, ToRows(b))
}

func TestToRows_NumbersKeepLiteral(t *testing.T) {
	b := decodeBlock(t, `{"fields":["id","ratio","nested"],"items":[[9007199254740993,0.10,[123456789012345678]]]}`)

	rows := ToRows(b)
	require.Len(t, rows, 1)
	assert.Equal(t, json.Number("9007199254740993"), rows[0]["id"])
	assert.Equal(t, json.Number("0.10"), rows[0]["ratio"])
	assert.Equal(t, []any{json.Number("123456789012345678")}, rows[0]["nested"])
}

func TestToRows_Ragged(t *testing.T) {
	b := &Block{
		Fields: []string{"a", "b", "c"},
		Items: [][]any{
			{"x"},
			{"y", 2.0, true, "surplus"},
			{},
			{nil, []any{1.0}, map[string]any{"k": "v"}},
		},
	}

	rows := ToRows(b)
	require.Len(t, rows, 4)
	assert.Equal(t, Row{"a": "x"}, rows[0])
	assert.Equal(t, Row{"a": "y", "b": 2.0, "c": true}, rows[1])
	assert.Equal(t, Row{}, rows[2])
	assert.Equal(t, Row{"a": nil, "b": []any{1.0}, "c": map[string]any{"k": "v"}}, rows[3])
}

func TestToRows_Nil(t *testing.T) {
	rows := ToRows(nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestFromRows_RoundTrip(t *testing.T) {
	fields := []string{"ts_code", "close", "vol"}
	original := &Block{
		Fields: fields,
		Items: [][]any{
			{"000001.SZ", 11.2, 1000.0},
			{"600000.SH", 7.5, nil},
		},
	}

	rebuilt := FromRows(ToRows(original), fields)
	assert.Equal(t, original, rebuilt)
	assert.Equal(t, ToRows(original), ToRows(rebuilt))
}

func TestDisplayFields(t *testing.T) {
	assert.Equal(t, []string{}, DisplayFields(nil))

	rows := []Row{
		{"vol": 1.0, "close": 2.0, "ts_code": "x"},
		{"extra": true},
	}
	assert.Equal(t, []string{"close", "ts_code", "vol"}, DisplayFields(rows))
}
