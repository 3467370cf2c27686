package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rec struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestEncode_WrapsRecordsUnderCollectionKey(t *testing.T) {
	b, err := Encode("things", []rec{{ID: "1", Name: "a"}})
	require.NoError(t, err)

	want := "{\n  \"things\": [\n    {\n      \"id\": \"1\",\n      \"name\": \"a\"\n    }\n  ]\n}\n"
	assert.Equal(t, want, string(b))
}

func TestEncode_NilSliceIsEmptyArray(t *testing.T) {
	var items []rec
	b, err := Encode("things", items)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"things\": []\n}\n", string(b))

	b, err = Encode("things", nil)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"things\": []\n}\n", string(b))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    []rec
		wantErr bool
	}{
		{name: "empty data", data: "", want: []rec{}},
		{name: "missing key", data: `{"other": [{"id":"x"}]}`, want: []rec{}},
		{name: "null records", data: `{"things": null}`, want: []rec{}},
		{name: "records", data: `{"things": [{"id":"1","name":"a"},{"id":"2","name":"b"}]}`,
			want: []rec{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}},
		{name: "not json", data: `{"things": [`, want: []rec{}, wantErr: true},
		{name: "wrong shape", data: `{"things": {"id":"1"}}`, want: []rec{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []rec{{ID: "stale"}}
			err := Decode("things", []byte(tt.data), &got)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReset_RejectsNonSliceTargets(t *testing.T) {
	var s []rec
	assert.NoError(t, Reset(&s))
	assert.NotNil(t, s)

	var m map[string]any
	assert.ErrorIs(t, Reset(&m), ErrBadTarget)
	assert.ErrorIs(t, Reset(s), ErrBadTarget)
	assert.ErrorIs(t, Reset((*[]rec)(nil)), ErrBadTarget)
}
