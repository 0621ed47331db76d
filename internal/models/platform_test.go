package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatform_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Platform
		wantErr bool
	}{
		{
			name: "url only",
			raw:  `{"url":"https://a.example"}`,
			want: Platform{URL: "https://a.example"},
		},
		{
			name: "with clicks",
			raw:  `{"url":"https://a.example","clicks":7}`,
			want: Platform{URL: "https://a.example", Clicks: 7},
		},
		{
			name: "extra keys kept",
			raw:  `{"url":"https://a.example","name":"spotify","icon":"sp.svg"}`,
			want: Platform{URL: "https://a.example", Extra: map[string]any{"name": "spotify", "icon": "sp.svg"}},
		},
		{name: "url not a string", raw: `{"url":12}`, wantErr: true},
		{name: "negative clicks", raw: `{"url":"https://a.example","clicks":-1}`, wantErr: true},
		{name: "fractional clicks", raw: `{"url":"https://a.example","clicks":1.5}`, wantErr: true},
		{name: "not an object", raw: `"https://a.example"`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Platform
			err := json.Unmarshal([]byte(tt.raw), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlatforms_RoundTrip(t *testing.T) {
	raw := `[{"url":"https://a.example","name":"first"},{"url":"https://b.example","clicks":3}]`

	var list Platforms
	require.NoError(t, json.Unmarshal([]byte(raw), &list))

	value, err := list.Value()
	require.NoError(t, err)

	var restored Platforms
	require.NoError(t, restored.Scan(value))

	require.Len(t, restored, 2)
	assert.Equal(t, "https://a.example", restored[0].URL)
	assert.Equal(t, int64(0), restored[0].Clicks)
	assert.Equal(t, "first", restored[0].Extra["name"])
	assert.Equal(t, "https://b.example", restored[1].URL)
	assert.Equal(t, int64(3), restored[1].Clicks)

	out, err := json.Marshal(restored)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"url":"https://a.example","clicks":0,"name":"first"},{"url":"https://b.example","clicks":3}]`,
		string(out),
	)
}

func TestPlatforms_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want Platforms
	}{
		{name: "nil", src: nil, want: Platforms{}},
		{name: "empty array", src: "[]", want: Platforms{}},
		{name: "bytes", src: []byte(`[{"url":"https://a.example","clicks":2}]`), want: Platforms{{URL: "https://a.example", Clicks: 2}}},
		{name: "corrupted", src: "[{not json", want: Platforms{}},
		{name: "json null", src: "null", want: Platforms{}},
		{name: "wrong shape", src: `{"url":"https://a.example"}`, want: Platforms{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Platforms
			require.NoError(t, got.Scan(tt.src))
			assert.Equal(t, tt.want, got)
		})
	}

	var p Platforms
	assert.Error(t, p.Scan(42))
}

func TestPlatforms_ValueNil(t *testing.T) {
	var p Platforms
	v, err := p.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestPlatforms_MarshalNil(t *testing.T) {
	out, err := json.Marshal(struct {
		Platforms Platforms `json:"platforms"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"platforms":[]}`, string(out))
}
