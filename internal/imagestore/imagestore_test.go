package imagestore

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 PNG 文件头足以被 http.DetectContentType 识别
var pngBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
}

func TestDecodeBase64Image(t *testing.T) {
	raw := base64.StdEncoding.EncodeToString(pngBytes)

	tests := []struct {
		name    string
		input   string
		wantErr error
		wantCT  string
	}{
		{name: "bare base64", input: raw, wantCT: "image/png"},
		{name: "data uri", input: "data:image/png;base64," + raw, wantCT: "image/png"},
		{name: "empty", input: "", wantErr: ErrEmptyImage},
		{name: "blank", input: "   ", wantErr: ErrEmptyImage},
		{name: "data uri without comma", input: "data:image/png;base64", wantErr: ErrInvalidImage},
		{name: "not base64", input: "@@@@", wantErr: ErrInvalidImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, ct, err := DecodeBase64Image(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, pngBytes, data)
			assert.Equal(t, tt.wantCT, ct)
		})
	}
}

func TestObjectNameFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"标准公开 URL", "http://127.0.0.1:9000/avatars/12/avatar-1700000000.png", "12/avatar-1700000000.png"},
		{"https", "https://cdn.example.com/avatars/7/avatar-1.jpg", "7/avatar-1.jpg"},
		{"不含该 bucket", "http://127.0.0.1:9000/other/12/file.png", ""},
		{"空串", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ObjectNameFromURL("avatars", tt.url))
		})
	}
}
