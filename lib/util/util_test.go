package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUserHomeReturnsValidPath verifies UserHome returns an existing directory.
func TestUserHomeReturnsValidPath(t *testing.T) {
	home := UserHome()
	require.NotEmpty(t, home)

	info, err := os.Stat(home)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestUserHomeFollowsHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("USERPROFILE", dir)
	assert.Equal(t, dir, UserHome())
}

func TestUserHomeFallsBackToWorkingDir(t *testing.T) {
	t.Setenv("HOME", "")
	t.Setenv("USERPROFILE", "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, UserHome())
}

func TestCheckFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	assert.True(t, CheckFileExists(file))
	assert.True(t, CheckFileExists(dir), "directories count as existing")
	assert.False(t, CheckFileExists(filepath.Join(dir, "absent.txt")))
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		encoding string
		want     []byte
		wantErr  bool
	}{
		{"hex", "00ff10", ENCODING_HEX, []byte{0x00, 0xff, 0x10}, false},
		{"hex default", "abcd", "", []byte{0xab, 0xcd}, false},
		{"hex trailing newline", "abcd\n", ENCODING_HEX, []byte{0xab, 0xcd}, false},
		{"base64", "AP8Q", ENCODING_BASE64, []byte{0x00, 0xff, 0x10}, false},
		{"bad hex", "zz", ENCODING_HEX, nil, true},
		{"bad base64", "!!!", ENCODING_BASE64, nil, true},
		{"unknown encoding", "00", "rot13", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeText(tt.input, tt.encoding)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeTextInvertsDecode(t *testing.T) {
	data := []byte{1, 2, 3, 250, 251, 252}
	for _, enc := range []string{ENCODING_HEX, ENCODING_BASE64} {
		s, err := EncodeText(data, enc)
		require.NoError(t, err)
		back, err := DecodeText(s, enc)
		require.NoError(t, err)
		assert.Equal(t, data, back, "encoding %s", enc)
	}

	_, err := EncodeText(data, "rot13")
	assert.Error(t, err)
}

func TestReadEncodedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "key.hex")
	require.NoError(t, os.WriteFile(path, []byte("deadbeef\n"), 0o600))

	got, err := ReadEncodedFile(path, ENCODING_HEX)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, got)

	_, err = ReadEncodedFile(filepath.Join(dir, "missing.hex"), ENCODING_HEX)
	assert.Error(t, err)
}
