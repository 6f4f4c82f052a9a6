package host

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestPaperHistory(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
		unavail bool
	}{
		{
			name:    "paper build string",
			content: `{"currentVersion":"git-Paper-496 (MC: 1.20.4)","oldVersion":"git-Paper-430 (MC: 1.20.2)"}`,
			want:    "1.20.4",
		},
		{
			name:    "plain version",
			content: `{"currentVersion":"1.21.1"}`,
			want:    "1.21.1",
		},
		{
			name:    "unrecognized text is passed through",
			content: `{"currentVersion":"custom-build"}`,
			want:    "custom-build",
		},
		{
			name:    "no current version",
			content: `{"oldVersion":"1.20.2"}`,
			wantErr: true,
			unavail: true,
		},
		{
			name:    "malformed json",
			content: `{"currentVersion":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, PaperHistoryFile, tt.content)
			got, err := PaperHistory(path).ReportedVersion(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.unavail, errorIsUnavailable(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaperHistoryMissingFile(t *testing.T) {
	_, err := PaperHistory(filepath.Join(t.TempDir(), PaperHistoryFile)).ReportedVersion(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
