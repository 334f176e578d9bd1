package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/stacklayout/layout"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default()))

	got, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "horizontal")
	assert.Contains(t, string(data), "top-left")
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Len(t, got.Profiles, len(Default().Profiles))
}

func TestLoadProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	data := `
[log]
level = "debug"
format = "json"

[[panel]]
name = "status"
axis = "horizontal"
alignment = "center"
policy = "current-size"
width = 80
height = 1

[[panel.child]]
name = "left"
width = 10
height = 1
weight = 2

[[panel.child]]
name = "clock"
width = 5
height = 1
[panel.child.float]
target = "left"
alignment = "right-of"
z_order = "behind"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	require.Len(t, cfg.Profiles, 1, "file profiles replace the built-in ones")

	p, err := cfg.Profile("status")
	require.NoError(t, err)
	assert.Equal(t, layout.Horizontal, p.Axis)
	assert.Equal(t, layout.AlignCenter, p.Alignment)
	assert.Equal(t, layout.PolicyCurrentSize, p.Policy)
	require.NotNil(t, p.Children[1].Float)
	assert.Equal(t, layout.FloatToRightOf, p.Children[1].Float.Alignment)
	assert.Equal(t, layout.ZBehindTarget, p.Children[1].Float.ZOrder)

	_, err = cfg.Profile("toolbar")
	assert.ErrorIs(t, err, ErrNoProfile)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
		text string
	}{
		{
			name: "unknown enum",
			data: "[[panel]]\nname = \"p\"\naxis = \"diagonal\"\n",
			text: "unknown enum value",
		},
		{
			name: "duplicate child",
			data: "[[panel]]\nname = \"p\"\n[[panel.child]]\nname = \"a\"\n[[panel.child]]\nname = \"a\"\n",
			want: ErrDuplicateName,
		},
		{
			name: "unnamed panel",
			data: "[[panel]]\nspacing = 3\n",
			want: ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0644))
			_, err := Load(path)
			require.Error(t, err)
			if tt.want != nil {
				assert.True(t, errors.Is(err, tt.want), "err = %v", err)
			}
			if tt.text != "" {
				assert.ErrorContains(t, err, tt.text)
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Config{Profiles: []Profile{
		{Name: "a", Children: []ChildConfig{{Name: "x"}, {Name: "x"}, {}}},
		{Name: "a"},
	}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Contains(t, err.Error(), `panel "a" child "x"`)
	assert.Contains(t, err.Error(), `panel "a": config: duplicate name`)
}
