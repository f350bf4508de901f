package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/hlayout"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlConfig = `
layout = "layout.html"
output = "out/index.html"
perms = "0640"
create_dest_dirs = true
body_placeholder = "BODY"
escape_body = true

[[partial]]
placeholder = "{{title}}"
content = "Home"

[[partial]]
pattern = "<!--\\s*nav\\s*-->"
content_file = "nav.html"
`

const yamlConfig = `
layout: layout.html
output: out/index.html
perms: "0640"
create_dest_dirs: true
body_placeholder: BODY
escape_body: true
partials:
  - placeholder: "{{title}}"
    content: Home
  - pattern: "<!--\\s*nav\\s*-->"
    content_file: nav.html
`

func TestParse(t *testing.T) {
	t.Parallel()

	e := &Config{
		Layout:          "layout.html",
		Output:          "out/index.html",
		Perms:           "0640",
		CreateDestDirs:  true,
		BodyPlaceholder: "BODY",
		EscapeBody:      true,
		Partials: []Partial{
			{Placeholder: "{{title}}", Content: "Home"},
			{Pattern: `<!--\s*nav\s*-->`, ContentFile: "nav.html"},
		},
	}

	cases := []struct {
		ext  string
		body string
	}{
		{".toml", tomlConfig},
		{".yaml", yamlConfig},
		{"yml", yamlConfig},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.ext, func(t *testing.T) {
			c, err := Parse(tc.ext, []byte(tc.body))
			require.NoError(t, err)
			assert.Equal(t, e, c)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := Parse(".json", []byte("{}"))
		assert.Equal(t, ErrUnknownFormat, errors.Cause(err))
	})

	t.Run("bad_yaml_field", func(t *testing.T) {
		_, err := Parse(".yaml", []byte("nope: true\n"))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "job.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlConfig), 0644))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "layout.html", c.Layout)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestConfig_Options(t *testing.T) {
	t.Parallel()

	reader := hlayout.TextReaderFunc(func(p string) (string, error) {
		if p != "nav.html" {
			return "", errors.Errorf("unexpected read %q", p)
		}
		return "<nav/>", nil
	})

	t.Run("converts", func(t *testing.T) {
		c, err := Parse(".toml", []byte(tomlConfig))
		require.NoError(t, err)

		opts, err := c.Options(reader)
		require.NoError(t, err)
		assert.Equal(t, "BODY", opts.BodyPlaceholderText)
		assert.True(t, opts.EscapeBodyContent)
		require.Len(t, opts.Partials, 2)
		assert.Equal(t, "{{title}}", opts.Partials[0].Placeholder)
		assert.Equal(t, "Home", opts.Partials[0].Content)
		require.NotNil(t, opts.Partials[1].Pattern)
		assert.True(t, opts.Partials[1].Pattern.MatchString("<!-- nav -->"))
		assert.Equal(t, "<nav/>", opts.Partials[1].Content)
	})

	t.Run("bad_pattern", func(t *testing.T) {
		c := &Config{Partials: []Partial{{Pattern: "("}}}
		_, err := c.Options(reader)
		assert.Error(t, err)
	})

	t.Run("content_and_file", func(t *testing.T) {
		c := &Config{Partials: []Partial{
			{Placeholder: "x", Content: "a", ContentFile: "nav.html"},
		}}
		_, err := c.Options(reader)
		assert.Error(t, err)
	})

	t.Run("defaults_fill_in", func(t *testing.T) {
		opts, err := (&Config{}).Options(reader)
		require.NoError(t, err)
		full, err := hlayout.DefaultGovernedTemplateOptions(opts)
		require.NoError(t, err)
		assert.Equal(t, hlayout.DefaultBodyPlaceholderText, full.BodyPlaceholderText)
	})
}

func TestConfig_FileMode(t *testing.T) {
	t.Parallel()

	m, err := (&Config{}).FileMode()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0), m)

	m, err = (&Config{Perms: "0640"}).FileMode()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), m)

	_, err = (&Config{Perms: "rw"}).FileMode()
	assert.Error(t, err)
}
