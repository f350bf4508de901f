// Package config loads render jobs for the hlayout command from TOML or YAML
// files.
package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hlayout"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// ErrUnknownFormat is returned for config files that are neither TOML nor
// YAML, judged by extension.
var ErrUnknownFormat = errors.New("unknown config format")

// Config describes a single render job.
type Config struct {
	// Layout is the path of the layout file.
	Layout string `toml:"layout" yaml:"layout"`

	// Output is where the page is written. Empty means stdout.
	Output string `toml:"output" yaml:"output"`

	// Perms is the octal file mode of Output, e.g. "0644".
	Perms string `toml:"perms" yaml:"perms"`

	CreateDestDirs bool `toml:"create_dest_dirs" yaml:"create_dest_dirs"`
	Backup         bool `toml:"backup" yaml:"backup"`

	// SandboxPath confines layout and partial content files to a directory.
	SandboxPath string `toml:"sandbox_path" yaml:"sandbox_path"`

	BodyPlaceholder string    `toml:"body_placeholder" yaml:"body_placeholder"`
	EscapeBody      bool      `toml:"escape_body" yaml:"escape_body"`
	Partials        []Partial `toml:"partial" yaml:"partials"`
}

// Partial is the file form of hlayout.Partial. Content may instead be read
// from ContentFile.
type Partial struct {
	Placeholder string `toml:"placeholder" yaml:"placeholder"`
	Pattern     string `toml:"pattern" yaml:"pattern"`
	Content     string `toml:"content" yaml:"content"`
	ContentFile string `toml:"content_file" yaml:"content_file"`
}

// Load reads the config file at path. The format is chosen by extension:
// .toml, or .yaml/.yml.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config")
	}
	return Parse(filepath.Ext(path), b)
}

// Parse decodes b as the format named by ext.
func Parse(ext string, b []byte) (*Config, error) {
	var c Config
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		if _, err := toml.Decode(string(b), &c); err != nil {
			return nil, errors.Wrap(err, "parse toml")
		}
	case "yaml", "yml":
		if err := yaml.UnmarshalStrict(b, &c); err != nil {
			return nil, errors.Wrap(err, "parse yaml")
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", ext)
	}
	return &c, nil
}

// Reader returns the TextReader used for the layout and partial content
// files.
func (c *Config) Reader() hlayout.TextReader {
	return hlayout.FileReader{SandboxPath: c.SandboxPath}
}

// Options converts the config into governed template options. Patterns are
// compiled and content files are read through r.
func (c *Config) Options(r hlayout.TextReader) (*hlayout.GovernedTemplateOptions, error) {
	opts := &hlayout.GovernedTemplateOptions{
		BodyPlaceholderText: c.BodyPlaceholder,
		EscapeBodyContent:   c.EscapeBody,
	}

	for i, p := range c.Partials {
		var hp hlayout.Partial
		hp.Placeholder = p.Placeholder
		if p.Pattern != "" {
			re, err := regexp.Compile(p.Pattern)
			if err != nil {
				return nil, errors.Wrapf(err, "partial %d", i)
			}
			hp.Pattern = re
		}

		hp.Content = p.Content
		if p.ContentFile != "" {
			if p.Content != "" {
				return nil, errors.Errorf(
					"partial %d: content and content_file are exclusive", i)
			}
			content, err := r.ReadText(p.ContentFile)
			if err != nil {
				return nil, errors.Wrapf(err, "partial %d", i)
			}
			hp.Content = content
		}
		opts.Partials = append(opts.Partials, hp)
	}
	return opts, nil
}

// FileMode parses Perms. An empty value yields 0 so the renderer picks.
func (c *Config) FileMode() (os.FileMode, error) {
	if c.Perms == "" {
		return 0, nil
	}
	m, err := strconv.ParseUint(c.Perms, 8, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "perms %q", c.Perms)
	}
	return os.FileMode(m), nil
}
