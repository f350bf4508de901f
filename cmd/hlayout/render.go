package main

import (
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hlayout"
	"github.com/hashicorp/hlayout/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type renderFlags struct {
	configPath  string
	layout      string
	body        string
	placeholder string
	escape      bool
	partials    []string
	out         string
	perms       string
	createDirs  bool
	backup      bool
}

func newRenderCmd(logger func() hclog.Logger) *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a body into a layout",
		Long: `Render reads a body fragment from --body (or stdin) and inserts it into
the layout at the body placeholder, then applies any partials.

Flags override values loaded with --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := f.config(cmd)
			if err != nil {
				return err
			}
			return runRender(cmd, c, f.body, logger())
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "TOML or YAML job file")
	fl.StringVarP(&f.layout, "layout", "l", "", "layout file")
	fl.StringVarP(&f.body, "body", "b", "-", "body file, - for stdin")
	fl.StringVar(&f.placeholder, "placeholder", "",
		"body placeholder marker (default "+hlayout.DefaultBodyPlaceholderText+")")
	fl.BoolVar(&f.escape, "escape", false, "HTML escape the body")
	fl.StringArrayVarP(&f.partials, "partial", "p", nil,
		"PLACEHOLDER=CONTENT substitution, repeatable")
	fl.StringVarP(&f.out, "out", "o", "", "output file (default stdout)")
	fl.StringVar(&f.perms, "perms", "", "octal mode of the output file")
	fl.BoolVar(&f.createDirs, "create-dirs", false, "create missing output directories")
	fl.BoolVar(&f.backup, "backup", false, "keep a .bak of a replaced output file")
	return cmd
}

// config loads --config, if given, and layers the set flags on top.
func (f *renderFlags) config(cmd *cobra.Command) (*config.Config, error) {
	c := &config.Config{}
	if f.configPath != "" {
		var err error
		if c, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}

	set := cmd.Flags().Changed
	if set("layout") {
		c.Layout = f.layout
	}
	if set("placeholder") {
		c.BodyPlaceholder = f.placeholder
	}
	if set("escape") {
		c.EscapeBody = f.escape
	}
	if set("out") {
		c.Output = f.out
	}
	if set("perms") {
		c.Perms = f.perms
	}
	if set("create-dirs") {
		c.CreateDestDirs = f.createDirs
	}
	if set("backup") {
		c.Backup = f.backup
	}
	for _, p := range f.partials {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			return nil, errors.Errorf("partial %q: expected PLACEHOLDER=CONTENT", p)
		}
		c.Partials = append(c.Partials, config.Partial{Placeholder: k, Content: v})
	}

	if c.Layout == "" {
		return nil, errors.New("no layout given")
	}
	return c, nil
}

func runRender(cmd *cobra.Command, c *config.Config, bodyPath string, l hclog.Logger) error {
	reader := c.Reader()
	opts, err := c.Options(reader)
	if err != nil {
		return err
	}

	handler := logEvents(l)
	page, err := hlayout.NewGovernedTemplate(hlayout.GovernedTemplateInput{
		Path:         c.Layout,
		Reader:       reader,
		Options:      opts,
		EventHandler: handler,
	})
	if err != nil {
		return err
	}

	body, err := readBody(cmd.InOrStdin(), reader, bodyPath)
	if err != nil {
		return err
	}

	if c.Output == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), page(hlayout.Text(body)))
		return err
	}

	perms, err := c.FileMode()
	if err != nil {
		return err
	}
	in := hlayout.FileRendererInput{
		CreateDestDirs: c.CreateDestDirs,
		Path:           c.Output,
		Perms:          perms,
		EventHandler:   handler,
	}
	if c.Backup {
		in.Backup = hlayout.Backup
	}
	_, err = hlayout.RenderComposed(hlayout.NewFileRenderer(in), page, hlayout.Text(body))
	return err
}

// readBody reads the body from stdin, or from path through the same reader,
// and so the same sandbox, as the layout.
func readBody(stdin io.Reader, r hlayout.TextReader, path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, "read body")
		}
		return string(b), nil
	}
	body, err := r.ReadText(path)
	if err != nil {
		return "", errors.Wrap(err, "read body")
	}
	return body, nil
}
