package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/hlayout"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newEscapeCmd() *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "escape [text...]",
		Short: "HTML escape text from the arguments or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return errors.Wrap(err, "read stdin")
				}
				text = string(b)
			}

			out := hlayout.EscapeHTML(text)
			if tag != "" {
				out = hlayout.HTMLTag(tag, true)(hlayout.Text(text))
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "wrap the escaped text in this tag")
	return cmd
}
