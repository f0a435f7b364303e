/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const defaultLogLevel = "warn"

// globalOptions holds the flags shared by every subcommand.
type globalOptions struct {
	logLevel string
	log      zerolog.Logger
}

func (o *globalOptions) complete(errOut io.Writer) error {
	level, err := zerolog.ParseLevel(o.logLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid --log-level %q", o.logLevel)
	}
	o.log = zerolog.New(zerolog.ConsoleWriter{Out: errOut, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
	return nil
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	opts := &globalOptions{logLevel: defaultLogLevel, log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:           "urikit",
		Short:         "Parse, build and percent-encode RFC 3986 URIs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return opts.complete(errOut)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", opts.logLevel,
		"log level written to stderr. One of: trace, debug, info, warn, error, disabled.")

	cmd.AddCommand(
		newParseCommand(opts, out),
		newBuildCommand(opts, out),
		newEncodeCommand(opts, out),
		newDecodeCommand(opts, out),
		newIPCommand(opts, out),
	)
	return cmd
}
