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
	"fmt"
	"io"

	"github.com/jplu/urikit/uri"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// codecOptions configures the percent codec used by encode and decode.
type codecOptions struct {
	*globalOptions
	charset string
	plus    bool
	safe    string
	profile string
	out     io.Writer
}

// profiles maps the --profile names to the component profiles.
var profiles = map[string]func() *uri.Profile{
	"scheme":               uri.SchemeProfile,
	"scheme-specific-part": uri.SchemeSpecificPartProfile,
	"user-info":            uri.UserInfoProfile,
	"host":                 uri.HostProfile,
	"port":                 uri.PortProfile,
	"path-segment":         uri.PathSegmentProfile,
	"query":                uri.QueryProfile,
	"query-param":          uri.QueryParamProfile,
	"query-param-narrow":   uri.QueryParamNarrowProfile,
	"fragment":             uri.FragmentProfile,
}

// codecFlags configure a free-standing codec and conflict with --profile.
var codecFlags = []string{"charset", "plus", "safe"}

func (o *codecOptions) bindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&o.charset, "charset", "UTF-8", "IANA name of the charset of the decoded text.")
	flags.BoolVar(&o.plus, "plus", false, `use "+" for spaces.`)
	flags.StringVar(&o.safe, "safe", "", "extra characters left unencoded.")
	flags.StringVar(&o.profile, "profile", "", "component profile to encode or validate with, e.g. path-segment or query-param-narrow. Excludes --charset, --plus and --safe.")
}

func (o *codecOptions) codec() (*uri.Codec, error) {
	charset, err := uri.CharsetByName(o.charset)
	if err != nil {
		return nil, errors.Wrap(err, "--charset")
	}
	return uri.NewCodec(
		uri.WithCharset(charset),
		uri.WithSpaceAsPlus(o.plus),
		uri.WithAddedSafeCharacters(o.safe),
	), nil
}

func (o *codecOptions) componentProfile(cmd *cobra.Command) (*uri.Profile, error) {
	for _, name := range codecFlags {
		if cmd.Flags().Changed(name) {
			return nil, errors.Errorf("--%s cannot be combined with --profile", name)
		}
	}
	p, ok := profiles[o.profile]
	if !ok {
		return nil, errors.Errorf("unknown --profile %q", o.profile)
	}
	return p(), nil
}

func newEncodeCommand(global *globalOptions, out io.Writer) *cobra.Command {
	opts := &codecOptions{globalOptions: global, out: out}
	cmd := &cobra.Command{
		Use:   "encode TEXT...",
		Short: "Percent-encode text",
		Example: `urikit encode "a b/c"
urikit encode --charset ISO-8859-1 --plus "café au lait"
urikit encode --profile path-segment "a/b"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runEncode(cmd, args)
		},
	}
	opts.bindFlags(cmd)
	return cmd
}

func (o *codecOptions) runEncode(cmd *cobra.Command, args []string) error {
	var encode func(string) string
	if o.profile != "" {
		p, err := o.componentProfile(cmd)
		if err != nil {
			return err
		}
		encode = p.Encode
	} else {
		c, err := o.codec()
		if err != nil {
			return err
		}
		o.log.Debug().Stringer("codec", c).Msg("encoding")
		encode = c.Encode
	}
	for _, arg := range args {
		if _, err := fmt.Fprintln(o.out, encode(arg)); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func newDecodeCommand(global *globalOptions, out io.Writer) *cobra.Command {
	opts := &codecOptions{globalOptions: global, out: out}
	cmd := &cobra.Command{
		Use:   "decode TEXT...",
		Short: "Percent-decode text",
		Example: `urikit decode "a%20b"
urikit decode --plus "a+b%2Bc"
urikit decode --profile query-param "a+b%26c"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runDecode(cmd, args)
		},
	}
	opts.bindFlags(cmd)
	return cmd
}

func (o *codecOptions) runDecode(cmd *cobra.Command, args []string) error {
	var decode func(string) (string, error)
	if o.profile != "" {
		p, err := o.componentProfile(cmd)
		if err != nil {
			return err
		}
		decode = p.ValidateAndDecode
	} else {
		c, err := o.codec()
		if err != nil {
			return err
		}
		o.log.Debug().Stringer("codec", c).Msg("decoding")
		decode = c.Decode
	}
	for _, arg := range args {
		decoded, err := decode(arg)
		if err != nil {
			o.log.Warn().Str("input", arg).Err(err).Msg("rejected encoded text")
			return errors.Wrap(err, "decode")
		}
		if _, err := fmt.Fprintln(o.out, decoded); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
