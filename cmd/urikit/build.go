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
	"strings"

	"github.com/jplu/urikit/uri"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var buildExample = `# build a URI from decoded parts
urikit build --scheme https --host example.com --segment "a b" --param q=go

# edit an existing URI
urikit build --base "https://example.com?w=W" --segment about --param a=X --sort-query

# build an opaque URI
urikit build --scheme mailto --ssp john@example.com`

type buildOptions struct {
	*globalOptions
	base      string
	scheme    string
	ssp       string
	userInfo  string
	host      string
	port      int
	path      string
	segments  []string
	query     string
	params    []string
	fragment  string
	sortQuery bool
	out       io.Writer
}

func newBuildCommand(global *globalOptions, out io.Writer) *cobra.Command {
	opts := &buildOptions{globalOptions: global, port: uri.SchemeDefaultPort, out: out}

	cmd := &cobra.Command{
		Use:     "build",
		Short:   "Build a URI from its components and print it",
		Example: buildExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.base, "base", "", "URI to start from.")
	flags.StringVar(&opts.scheme, "scheme", "", `scheme, or "//" for a protocol relative URI.`)
	flags.StringVar(&opts.ssp, "ssp", "", "decoded scheme specific part of an opaque URI.")
	flags.StringVar(&opts.userInfo, "user-info", "", "decoded user information.")
	flags.StringVar(&opts.host, "host", "", "decoded host.")
	flags.IntVar(&opts.port, "port", opts.port, "port, -1 for the scheme default.")
	flags.StringVar(&opts.path, "path", "", "encoded path replacing the current one.")
	flags.StringArrayVar(&opts.segments, "segment", nil, "decoded path segment to append. May be repeated.")
	flags.StringVar(&opts.query, "query", "", "encoded query string replacing the current one.")
	flags.StringArrayVar(&opts.params, "param", nil, "decoded name=value query parameter to append. May be repeated.")
	flags.StringVar(&opts.fragment, "fragment", "", "decoded fragment.")
	flags.BoolVar(&opts.sortQuery, "sort-query", false, "sort query parameters by name and value.")
	return cmd
}

func (o *buildOptions) run(cmd *cobra.Command) error {
	b, err := uri.BuilderFromURI(o.base)
	if err != nil {
		return errors.Wrap(err, "--base")
	}
	flags := cmd.Flags()
	if flags.Changed("scheme") {
		b.SetScheme(o.scheme)
	}
	if flags.Changed("user-info") {
		b.SetUserInfo(o.userInfo)
	}
	if flags.Changed("host") {
		b.SetHost(o.host)
	}
	if flags.Changed("port") {
		b.SetPort(o.port)
	}
	if flags.Changed("path") {
		b.SetPath(o.path)
	}
	b.AddPathSegments(o.segments...)
	if flags.Changed("query") {
		b.SetQueryString(o.query)
	}
	for _, param := range o.params {
		name, value, _ := strings.Cut(param, "=")
		b.AddQueryParam(name, value)
	}
	if o.sortQuery {
		b.SortQueryParamsAndValues()
	}
	if flags.Changed("ssp") {
		b.SetSchemeSpecificPart(o.ssp)
	}
	if flags.Changed("fragment") {
		b.SetFragment(o.fragment)
	}

	s, err := b.URIString()
	if err != nil {
		o.log.Warn().Err(err).Msg("rejected components")
		return errors.Wrap(err, "build")
	}
	o.log.Debug().Str("uri", s).Msg("built URI")
	_, err = fmt.Fprintln(o.out, s)
	return errors.WithStack(err)
}
