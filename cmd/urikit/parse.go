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
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jplu/urikit/uri"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var parseExample = `# show the components of a URI
urikit parse "https://user@example.com:8080/a/b?q=1#top"

# parse an http(s) URL and print JSON
urikit parse --http --json "https://example.com/search?q=go"`

type parseOptions struct {
	*globalOptions
	http bool
	json bool
	out  io.Writer
}

// queryParam is one ordered query parameter in the JSON output.
type queryParam struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// parsedURI is the printed form of uri.Components.
type parsedURI struct {
	URI                string       `json:"uri"`
	Opaque             bool         `json:"opaque"`
	Scheme             string       `json:"scheme,omitempty"`
	SchemeSpecificPart string       `json:"schemeSpecificPart,omitempty"`
	ProtocolRelative   bool         `json:"protocolRelative,omitempty"`
	UserInfo           string       `json:"userInfo,omitempty"`
	Host               string       `json:"host,omitempty"`
	Port               *int         `json:"port,omitempty"`
	Path               string       `json:"path,omitempty"`
	PathSegments       []string     `json:"pathSegments,omitempty"`
	Query              []queryParam `json:"query,omitempty"`
	Fragment           string       `json:"fragment,omitempty"`
	ValidHTTPURL       bool         `json:"validHttpUrl"`
}

func newParsedURI(c *uri.Components) parsedURI {
	p := parsedURI{
		URI:                c.String(),
		Opaque:             c.IsOpaque(),
		Scheme:             c.Scheme(),
		SchemeSpecificPart: c.SchemeSpecificPart(),
		ProtocolRelative:   c.IsProtocolRelative(),
		UserInfo:           c.UserInfo(),
		Host:               c.Host(),
		Path:               c.Path(),
		PathSegments:       c.PathSegments(),
		Fragment:           c.Fragment(),
		ValidHTTPURL:       c.IsValidHTTPURL(),
	}
	if port := c.Port(); port != uri.SchemeDefaultPort {
		p.Port = &port
	}
	query := c.QueryParams()
	for _, name := range query.Names() {
		p.Query = append(p.Query, queryParam{Name: name, Values: query.Values(name)})
	}
	return p
}

func newParseCommand(global *globalOptions, out io.Writer) *cobra.Command {
	opts := &parseOptions{globalOptions: global, out: out}

	cmd := &cobra.Command{
		Use:     "parse URI...",
		Short:   "Parse URIs and print their decoded components",
		Example: parseExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return opts.run(args)
		},
	}
	cmd.Flags().BoolVar(&opts.http, "http", false, "require http or https URLs.")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print one JSON object per URI.")
	return cmd
}

func (o *parseOptions) run(args []string) error {
	for _, raw := range args {
		c, err := o.parse(raw)
		if err != nil {
			o.log.Warn().Str("input", raw).Err(err).Msg("rejected URI")
			return errors.Wrap(err, "parse")
		}
		o.log.Debug().
			Str("scheme", c.Scheme()).
			Str("host", c.Host()).
			Int("port", c.Port()).
			Strs("segments", c.PathSegments()).
			Str("query", c.QueryString()).
			Str("fragment", c.Fragment()).
			Bool("opaque", c.IsOpaque()).
			Msg("parsed URI")
		if err := o.print(newParsedURI(c)); err != nil {
			return err
		}
	}
	return nil
}

func (o *parseOptions) parse(raw string) (*uri.Components, error) {
	if o.http {
		return uri.ParseHTTPURL(raw)
	}
	return uri.Parse(raw)
}

func (o *parseOptions) print(p parsedURI) error {
	if o.json {
		data, err := json.Marshal(p)
		if err != nil {
			return errors.Wrap(err, "encode JSON")
		}
		_, err = fmt.Fprintln(o.out, string(data))
		return errors.WithStack(err)
	}

	lines := [][2]string{
		{"uri", p.URI},
		{"opaque", strconv.FormatBool(p.Opaque)},
		{"scheme", p.Scheme},
	}
	if p.Opaque {
		lines = append(lines, [2]string{"ssp", p.SchemeSpecificPart})
	} else {
		lines = append(lines,
			[2]string{"user-info", p.UserInfo},
			[2]string{"host", p.Host},
		)
		if p.Port != nil {
			lines = append(lines, [2]string{"port", strconv.Itoa(*p.Port)})
		}
		lines = append(lines, [2]string{"path", p.Path})
		for _, param := range p.Query {
			if len(param.Values) == 0 {
				lines = append(lines, [2]string{"query", param.Name})
			}
			for _, value := range param.Values {
				lines = append(lines, [2]string{"query", param.Name + "=" + value})
			}
		}
	}
	lines = append(lines, [2]string{"fragment", p.Fragment})
	for _, line := range lines {
		if line[1] == "" {
			continue
		}
		if _, err := fmt.Fprintf(o.out, "%-10s %s\n", line[0]+":", line[1]); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
