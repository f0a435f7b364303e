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

func newIPCommand(global *globalOptions, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "ip ADDRESS...",
		Short: "Validate IPv4 and IPv6 addresses and print their family",
		Example: `urikit ip 192.168.0.1 "fe80::1%eth0" 2001:db8::/32
urikit ip "1.1.1.01"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, arg := range args {
				family, err := ipFamily(arg)
				if err != nil {
					global.log.Warn().Str("input", arg).Msg("rejected address")
					return errors.Wrap(err, "ip")
				}
				if _, err := fmt.Fprintf(out, "%s\t%s\n", family, arg); err != nil {
					return errors.WithStack(err)
				}
			}
			return nil
		},
	}
}

func ipFamily(address string) (string, error) {
	switch {
	case uri.IsValidIPv4(address):
		return "ipv4", nil
	case uri.IsValidIPv6(address):
		return "ipv6", nil
	default:
		return "", uri.ValidateIP(address)
	}
}
