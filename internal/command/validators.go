// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"net"
	"slices"
	"strconv"

	"github.com/urfave/cli/v3"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	if c.Int("padding") < 0 {
		return fmt.Errorf("padding must not be negative")
	}
	return nil
}

// oneOf builds a validator accepting only the listed values.
func oneOf(valid ...string) FlagValidatorType {
	return func(value any) error {
		s, _ := value.(string)
		if !slices.Contains(valid, s) {
			return fmt.Errorf("must be one of %v", valid)
		}
		return nil
	}
}

func OutputValidator(value any) error {
	return oneOf("text", "json", "raw", "yaml")(value)
}

// FormatValidator accepts the render targets.
func FormatValidator(value any) error {
	return oneOf("html", "text")(value)
}

// ExportFormatValidator accepts the snapshot encodings.
func ExportFormatValidator(value any) error {
	return oneOf("json", "yaml")(value)
}

// AddrValidator accepts host:port listen addresses. The host may be empty.
func AddrValidator(value any) error {
	s, _ := value.(string)
	_, port, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("invalid listen address %q: %w", s, err)
	}
	if n, err := strconv.Atoi(port); err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("invalid port %q", port)
	}
	return nil
}
