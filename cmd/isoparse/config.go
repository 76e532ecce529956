package main

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/imarsman/iso8601"
	"github.com/spf13/cobra"
)

// parserConfig flags shared by the commands that parse input
type parserConfig struct {
	strict    bool
	separator string
	reference string
	location  string
}

func (c *parserConfig) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&c.strict, "strict", false, "reject lenient forms such as a single digit year")
	cmd.Flags().StringVar(&c.separator, "separator", ":", "time field separator")
	cmd.Flags().StringVar(&c.reference, "reference", "", "date used for implicit fields (default today)")
	cmd.Flags().StringVar(&c.location, "location", "UTC", "zone for input without an offset")
}

func (c *parserConfig) options() (iso8601.Options, error) {
	opts := iso8601.DefaultOptions()
	opts.Strict = c.strict
	if utf8.RuneCountInString(c.separator) != 1 {
		return opts, fmt.Errorf("separator must be a single character: %q", c.separator)
	}
	opts.TimeSeparator, _ = utf8.DecodeRuneInString(c.separator)

	return opts, nil
}

func (c *parserConfig) loadLocation() (*time.Location, error) {
	location, err := time.LoadLocation(c.location)
	if err != nil {
		return nil, fmt.Errorf("load location: %w", err)
	}
	return location, nil
}

// parser build a parser from the flags. The reference date is itself parsed
// as ISO-8601 against today.
func (c *parserConfig) parser() (*iso8601.Parser, *time.Location, error) {
	opts, err := c.options()
	if err != nil {
		return nil, nil, err
	}
	location, err := c.loadLocation()
	if err != nil {
		return nil, nil, err
	}

	reference := iso8601.ReferenceFromTime(time.Now().In(location))
	if c.reference != "" {
		t, err := iso8601.NewParser(iso8601.DefaultOptions(), reference).ParseInLocation(c.reference, location)
		if err != nil {
			return nil, nil, fmt.Errorf("parse reference: %w", err)
		}
		reference = iso8601.ReferenceFromTime(t)
	}
	log.Debugf("reference date %04d-%02d-%02d", reference.Year, reference.Month, reference.Day)

	return iso8601.NewParser(opts, reference), location, nil
}
