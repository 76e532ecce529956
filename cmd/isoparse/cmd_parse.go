package main

import (
	"fmt"
	"io"
	"time"

	"github.com/imarsman/iso8601"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var config parserConfig
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <input>...",
		Short: "Parse ISO-8601 input and print its components and instant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := formatter(outputFormat)
			if err != nil {
				return err
			}
			p, location, err := config.parser()
			if err != nil {
				return err
			}

			var failed error
			for _, input := range args {
				rec, err := p.Parse(input)
				if err != nil {
					log.Errorf("%s", err)
					failed = err
					continue
				}
				log.Debugf("parsed %q as %s date", input, rec.Style)

				t := rec.Time(location)
				if format == nil {
					printRecord(cmd.OutOrStdout(), input, rec, t)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), format(t))
			}

			return failed
		},
	}
	config.bind(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, iso, msec, compact, basic, extended, week, ordinal)")

	return cmd
}

// formatter nil means the text report
func formatter(name string) (func(time.Time) string, error) {
	switch name {
	case "text":
		return nil, nil
	case "iso":
		return iso8601.ISO8601, nil
	case "msec":
		return iso8601.ISO8601Msec, nil
	case "compact":
		return iso8601.ISO8601Compact, nil
	case "basic":
		return iso8601.FormatBasic, nil
	case "extended":
		return iso8601.FormatExtended, nil
	case "week":
		return iso8601.FormatWeek, nil
	case "ordinal":
		return iso8601.FormatOrdinal, nil
	}
	return nil, fmt.Errorf("unknown format: %s", name)
}

func printRecord(w io.Writer, input string, rec iso8601.Record, t time.Time) {
	c := rec.Components()
	zone := "none"
	if rec.Zone != nil {
		zone = rec.Zone.String()
	}
	offset, _ := iso8601.LocationOffsetStringDelimited(iso8601.OffsetForTime(t))

	fmt.Fprintf(w, "input:      %s\n", input)
	fmt.Fprintf(w, "style:      %s\n", rec.Style)
	fmt.Fprintf(w, "date:       %04d-%02d-%02d (day %d)\n", c.Year, int(c.Month), c.Day, rec.OrdinalDay())
	fmt.Fprintf(w, "time:       %02d:%02d:%02d.%09d\n", c.Hour, c.Minute, c.Second, c.Nanosecond)
	fmt.Fprintf(w, "zone:       %s\n", zone)
	fmt.Fprintf(w, "instant:    %s (%s)\n", iso8601.ISO8601Msec(t), offset)
	fmt.Fprintf(w, "week date:  %s\n", iso8601.FormatWeek(t))
}
