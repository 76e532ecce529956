package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func run(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestCheck(t *testing.T) {
	is := is.New(t)

	out, err := run("check", "--", "2018-02-05", "2018-W06-1", "--036")
	is.NoErr(err)
	is.Equal(out, "ok\t2018-02-05\nok\t2018-W06-1\nok\t--036\n")

	out, err = run("check", "--strict", "2018-02-05", "18-2-5")
	is.True(err != nil) // one input fails
	is.Equal(out, "ok\t2018-02-05\ninvalid\t18-2-5\n")
}

func TestParseFormats(t *testing.T) {
	is := is.New(t)

	var tests = []struct {
		format string
		input  string
		want   string
	}{
		{"iso", "2018-02-05T10:30:15+05:30", "2018-02-05T10:30:15+05:30"},
		{"msec", "20180205T103015.250Z", "2018-02-05T10:30:15.250+00:00"},
		{"compact", "2018-02-05T10:30:15-07:00", "20180205T103015-0700"},
		{"basic", "2018-W06-1", "20180205"},
		{"extended", "2018036", "2018-02-05"},
		{"week", "2018-02-05", "2018-W06-1"},
		{"ordinal", "2018-W06-1", "2018-036"},
		{"extended", "--02-05", "2018-02-05"},
	}

	for _, tt := range tests {
		out, err := run("parse", "--reference", "2018-06-01", "-f", tt.format, "--", tt.input)
		is.NoErr(err)
		is.Equal(strings.TrimSpace(out), tt.want)
	}
}

func TestParseText(t *testing.T) {
	is := is.New(t)

	out, err := run("parse", "2018-W06-1T10:00Z")
	is.NoErr(err)
	is.True(strings.Contains(out, "style:      week\n"))
	is.True(strings.Contains(out, "date:       2018-02-05 (day 36)\n"))
	is.True(strings.Contains(out, "zone:       Z\n"))
	is.True(strings.Contains(out, "instant:    2018-02-05T10:00:00.000+00:00 (+00:00)\n"))
}

func TestParseFlags(t *testing.T) {
	is := is.New(t)

	out, err := run("parse", "--separator", ".", "-f", "iso", "2018-02-05T10.30.15")
	is.NoErr(err)
	is.Equal(strings.TrimSpace(out), "2018-02-05T10:30:15+00:00")

	_, err = run("parse", "--separator", "::", "2018")
	is.True(err != nil) // separator must be one rune

	_, err = run("parse", "-f", "rfc", "2018")
	is.True(err != nil) // unknown format

	_, err = run("parse", "--location", "Not/AZone", "2018")
	is.True(err != nil)

	_, err = run("parse", "--strict", "2018-02-05T25:00")
	is.True(err != nil)
}
