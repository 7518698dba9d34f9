package main

import (
	flag "github.com/spf13/pflag"
)

// exportFlags holds all flags of the export command.
type exportFlags struct {
	in       string
	out      string
	format   string
	event    string
	contact  string
	tzOffset int

	guide       bool
	frontMatter bool
	prompts     bool
	all         bool
	quiet       bool
}

func newFlagSet(f *exportFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("qaexport", flag.ContinueOnError)
	fs.StringVarP(&f.in, "in", "i", "", "JSON or YAML file of questions (\"\" or \"-\" = stdin)")
	fs.StringVarP(&f.out, "out", "o", "", "output file (default 질문답변모음.<format>, \"-\" = stdout)")
	fs.StringVarP(&f.format, "format", "f", "md", "output format: md, docx")
	fs.StringVar(&f.event, "event", "", "event title used in the guide and front matter")
	fs.StringVar(&f.contact, "contact", "", "contact line for the guide's document info")
	fs.IntVar(&f.tzOffset, "tz-offset", 9, "timestamp zone in hours east of UTC")
	fs.BoolVar(&f.guide, "guide", false, "include the reader guide and tag taxonomy")
	fs.BoolVar(&f.frontMatter, "front-matter", false, "prepend YAML front matter (md only)")
	fs.BoolVar(&f.prompts, "prompts", false, "include the LLM prompt used for each question")
	fs.BoolVar(&f.all, "all", false, "include questions without answers")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	return fs
}

// parseFlags parses args (without the program name).
func parseFlags(args []string) (*exportFlags, error) {
	f := &exportFlags{}
	fs := newFlagSet(f)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 && f.in == "" {
		f.in = fs.Arg(0)
	}
	return f, nil
}
