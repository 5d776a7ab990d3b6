package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"

	flatwire "github.com/tksm/flatwire"
	"github.com/tksm/flatwire/codec"
	"github.com/tksm/flatwire/i18n"
	"github.com/tksm/flatwire/jsonkv"
)

// CLI defines the command-line interface.
var CLI struct {
	Build   BuildCmd   `cmd:"" help:"Assemble a flat JSON payload from a YAML definition."`
	Extract ExtractCmd `cmd:"" help:"Extract fields from a flat JSON payload."`
	Stamp   StampCmd   `cmd:"" help:"Format or decode the fixed-width YYMMDDSSSSS timestamp."`

	Lang string `help:"Message language for reported issues (en/ja)." default:"en"`
}

// payloadDef is the YAML shape consumed by the build command.
type payloadDef struct {
	Capacity int `yaml:"capacity"`
	Pairs    []struct {
		Key     string   `yaml:"key"`
		Value   string   `yaml:"value"`
		Numeric bool     `yaml:"numeric"`
		Items   []string `yaml:"items"`
	} `yaml:"pairs"`
}

// BuildCmd reads a payload definition and writes the assembled flat JSON
// object to stdout.
type BuildCmd struct {
	Input    string `arg:"" optional:"" help:"Path to a YAML payload definition. Reads stdin when omitted." type:"path"`
	Capacity int    `help:"Output capacity in bytes; overrides the definition's capacity." short:"c"`
	KeyCase  string `help:"Normalize explicit keys." enum:"asis,snake,camel,lowerCamel" default:"asis"`
	Verify   bool   `help:"Re-parse the result with a full JSON decoder before printing." short:"V"`
}

func (b *BuildCmd) Run() error { return b.run(os.Stdout) }

func (b *BuildCmd) run(out io.Writer) error {
	data, err := readInput(b.Input)
	if err != nil {
		return err
	}
	var def payloadDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return fmt.Errorf("payload definition: %w", err)
	}

	pairs := make([]jsonkv.Pair, 0, len(def.Pairs))
	for _, p := range def.Pairs {
		pairs = append(pairs, jsonkv.Pair{Key: p.Key, Value: p.Value, Numeric: p.Numeric, Items: p.Items})
	}

	opts := []jsonkv.Option{jsonkv.WithKeyCase(keyCase(b.KeyCase))}
	switch {
	case b.Capacity > 0:
		opts = append(opts, jsonkv.WithCapacity(b.Capacity))
	case def.Capacity > 0:
		opts = append(opts, jsonkv.WithCapacity(def.Capacity))
	}

	doc, err := jsonkv.Build(pairs, opts...)
	if err != nil {
		// a clamped payload is still printed; the issue goes to stderr
		if iss, ok := flatwire.AsIssues(err); !ok || iss[0].Code != flatwire.CodeTruncated {
			return err
		}
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
	if b.Verify {
		if err := jsonkv.Verify(doc); err != nil {
			return err
		}
	}
	fmt.Fprintln(out, doc.String())
	return nil
}

// ExtractCmd pulls named fields out of a flat JSON payload, one per line.
type ExtractCmd struct {
	Input string   `arg:"" optional:"" help:"Path to the payload. Reads stdin when omitted." type:"path"`
	Field []string `help:"Scalar field to extract; repeatable." short:"f"`
	Array string   `help:"Flat array field to extract." short:"a"`
	Bool  []string `help:"Field to coerce to a boolean (ON/TRUE are true); repeatable." short:"b"`
}

func (e *ExtractCmd) Run() error { return e.run(os.Stdout) }

func (e *ExtractCmd) run(out io.Writer) error {
	data, err := readInput(e.Input)
	if err != nil {
		return err
	}
	doc := flatwire.Of(strings.TrimSpace(string(data)))

	for _, name := range e.Field {
		fmt.Fprintf(out, "%s=%s\n", name, jsonkv.Field(doc, name))
	}
	for _, name := range e.Bool {
		fmt.Fprintf(out, "%s=%t\n", name, jsonkv.Bool(jsonkv.Field(doc, name)))
	}
	if e.Array != "" {
		items, err := jsonkv.Array(doc, e.Array)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s=%s\n", e.Array, strings.Join(items, " "))
	}
	return nil
}

// StampCmd formats time components as YYMMDDSSSSS, or decodes such a stamp
// back into components.
type StampCmd struct {
	Year   int    `help:"Year component." default:"-1"`
	Month  int    `help:"Month component (1-12)."`
	Day    int    `help:"Day component (1-31)."`
	Hour   int    `help:"Hour component (0-23)."`
	Minute int    `help:"Minute component (0-59)."`
	Second int    `help:"Second component (0-59)."`
	Now    bool   `help:"Use the current local time instead of components."`
	Decode string `help:"Decode the given YYMMDDSSSSS stamp instead of encoding." placeholder:"STAMP"`
}

func (s *StampCmd) Run() error { return s.run(os.Stdout) }

func (s *StampCmd) run(out io.Writer) error {
	c := codec.Stamp()

	if s.Decode != "" {
		clk, err := c.Decode(flatwire.Of(s.Decode))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "year=%02d month=%02d day=%02d time=%02d:%02d:%02d\n",
			clk.Year, clk.Month, clk.Day, clk.Hour, clk.Minute, clk.Second)
		return nil
	}

	clk := codec.Clock{Year: s.Year, Month: s.Month, Day: s.Day, Hour: s.Hour, Minute: s.Minute, Second: s.Second}
	if s.Now || s.Year < 0 {
		t := time.Now()
		clk = codec.Clock{
			Year: t.Year(), Month: int(t.Month()), Day: t.Day(),
			Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(),
		}
	}
	wire, err := c.Encode(clk)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, wire.String())
	return nil
}

func keyCase(s string) jsonkv.KeyCase {
	switch s {
	case "snake":
		return jsonkv.KeySnake
	case "camel":
		return jsonkv.KeyCamel
	case "lowerCamel":
		return jsonkv.KeyLowerCamel
	default:
		return jsonkv.KeyAsIs
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("flatwire"),
		kong.Description("Bounded-string flat JSON payloads and fixed-width timestamps."),
		kong.UsageOnError(),
	)
	i18n.SetLanguage(CLI.Lang)
	if err := ctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "flatwire:", err)
		os.Exit(1)
	}
}
