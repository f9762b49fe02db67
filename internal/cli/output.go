package cli

import (
	"fmt"
	"io"
	"strconv"

	"code.cloudfoundry.org/bytefmt"
	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"github.com/pi/bitbuf"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Summary is the printable view of a buffer.
type Summary struct {
	Bits   int64  `yaml:"bits"`
	Size   string `yaml:"size"`
	Ones   int64  `yaml:"ones"`
	Hex    string `yaml:"hex"`
	Binary string `yaml:"binary"`
}

// Renderer writes command results in the configured format.
type Renderer struct {
	w   io.Writer
	cfg *Config
}

func NewRenderer(w io.Writer, cfg *Config) *Renderer {
	return &Renderer{w: w, cfg: cfg}
}

func (r *Renderer) Summarize(b *bitbuf.BitBuffer) (*Summary, error) {
	hex, err := b.FormatHex(r.cfg.Group, r.cfg.Separator)
	if err != nil {
		return nil, err
	}
	bin, err := b.FormatBinary(r.cfg.Group, r.cfg.Separator)
	if err != nil {
		return nil, err
	}
	return &Summary{
		Bits:   b.Len(),
		Size:   bytefmt.ByteSize(uint64((b.Len() + 7) / 8)),
		Ones:   b.OnesCount(),
		Hex:    hex,
		Binary: bin,
	}, nil
}

// Buffer prints one buffer.
func (r *Renderer) Buffer(b *bitbuf.BitBuffer) error {
	s, err := r.Summarize(b)
	if err != nil {
		return err
	}
	if r.cfg.Output == OutputYAML {
		return r.yaml(s)
	}
	_, err = fmt.Fprintf(r.w, "bits:   %d (%s)\nones:   %d\nhex:    %s\nbinary: %s\n", s.Bits, s.Size, s.Ones, s.Hex, s.Binary)
	return err
}

// Value prints a scalar result.
func (r *Renderer) Value(v interface{}) error {
	if r.cfg.Output == OutputYAML {
		return r.yaml(map[string]interface{}{"value": v})
	}
	_, err := fmt.Fprintln(r.w, v)
	return err
}

// Values prints a list of scalar results.
func (r *Renderer) Values(vs interface{}) error {
	if r.cfg.Output == OutputYAML {
		return r.yaml(map[string]interface{}{"values": vs})
	}
	_, err := fmt.Fprintln(r.w, vs)
	return err
}

// Pieces prints a table of buffers, one row each.
func (r *Renderer) Pieces(pieces []*bitbuf.BitBuffer) error {
	if r.cfg.Output == OutputYAML {
		out := make([]*Summary, 0, len(pieces))
		for _, p := range pieces {
			s, err := r.Summarize(p)
			if err != nil {
				return err
			}
			out = append(out, s)
		}
		return r.yaml(out)
	}

	table := tablewriter.NewWriter(r.w)
	table.SetHeader([]string{"#", "bits", "hex", "binary"})
	table.SetBorder(true)
	for i, p := range pieces {
		s, err := r.Summarize(p)
		if err != nil {
			return err
		}
		table.Append([]string{strconv.Itoa(i), strconv.FormatInt(s.Bits, 10), s.Hex, s.Binary})
	}
	table.Render()
	return nil
}

// Dump writes the Go representation of v.
func (r *Renderer) Dump(v interface{}) {
	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
	cfg.Fdump(r.w, v)
}

func (r *Renderer) yaml(v interface{}) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode yaml")
	}
	return enc.Close()
}
