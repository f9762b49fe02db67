package cli

import (
	"context"
	"io"
	"strconv"

	"github.com/pi/bitbuf"
	"github.com/pi/bitbuf/gut"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *Config
	logger  *zap.Logger
}

// NewRootCommand returns the bitbuf command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{v: NewViper()})
}

func newRootCommand(a *app) *cobra.Command {
	def := DefaultConfig()

	root := &cobra.Command{
		Use:           "bitbuf",
		Short:         "Inspect and edit bit-addressed buffers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (yaml)")
	flags.StringP("output", "o", def.Output, "output format (text, yaml)")
	flags.IntP("group", "g", def.Group, "bits per printed group")
	flags.String("separator", def.Separator, "separator between printed groups")
	flags.String("log-level", def.LogLevel, "log level (debug, info, warn, error)")
	flags.Int("workers", def.Workers, "concurrent workers for multi-input commands")
	bindFlags(a.v, flags, "output", "group", "separator", "log-level", "workers")

	root.AddCommand(
		a.showCmd(),
		a.getCmd(),
		a.putCmd(),
		a.splitCmd(),
		a.logicCmd(),
		a.shiftCmd(),
		a.convertCmd(),
		a.fieldsCmd(),
		a.concatCmd(),
	)
	return root
}

// bindFlags lets the named flags override the config file and environment
// when set on the command line.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}
}

func (a *app) load() error {
	cfg, err := LoadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if a.logger == nil {
		logger, err := NewLogger(cfg.LogLevel)
		if err != nil {
			return errors.Wrap(err, "failed to initialize zap logger")
		}
		a.logger = logger
	}
	return nil
}

func (a *app) out(cmd *cobra.Command) *Renderer {
	return NewRenderer(cmd.OutOrStdout(), a.cfg)
}

func (a *app) showCmd() *cobra.Command {
	var dump bool
	cmd := &cobra.Command{
		Use:   "show <input>",
		Short: "Print a buffer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := Load(args[0])
			if err != nil {
				return err
			}
			r := a.out(cmd)
			if dump {
				s, err := r.Summarize(b)
				if err != nil {
					return err
				}
				r.Dump(s)
				return nil
			}
			return r.Buffer(b)
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the summary structure")
	return cmd
}

func (a *app) getCmd() *cobra.Command {
	var signed bool
	cmd := &cobra.Command{
		Use:   "get <input> <pos> <width>",
		Short: "Read a field of 1 to 64 bits",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := Load(args[0])
			if err != nil {
				return err
			}
			pos, width, err := parsePosWidth(args[1], args[2])
			if err != nil {
				return err
			}
			if signed {
				v, err := b.GetSignedBits(pos, width)
				if err != nil {
					return err
				}
				return a.out(cmd).Value(v)
			}
			v, err := b.GetBits(pos, width)
			if err != nil {
				return err
			}
			return a.out(cmd).Value(v)
		},
	}
	cmd.Flags().BoolVar(&signed, "signed", false, "sign-extend the field")
	return cmd
}

func (a *app) putCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "put <input> <pos> <width|auto> <value>",
		Short: "Write a field and print the result",
		Long: `Write a field and print the result.

A width of auto uses the fewest bits that hold the value.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := Load(args[0])
			if err != nil {
				return err
			}
			v, err := strconv.ParseUint(args[3], 0, 64)
			if err != nil {
				return errors.Wrapf(gut.ErrInvalidArgument, "invalid value %q", args[3])
			}
			w := args[2]
			if w == "auto" {
				w = strconv.Itoa(gut.MinWidth(v))
			}
			pos, width, err := parsePosWidth(args[1], w)
			if err != nil {
				return err
			}
			if err := b.PutBits(pos, width, v); err != nil {
				return err
			}
			return a.out(cmd).Buffer(b)
		},
	}
}

func (a *app) splitCmd() *cobra.Command {
	var (
		every int64
		sep   string
		step  int64
	)
	cmd := &cobra.Command{
		Use:   "split <input>",
		Short: "Cut a buffer into fixed-size pieces or around a separator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := Load(args[0])
			if err != nil {
				return err
			}
			var pieces []*bitbuf.BitBuffer
			switch {
			case sep != "":
				s, err := Load(sep)
				if err != nil {
					return errors.WithMessage(err, "separator")
				}
				if step > 1 {
					pieces, err = b.SplitByAligned(s, step)
				} else {
					var st *bitbuf.Stream[*bitbuf.BitBuffer]
					if st, err = b.SplitStream(s); err == nil {
						pieces, err = st.Collect()
					}
				}
				if err != nil {
					return err
				}
			case every > 0:
				if pieces, err = b.Split(every); err != nil {
					return err
				}
			default:
				return errors.Wrap(gut.ErrInvalidArgument, "one of --every or --sep is required")
			}
			a.logger.Debug("split", zap.Int64("bits", b.Len()), zap.Int("pieces", len(pieces)))
			return a.out(cmd).Pieces(pieces)
		},
	}
	cmd.Flags().Int64Var(&every, "every", 0, "piece length in bits")
	cmd.Flags().StringVar(&sep, "sep", "", "separator input")
	cmd.Flags().Int64Var(&step, "step", 1, "only match the separator at multiples of step bits")
	return cmd
}

func (a *app) logicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logic <and|or|xor|not|reverse|reverse-bytes> <input> [operand...]",
		Short: "Apply a bitwise operation",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := args[0]
			bufs, err := LoadAll(ctxOf(cmd), a.logger, a.cfg.Workers, args[1:])
			if err != nil {
				return err
			}
			b := bufs[0]
			switch op {
			case "not":
				b.Not()
			case "reverse":
				b.Reverse()
			case "reverse-bytes":
				if !b.ReverseInBytes() {
					return errors.Wrapf(gut.ErrInvalidArgument, "length %d is not a multiple of 8", b.Len())
				}
			default:
				if b, err = Combine(ctxOf(cmd), a.cfg.Workers, op, b, bufs[1:]); err != nil {
					return err
				}
			}
			return a.out(cmd).Buffer(b)
		},
	}
}

func (a *app) shiftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shift <ll|lr|al|ar|rl|rr> <amount> <input>",
		Short: "Shift or rotate a buffer",
		Long: `Shift or rotate a buffer.

Kinds: ll logical left, lr logical right, al arithmetic left, ar arithmetic
right, rl rotate left, rr rotate right. Amounts outside [1, length-1] leave
the buffer unchanged.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[1], 0, 64)
			if err != nil {
				return errors.Wrapf(gut.ErrInvalidArgument, "invalid amount %q", args[1])
			}
			b, err := Load(args[2])
			if err != nil {
				return err
			}
			shifts := map[string]func(int64){
				"ll": b.LogicalLeft,
				"lr": b.LogicalRight,
				"al": b.ArithmeticLeft,
				"ar": b.ArithmeticRight,
				"rl": b.RotateLeft,
				"rr": b.RotateRight,
			}
			shift, ok := shifts[args[0]]
			if !ok {
				return errors.Wrapf(gut.ErrInvalidArgument, "invalid shift kind %q", args[0])
			}
			shift(n)
			return a.out(cmd).Buffer(b)
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	var (
		to    string
		scale int32
	)
	cmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Interpret a buffer as an array or a number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := Load(args[0])
			if err != nil {
				return err
			}
			r := a.out(cmd)
			switch to {
			case "u8":
				return r.Values(widen(b.ToBytes()))
			case "u16":
				return r.Values(b.ToUint16s())
			case "u32":
				return r.Values(b.ToUint32s())
			case "u64":
				return r.Values(b.ToUint64s())
			case "i8":
				return r.Values(b.ToInt8s())
			case "i16":
				return r.Values(b.ToInt16s())
			case "i32":
				return collect(r, b.Int32Stream())
			case "i64":
				return collect(r, b.Int64Stream())
			case "f32":
				return r.Values(b.ToFloat32s())
			case "f64":
				return collect(r, b.Float64Stream())
			case "bigint":
				return r.Value(b.ToBigInt().String())
			case "ubigint":
				return r.Value(b.ToUnsignedBigInt().String())
			case "decimal":
				return r.Value(b.ToDecimal(scale).String())
			}
			return errors.Wrapf(gut.ErrInvalidArgument, "invalid target %q", to)
		},
	}
	cmd.Flags().StringVar(&to, "to", "u8", "u8, u16, u32, u64, i8, i16, i32, i64, f32, f64, bigint, ubigint or decimal")
	cmd.Flags().Int32Var(&scale, "scale", 0, "decimal scale")
	return cmd
}

func (a *app) fieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields <input> <width>...",
		Short: "Read consecutive fields of the given widths",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := Load(args[0])
			if err != nil {
				return err
			}
			c := bitbuf.NewCursor(b)
			var vs []uint64
			for _, arg := range args[1:] {
				w, err := strconv.Atoi(arg)
				if err != nil {
					return errors.Wrapf(gut.ErrInvalidArgument, "invalid width %q", arg)
				}
				v, n, err := c.ReadBits(w)
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				if n < w {
					a.logger.Info("short field", zap.Int("width", w), zap.Int("read", n))
				}
				vs = append(vs, v)
			}
			return a.out(cmd).Values(vs)
		},
	}
}

func (a *app) concatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "concat <input>...",
		Short: "Join inputs into one buffer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bufs, err := LoadAll(ctxOf(cmd), a.logger, a.cfg.Workers, args)
			if err != nil {
				return err
			}
			var w bitbuf.Builder
			for _, b := range bufs {
				if err := w.AppendBuffer(b); err != nil {
					return err
				}
			}
			return a.out(cmd).Buffer(w.Build())
		},
	}
}

// widen keeps bytes printing as numbers rather than binary data.
func widen(p []byte) []uint {
	out := make([]uint, len(p))
	for i, v := range p {
		out[i] = uint(v)
	}
	return out
}

func collect[T any](r *Renderer, s *bitbuf.Stream[T]) error {
	vs, err := s.Collect()
	if err != nil {
		return err
	}
	return r.Values(vs)
}

func parsePosWidth(p, w string) (int64, int, error) {
	pos, err := strconv.ParseInt(p, 0, 64)
	if err != nil {
		return 0, 0, errors.Wrapf(gut.ErrInvalidArgument, "invalid position %q", p)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return 0, 0, errors.Wrapf(gut.ErrInvalidArgument, "invalid width %q", w)
	}
	return pos, width, nil
}

func ctxOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
