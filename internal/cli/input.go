package cli

import (
	"context"
	"os"
	"strings"

	"code.cloudfoundry.org/bytefmt"
	"github.com/pi/bitbuf"
	"github.com/pi/bitbuf/gut"
	bsync "github.com/pi/bitbuf/sync"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	hexPrefix  = "hex:"
	binPrefix  = "bin:"
	filePrefix = "@"
)

// Load decodes one input argument:
//
//	hex:ffee01   hex digits, 4 bits each
//	bin:1011     binary digits
//	@path        the raw bytes of a file
//
// Anything else is read as hex.
func Load(arg string) (*bitbuf.BitBuffer, error) {
	switch {
	case strings.HasPrefix(arg, hexPrefix):
		return bitbuf.ParseHex(arg[len(hexPrefix):])
	case strings.HasPrefix(arg, binPrefix):
		return bitbuf.ParseBinary(arg[len(binPrefix):])
	case strings.HasPrefix(arg, filePrefix):
		data, err := os.ReadFile(arg[len(filePrefix):])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", arg[len(filePrefix):])
		}
		return bitbuf.Wrap(data)
	default:
		return bitbuf.ParseHex(arg)
	}
}

// LoadAll decodes args concurrently, preserving their order.
func LoadAll(ctx context.Context, logger *zap.Logger, workers int, args []string) ([]*bitbuf.BitBuffer, error) {
	out := make([]*bitbuf.BitBuffer, len(args))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, arg := range args {
		i, arg := i, arg
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			b, err := Load(arg)
			if err != nil {
				return errors.WithMessagef(err, "input %d", i)
			}
			logger.Debug("loaded input",
				zap.Int("index", i),
				zap.Int64("bits", b.Len()),
				zap.String("size", bytefmt.ByteSize(uint64((b.Len()+7)/8))),
			)
			out[i] = b
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Combine folds the operands into a copy of acc with op, applying them
// concurrently. Only order-independent operations (and, or, xor) are valid.
func Combine(ctx context.Context, workers int, op string, acc *bitbuf.BitBuffer, operands []*bitbuf.BitBuffer) (*bitbuf.BitBuffer, error) {
	var apply func(b, o *bitbuf.BitBuffer) (int64, error)
	switch op {
	case "and":
		apply = (*bitbuf.BitBuffer).And
	case "or":
		apply = (*bitbuf.BitBuffer).Or
	case "xor":
		apply = (*bitbuf.BitBuffer).Xor
	default:
		return nil, errors.Wrapf(gut.ErrInvalidArgument, "invalid operation; expected: and, or or xor, given: %q", op)
	}

	g, err := bsync.NewGuard(acc.Clone())
	if err != nil {
		return nil, err
	}
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for _, o := range operands {
		o := o
		eg.Go(func() error {
			return g.Do(egCtx, func(b *bitbuf.BitBuffer) error {
				_, err := apply(b, o)
				return err
			})
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return g.Snapshot(ctx)
}
