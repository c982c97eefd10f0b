package cmd

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	pkgerr "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"massnet.org/shasum/cmdutils"
	"massnet.org/shasum/config"
	"massnet.org/shasum/digestpool"
	"massnet.org/shasum/errors"
	"massnet.org/shasum/logging"
	"massnet.org/shasum/version"
)

const (
	defaultLogFilename = "sha256batch"
	maxLineSize        = 64 * 1024 * 1024
)

type batchFlags struct {
	cmdutils.Flags
	workers   int
	cacheSize int
}

// NewRootCmd builds the sha256batch command. Every line of the input file,
// or of stdin when no file is given, is hashed as a separate input.
func NewRootCmd() *cobra.Command {
	f := new(batchFlags)
	var cfg *config.Config
	cmd := &cobra.Command{
		Use:   filepath.Base(os.Args[0]) + " [file]",
		Short: "Print the SHA-256 digest of every line of a file",
		Long: "Print the SHA-256 digest of every line of a file, or of stdin when no file is given.\n" +
			"Lines end at '\\n'. A trailing '\\r' is part of the line and is hashed with it.",
		Args:    cmdutils.UsageArgs(cobra.MaximumNArgs(1)),
		Version: version.GetVersion(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err = cmdutils.LoadConfig(cmd, &f.Flags, map[string]string{
				"batch.workers":    "workers",
				"batch.cache_size": "cache_size",
			})
			if err != nil {
				return err
			}
			return cmdutils.InitLogger(cfg, defaultLogFilename)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				file, err := os.Open(args[0])
				if err != nil {
					return errors.New(errors.ErrReadInput, err)
				}
				defer file.Close()
				in = file
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()
			return runBatch(ctx, cfg.Batch, in, cmd.OutOrStdout())
		},
	}
	cmdutils.SilenceCobra(cmd)
	cmdutils.AddPersistentFlags(cmd, &f.Flags)
	cmd.Flags().IntVar(&f.workers, "workers", 0, "number of hashing workers (default is the number of CPUs)")
	cmd.Flags().IntVar(&f.cacheSize, "cache_size", config.DefaultCacheSize, "number of digests kept for repeated lines, 0 disables the cache")
	return cmd
}

func readLines(r io.Reader) ([][]byte, error) {
	var lines [][]byte
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	scanner.Split(scanRawLines)
	for scanner.Scan() {
		lines = append(lines, append([]byte(nil), scanner.Bytes()...))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.New(errors.ErrReadInput, err)
	}
	return lines, nil
}

// scanRawLines splits on '\n' only and keeps any '\r' in the token.
func scanRawLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func runBatch(ctx context.Context, cfg *config.Batch, r io.Reader, w io.Writer) error {
	lines, err := readLines(r)
	if err != nil {
		return err
	}

	pool := digestpool.NewPool(cfg.Workers, cfg.CacheSize)
	if err := pool.Start(); err != nil {
		return err
	}
	defer pool.Stop()

	results, err := pool.HashAll(ctx, lines)
	if err != nil {
		return pkgerr.Wrap(err, "hash lines")
	}

	bw := bufio.NewWriter(w)
	for _, res := range results {
		if res.Err != nil {
			return errors.New(errors.ErrInputTooLarge, pkgerr.Wrapf(res.Err, "line %d", res.Index+1))
		}
		fmt.Fprintf(bw, "%s  %s\n", res.Digest, lines[res.Index])
	}
	logging.VPrint(logging.INFO, "batch hashed", logging.LogFormat{"lines": len(lines), "workers": cfg.Workers})
	return bw.Flush()
}

// Execute runs the sha256batch command, called by main.main().
func Execute() {
	cmdutils.Execute(NewRootCmd())
}
