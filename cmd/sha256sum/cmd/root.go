package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pkgerr "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"massnet.org/shasum/cmdutils"
	"massnet.org/shasum/crypto/sha256"
	"massnet.org/shasum/errors"
	"massnet.org/shasum/logging"
	"massnet.org/shasum/version"
)

const defaultLogFilename = "sha256sum"

type hashFlags struct {
	cmdutils.Flags
	verify string
	double bool
}

// NewRootCmd builds the sha256sum command: one positional argument, its
// digest printed to stdout.
func NewRootCmd() *cobra.Command {
	f := new(hashFlags)
	cmd := &cobra.Command{
		Use:     filepath.Base(os.Args[0]) + " <text>",
		Short:   "Print the SHA-256 digest of a string",
		Long:    "Print the SHA-256 digest of the UTF-8 bytes of <text> as 64 lowercase hex characters.",
		Args:    cmdutils.UsageArgs(cobra.ExactArgs(1)),
		Version: version.GetVersion(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdutils.LoadConfig(cmd, &f.Flags, nil)
			if err != nil {
				return err
			}
			return cmdutils.InitLogger(cfg, defaultLogFilename)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(cmd, f, args[0])
		},
	}
	cmdutils.SilenceCobra(cmd)
	cmdutils.AddPersistentFlags(cmd, &f.Flags)
	cmd.Flags().StringVar(&f.verify, "verify", "", "expected digest, exit non-zero if it does not match")
	cmd.Flags().BoolVar(&f.double, "double", false, "print sha256(sha256(text)) instead")
	return cmd
}

func runHash(cmd *cobra.Command, f *hashFlags, text string) error {
	sum := sha256.Sum256
	if f.double {
		sum = sha256.DoubleSum256
	}
	d, err := sum([]byte(text))
	if err != nil {
		return errors.New(errors.ErrInputTooLarge, err)
	}
	logging.VPrint(logging.DEBUG, "hashed input", logging.LogFormat{
		"size":   len(text),
		"blocks": sha256.BlockCount(len(text)),
		"double": f.double,
	})
	fmt.Fprintln(cmd.OutOrStdout(), d.String())

	if f.verify == "" {
		return nil
	}
	want, err := sha256.DecodeStringToDigest(strings.ToLower(f.verify))
	if err != nil {
		return errors.New(errors.ErrInvalidDigest, err)
	}
	if want != d {
		return errors.New(errors.ErrDigestMismatch, pkgerr.Errorf("got %s, want %s", d, want))
	}
	return nil
}

// Execute runs the sha256sum command, called by main.main().
func Execute() {
	cmdutils.Execute(NewRootCmd())
}
