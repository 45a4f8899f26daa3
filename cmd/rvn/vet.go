package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/anaminus/rvn"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/blake2b"
)

var digest bool

var vetCmd = &cobra.Command{
	Use:   "vet [FILE...]",
	Short: "Check that files parse as RVN",
	Long: `Vet parses each FILE as a single RVN value and reports the position of
the first malformed byte, if any. A FILE of "-" or no files at all reads
from stdin. Tagged values are not decodable and are reported as malformed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{"-"}
		}
		failed := 0
		for _, path := range args {
			if err := vetFile(path); err != nil {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed", failed, len(args))
		}
		return nil
	},
}

func init() {
	vetCmd.Flags().BoolVar(&digest, "digest", false, "also print a BLAKE2b-256 digest of each file's content")
	rootCmd.AddCommand(vetCmd)
}

func vetFile(path string) error {
	var r io.Reader = os.Stdin
	name := "stdin"
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			logrus.WithError(err).Error("open")
			return err
		}
		defer f.Close()
		r = f
		name = path
	}
	b, err := io.ReadAll(r)
	if err != nil {
		logrus.WithError(err).WithField("file", name).Error("read")
		return err
	}

	if digest {
		sum := blake2b.Sum256(b)
		fmt.Printf("%s  %s\n", hex.EncodeToString(sum[:]), name)
	}

	rest, err := rvn.UnmarshalPartial(b, rvn.Skip())
	if err == nil && len(rest) > 0 {
		err = rvn.ErrTooShort
	}
	if err != nil {
		line, col := position(b, len(b)-len(rest))
		logrus.WithFields(logrus.Fields{
			"file":   name,
			"line":   line,
			"column": col,
			"offset": len(b) - len(rest),
		}).Error("malformed value")
		return err
	}
	fmt.Printf("ok  %s\n", name)
	return nil
}

// position converts a byte offset into a 1-indexed line and column.
func position(b []byte, offset int) (line, col int) {
	line, col = 1, 1
	for _, c := range b[:offset] {
		if c == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
