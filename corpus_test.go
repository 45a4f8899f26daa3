package rvn

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type corpusCase struct {
	Name  string `yaml:"name"`
	Input string `yaml:"input"`
	OK    bool   `yaml:"ok"`
	Rest  string `yaml:"rest"`
}

type corpus struct {
	Cases []corpusCase `yaml:"cases"`
}

func TestCorpus(t *testing.T) {
	b, err := os.ReadFile("testdata/corpus.yaml")
	require.NoError(t, err)

	var c corpus
	require.NoError(t, yaml.Unmarshal(b, &c))
	require.NotEmpty(t, c.Cases)

	for _, tt := range c.Cases {
		t.Run(tt.Name, func(t *testing.T) {
			rest, err := UnmarshalPartial([]byte(tt.Input), Skip())
			if !tt.OK {
				require.ErrorIs(t, err, ErrTooShort)

				// Failure positions stay within the original input.
				require.LessOrEqual(t, len(rest), len(tt.Input))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.Rest, string(rest))
		})
	}
}
