package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun_DefaultSingleGame(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "A  "))
	assert.Len(t, strings.Fields(lines[0]), 7)
}

func TestRun_SeedIsReproducible(t *testing.T) {
	first, err := execute(t, "--games", "5", "--seed", "645")
	require.NoError(t, err)
	second, err := execute(t, "-n", "5", "--seed", "645")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 5, strings.Count(first, "\n"))
	assert.Contains(t, first, "E  ")
}

func TestRun_InvalidGames(t *testing.T) {
	for _, games := range []string{"0", "6", "-1"} {
		_, err := execute(t, "--games", games)
		assert.Error(t, err, "games=%s", games)
	}
}

func TestRun_JSON(t *testing.T) {
	out, err := execute(t, "--json", "--games", "2", "--seed", "3")
	require.NoError(t, err)

	var games []struct {
		Label   string `json:"label"`
		ID      string `json:"id"`
		Numbers []int  `json:"numbers"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &games))
	require.Len(t, games, 2)

	for i, g := range games {
		assert.Equal(t, string(rune('A'+i)), g.Label)
		assert.NotEmpty(t, g.ID)
		require.Len(t, g.Numbers, 6)
		for j := 1; j < len(g.Numbers); j++ {
			assert.Less(t, g.Numbers[j-1], g.Numbers[j])
		}
	}
}

func TestRun_Grid(t *testing.T) {
	out, err := execute(t, "--grid", "--seed", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// header plus seven slip rows
	require.Len(t, lines, 8)
	assert.Equal(t, 6, strings.Count(out, "[]"))
	assert.Len(t, strings.Fields(lines[7]), 3)
}
