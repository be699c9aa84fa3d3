package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainmocks "github.com/mouse-blink/poematic/internal/domain/mocks"
)

func TestCheckCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "diacritics and case", args: []string{"Zęby żółw", "ZEBY zolw"}},
		{name: "punctuation in expected", args: []string{"It’s late, love!", "it's late love"}},
		{name: "wrong word", args: []string{"hello world", "hello there"}, wantErr: errNoMatch},
		{name: "too few words", args: []string{"hello world", "hello"}, wantErr: errNoMatch},
		{name: "prefix policy", args: []string{"--policy", "prefix", "hello", "hello world"}},
		{name: "identical phrase with numbers", args: []string{"foo 123 bar", "foo 123 bar"}},
		{name: "identical phrase with dashes", args: []string{"Sing -- goddess, 1. the wrath", "Sing -- goddess, 1. the wrath"}},
		{name: "numbers are not compared", args: []string{"foo 123 bar", "foo bar"}},
		{name: "numbers do not stand in for words", args: []string{"foo 123 bar", "foo 123"}, wantErr: errNoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withWorkflow(t, domainmocks.NewMockWorkflow(t))

			var out bytes.Buffer

			cmd := newRootCmd()
			cmd.AddCommand(newCheckCmd())
			cmd.SetOut(&out)
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(append([]string{"check", "--config", ""}, tt.args...))

			err := cmd.Execute()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, out.String())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "match\n", out.String())
		})
	}
}

func TestCheckCmd_NeedsTwoArgs(t *testing.T) {
	withWorkflow(t, domainmocks.NewMockWorkflow(t))

	cmd := newRootCmd()
	cmd.AddCommand(newCheckCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"check", "only-one"})

	require.Error(t, cmd.Execute())
}
