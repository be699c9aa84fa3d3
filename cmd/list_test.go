package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/poematic/internal/domain"
	domainmocks "github.com/mouse-blink/poematic/internal/domain/mocks"
	m "github.com/mouse-blink/poematic/internal/model"
)

func TestListCmd_Preview(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().Preview(domain.PreviewArgs{
		Corpus:    []m.Path{"odes/..."},
		HideCount: 2,
		Seed:      5,
	}).Return(nil)

	cmd.SetArgs([]string{"list", "--config", "", "--hide", "2", "--seed", "5", "odes/..."})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_DefaultCorpus(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	t.Setenv("POEMATIC_CORPUS", "a.txt")

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().Preview(domain.PreviewArgs{
		Corpus:    []m.Path{"a.txt"},
		HideCount: 1,
	}).Return(nil)

	cmd.SetArgs([]string{"list", "--config", ""})
	require.NoError(t, cmd.Execute())
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()
	if cmd.Use != "list [files...]" {
		t.Errorf("newListCmd() Use = %v, want %v", cmd.Use, "list [files...]")
	}
	if cmd.Short == "" {
		t.Error("newListCmd() Short should not be empty")
	}
}
