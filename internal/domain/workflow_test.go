package domain

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/poematic/internal/adapter"
	adaptermocks "github.com/mouse-blink/poematic/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/poematic/internal/controller/mocks"
	m "github.com/mouse-blink/poematic/internal/model"
)

func firstSamplerFactory(uint64) Sampler {
	return firstSampler{}
}

func guesses(reader *adaptermocks.MockGuessReader, answers ...string) {
	for _, a := range answers {
		reader.EXPECT().ReadGuess().Return(a, nil).Once()
	}

	reader.EXPECT().ReadGuess().Return("", io.EOF).Maybe()
}

func TestWorkflow_Drill(t *testing.T) {
	t.Run("plays one pass and shows the summary", func(t *testing.T) {
		corpus := adaptermocks.NewMockCorpusAdapter(t)
		reader := adaptermocks.NewMockGuessReader(t)
		ui := controllermocks.NewMockUI(t)

		corpus.EXPECT().Load(m.Path("poem.txt")).Return([]m.Line{"hello world", "foo bar"}, nil)
		guesses(reader, "hello", "baz")

		var rounds []m.Round
		var outcomes []m.Outcome

		ui.EXPECT().Start(mock.Anything).Return(nil)
		ui.EXPECT().DisplayRound(mock.Anything).Run(func(r m.Round) { rounds = append(rounds, r) })
		ui.EXPECT().DisplayOutcome(mock.Anything).Run(func(o m.Outcome) { outcomes = append(outcomes, o) })
		ui.EXPECT().DisplayPassSummary(mock.Anything).Once()
		ui.EXPECT().DisplaySummary(m.SessionSummary{
			Passes:    1,
			Score:     m.Score{Correct: 1, Attempted: 2},
			HideCount: 1,
		}).Once()
		ui.EXPECT().Close().Once()

		wf := NewWorkflow(corpus, reader, ui, WithSamplerFactory(firstSamplerFactory))
		err := wf.Drill(DrillArgs{Corpus: []m.Path{"poem.txt"}, HideCount: 1})
		require.NoError(t, err)

		require.Len(t, rounds, 2)
		assert.Equal(t, m.Line("_____ world"), rounds[0].Hidden.Display)
		assert.Equal(t, m.Line("___ bar"), rounds[1].Hidden.Display)

		require.Len(t, outcomes, 2)
		assert.True(t, outcomes[0].Correct)
		assert.False(t, outcomes[1].Correct)
	})

	t.Run("end of input stops quietly", func(t *testing.T) {
		corpus := adaptermocks.NewMockCorpusAdapter(t)
		reader := adaptermocks.NewMockGuessReader(t)
		ui := controllermocks.NewMockUI(t)

		corpus.EXPECT().Load(m.Path("poem.txt")).Return([]m.Line{"hello world", "foo bar"}, nil)
		guesses(reader, "hello")

		ui.EXPECT().Start(mock.Anything).Return(nil)
		ui.EXPECT().DisplayRound(mock.Anything).Times(2)
		ui.EXPECT().DisplayOutcome(mock.Anything).Once()
		ui.EXPECT().DisplaySummary(m.SessionSummary{
			Score:     m.Score{Correct: 1, Attempted: 1},
			HideCount: 1,
		}).Once()
		ui.EXPECT().Close().Once()

		wf := NewWorkflow(corpus, reader, ui, WithSamplerFactory(firstSamplerFactory))
		require.NoError(t, wf.Drill(DrillArgs{Corpus: []m.Path{"poem.txt"}, HideCount: 1}))
	})

	t.Run("escalating mode replays the corpus", func(t *testing.T) {
		corpus := adaptermocks.NewMockCorpusAdapter(t)
		reader := adaptermocks.NewMockGuessReader(t)
		ui := controllermocks.NewMockUI(t)

		corpus.EXPECT().Load(m.Path("poem.txt")).Return([]m.Line{"alpha beta"}, nil)
		guesses(reader, "alpha", "alpha beta")

		var summaries []m.PassSummary

		ui.EXPECT().Start(mock.Anything).Return(nil)
		ui.EXPECT().DisplayRound(mock.Anything)
		ui.EXPECT().DisplayOutcome(mock.Anything)
		ui.EXPECT().DisplayPassSummary(mock.Anything).Run(func(s m.PassSummary) { summaries = append(summaries, s) })
		ui.EXPECT().DisplaySummary(mock.Anything).Once()
		ui.EXPECT().Close().Once()

		wf := NewWorkflow(corpus, reader, ui, WithSamplerFactory(firstSamplerFactory))
		err := wf.Drill(DrillArgs{Corpus: []m.Path{"poem.txt"}, HideCount: 1, Escalate: true})
		require.NoError(t, err)

		require.Len(t, summaries, 2)
		assert.True(t, summaries[0].Promoted)
		assert.Equal(t, 2, summaries[1].HideCount)
		assert.True(t, summaries[1].Promoted)
	})

	t.Run("load error is returned before the UI starts", func(t *testing.T) {
		corpus := adaptermocks.NewMockCorpusAdapter(t)
		reader := adaptermocks.NewMockGuessReader(t)
		ui := controllermocks.NewMockUI(t)

		decodeErr := &adapter.DecodeError{Source: "poem.txt", Line: 3}
		corpus.EXPECT().Load(m.Path("poem.txt")).Return(nil, decodeErr)

		wf := NewWorkflow(corpus, reader, ui)
		err := wf.Drill(DrillArgs{Corpus: []m.Path{"poem.txt"}, HideCount: 1})
		require.ErrorIs(t, err, adapter.ErrDecode)
	})

	t.Run("corpus without words", func(t *testing.T) {
		corpus := adaptermocks.NewMockCorpusAdapter(t)
		reader := adaptermocks.NewMockGuessReader(t)
		ui := controllermocks.NewMockUI(t)

		corpus.EXPECT().Load(m.Path("poem.txt")).Return([]m.Line{"* * *"}, nil)

		wf := NewWorkflow(corpus, reader, ui)
		err := wf.Drill(DrillArgs{Corpus: []m.Path{"poem.txt"}, HideCount: 1})
		require.ErrorIs(t, err, ErrEmptyCorpus)
	})

	t.Run("read errors are wrapped", func(t *testing.T) {
		corpus := adaptermocks.NewMockCorpusAdapter(t)
		reader := adaptermocks.NewMockGuessReader(t)
		ui := controllermocks.NewMockUI(t)

		readErr := errors.New("broken pipe")

		corpus.EXPECT().Load(m.Path("poem.txt")).Return([]m.Line{"hello"}, nil)
		reader.EXPECT().ReadGuess().Return("", readErr)
		ui.EXPECT().Start(mock.Anything).Return(nil)
		ui.EXPECT().DisplayRound(mock.Anything).Once()
		ui.EXPECT().Close().Once()

		wf := NewWorkflow(corpus, reader, ui, WithSamplerFactory(firstSamplerFactory))
		err := wf.Drill(DrillArgs{Corpus: []m.Path{"poem.txt"}, HideCount: 1})
		require.ErrorIs(t, err, readErr)
		assert.Contains(t, err.Error(), "failed to read guess")
	})

	t.Run("UI start failure", func(t *testing.T) {
		corpus := adaptermocks.NewMockCorpusAdapter(t)
		reader := adaptermocks.NewMockGuessReader(t)
		ui := controllermocks.NewMockUI(t)

		corpus.EXPECT().Load(m.Path("poem.txt")).Return([]m.Line{"hello"}, nil)
		ui.EXPECT().Start(mock.Anything).Return(errors.New("no terminal"))

		wf := NewWorkflow(corpus, reader, ui)
		err := wf.Drill(DrillArgs{Corpus: []m.Path{"poem.txt"}, HideCount: 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to start UI")
	})
}

func TestWorkflow_Preview(t *testing.T) {
	corpus := adaptermocks.NewMockCorpusAdapter(t)
	reader := adaptermocks.NewMockGuessReader(t)
	ui := controllermocks.NewMockUI(t)

	corpus.EXPECT().Load(m.Path("a.txt"), m.Path("b.txt")).Return([]m.Line{"Zęby, żółw i ćma.", "-- 1984 --"}, nil)
	ui.EXPECT().DisplayPreview([]m.PreviewRow{
		{Number: 1, Words: 4, Eligible: 4, Hidden: 2, Display: "____, ____ i ćma."},
		{Number: 2, Words: 3, Eligible: 0, Hidden: 0, Display: "-- 1984 --"},
	}).Return(nil)

	wf := NewWorkflow(corpus, reader, ui, WithSamplerFactory(firstSamplerFactory))
	err := wf.Preview(PreviewArgs{Corpus: []m.Path{"a.txt", "b.txt"}, HideCount: 2})
	require.NoError(t, err)
}
