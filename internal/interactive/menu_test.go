package interactive

import (
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var charts = []ChartOption{
	{Name: "percentiles", Description: "Response time percentiles"},
	{Name: "endpoints", Description: "P95/P99 per endpoint"},
	{Name: "curve"},
}

func stubAsk(t *testing.T, fn func(p survey.Prompt, response interface{}) error) {
	t.Helper()

	orig := askOne
	askOne = fn
	t.Cleanup(func() { askOne = orig })
}

func TestSelectCharts(t *testing.T) {
	stubAsk(t, func(p survey.Prompt, response interface{}) error {
		ms, ok := p.(*survey.MultiSelect)
		require.True(t, ok)
		assert.Equal(t, ms.Options, ms.Default, "everything starts checked")

		// Picked out of order; results follow the offered order.
		*response.(*[]string) = []string{"curve", "percentiles - Response time percentiles"}

		return nil
	})

	names, err := SelectCharts(charts)
	require.NoError(t, err)
	assert.Equal(t, []string{"percentiles", "curve"}, names)
}

func TestSelectCharts_Empty(t *testing.T) {
	stubAsk(t, func(_ survey.Prompt, _ interface{}) error { return nil })

	_, err := SelectCharts(charts)
	assert.ErrorIs(t, err, ErrNothingSelected)
}

func TestSelectCharts_Interrupted(t *testing.T) {
	stubAsk(t, func(_ survey.Prompt, _ interface{}) error { return errors.New("interrupt") })

	_, err := SelectCharts(charts)
	assert.ErrorIs(t, err, ErrExit)
}

func TestShowMainMenu(t *testing.T) {
	called := false
	options := []MenuOption{
		{Name: "Render", Description: "Render all charts", Action: func() error {
			called = true

			return nil
		}},
	}

	tests := []struct {
		name       string
		answer     string
		wantErr    error
		wantCalled bool
	}{
		{name: "runs action", answer: "Render - Render all charts", wantCalled: true},
		{name: "exit", answer: "Exit", wantErr: ErrExit},
		{name: "unknown", answer: "Something else", wantErr: ErrInvalidSelection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called = false
			stubAsk(t, func(_ survey.Prompt, response interface{}) error {
				*response.(*string) = tt.answer

				return nil
			})

			err := ShowMainMenu(options)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantCalled, called)
		})
	}
}

func TestConfirm(t *testing.T) {
	stubAsk(t, func(_ survey.Prompt, response interface{}) error {
		*response.(*bool) = true

		return nil
	})

	assert.True(t, Confirm("Overwrite existing charts?"))
}
