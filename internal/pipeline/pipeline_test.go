package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folnorm/folnorm/internal/parser"
	"github.com/folnorm/folnorm/internal/rewrite"
)

func TestNewDefaultsToFullSequence(t *testing.T) {
	t.Parallel()

	p, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, rewrite.DefaultSteps, p.Steps())
}

func TestNewRejectsUnknownStep(t *testing.T) {
	t.Parallel()

	_, err := New([]string{"skolemize", "prenex"})
	require.Error(t, err)

	var uerr UnknownStepError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "prenex", uerr.Name)
}

func TestRunFullPipeline(t *testing.T) {
	t.Parallel()

	// Everyone who is a man is mortal; classic normalization example.
	clause, err := parser.Parse("(for_all (X) (man(X) -> mortal(X)))")
	require.NoError(t, err)

	p, err := New(nil)
	require.NoError(t, err)

	out, err := p.Run(clause)
	require.NoError(t, err)
	assert.Equal(t, "(for_all (X) ((not man(X)) or mortal(X)))", out.String())
}

func TestRunSkolemNamesRestartPerRun(t *testing.T) {
	t.Parallel()

	clause, err := parser.Parse("(there_exists (X) unicorn(X))")
	require.NoError(t, err)

	p, err := New(nil)
	require.NoError(t, err)

	first, err := p.Run(clause)
	require.NoError(t, err)
	second, err := p.Run(clause)
	require.NoError(t, err)

	assert.Equal(t, "unicorn(F_0())", first.String())
	assert.Equal(t, first.String(), second.String())
}

func TestRunSubsetOfSteps(t *testing.T) {
	t.Parallel()

	clause, err := parser.Parse("(not (p() and q()))")
	require.NoError(t, err)

	p, err := New([]string{rewrite.StepMoveNegation})
	require.NoError(t, err)

	out, err := p.Run(clause)
	require.NoError(t, err)
	assert.Equal(t, "((not p()) or (not q()))", out.String())
}

func TestRunCombinedExample(t *testing.T) {
	t.Parallel()

	// Everyone has someone they love; after the full pipeline the
	// existential partner becomes a skolem function of the lover.
	clause, err := parser.Parse("(for_all (X) (there_exists (Y) loves(X Y)))")
	require.NoError(t, err)

	p, err := New(nil)
	require.NoError(t, err)

	out, err := p.Run(clause)
	require.NoError(t, err)
	assert.Equal(t, "(for_all (X) loves(X F_0(X)))", out.String())
}
