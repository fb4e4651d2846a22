package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []order.Status{order.Collecting, order.Problem, order.Waiting, order.Cancelled, order.Completed}
	for _, s := range valid {
		assert.NoError(t, s.Validate(), s.String())
	}

	assert.Error(t, order.Unknown.Validate())
	assert.Error(t, order.Status(42).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Collecting", order.Collecting.String())
	assert.Equal(t, "Problem", order.Problem.String())
	assert.Equal(t, "Waiting", order.Waiting.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Completed", order.Completed.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Cancelled.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
	assert.False(t, order.Collecting.IsTerminal())
	assert.False(t, order.Problem.IsTerminal())
	assert.False(t, order.Waiting.IsTerminal())
}

func TestStatus_Transitions(t *testing.T) {
	type transition struct {
		name  string
		apply func(order.Status) (order.Status, error)
		valid map[order.Status]order.Status
	}

	transitions := []transition{
		{
			name:  "Complete",
			apply: order.Status.Complete,
			valid: map[order.Status]order.Status{order.Collecting: order.Completed},
		},
		{
			name:  "StartProblem",
			apply: order.Status.StartProblem,
			valid: map[order.Status]order.Status{order.Collecting: order.Problem},
		},
		{
			name:  "Recover",
			apply: order.Status.Recover,
			valid: map[order.Status]order.Status{
				order.Problem: order.Collecting,
				order.Waiting: order.Collecting,
			},
		},
		{
			name:  "Cancel",
			apply: order.Status.Cancel,
			valid: map[order.Status]order.Status{
				order.Collecting: order.Cancelled,
				order.Problem:    order.Cancelled,
				order.Waiting:    order.Cancelled,
			},
		},
		{
			name:  "Wait",
			apply: order.Status.Wait,
			valid: map[order.Status]order.Status{
				order.Problem: order.Waiting,
				order.Waiting: order.Waiting,
			},
		},
	}

	all := []order.Status{
		order.Unknown, order.Collecting, order.Problem,
		order.Waiting, order.Cancelled, order.Completed,
	}

	for _, tr := range transitions {
		t.Run(tr.name, func(t *testing.T) {
			for _, from := range all {
				to, err := tr.apply(from)
				if expected, ok := tr.valid[from]; ok {
					require.NoError(t, err, "from %s", from)
					assert.Equal(t, expected, to, "from %s", from)
				} else {
					require.Error(t, err, "from %s", from)
					assert.ErrorIs(t, err, errs.ErrInvalidTransition, "from %s", from)
				}
			}
		})
	}
}

// Terminal states admit no transition at all.
func TestStatus_TerminalStatesAreFinal(t *testing.T) {
	for _, terminal := range []order.Status{order.Cancelled, order.Completed} {
		_, err := terminal.Complete()
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		_, err = terminal.StartProblem()
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		_, err = terminal.Recover()
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		_, err = terminal.Cancel()
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		_, err = terminal.Wait()
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	}
}
