package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplyOfficeDecisionCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()

	for _, decision := range []commands.Decision{
		commands.DecisionCancel,
		commands.DecisionApproveWithoutProduct,
		commands.DecisionWait,
	} {
		cmd, err := commands.NewApplyOfficeDecisionCommand(id, decision, "office note")
		require.NoError(t, err)
		assert.Equal(t, id, cmd.OrderID())
		assert.Equal(t, decision, cmd.Decision())
		assert.Equal(t, "office note", cmd.Comments())
	}
}

func TestNewApplyOfficeDecisionCommand_UnknownDecision(t *testing.T) {
	_, err := commands.NewApplyOfficeDecisionCommand(kernel.NewUUID(), "Postpone", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewApplyOfficeDecisionCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewApplyOfficeDecisionCommand(kernel.UUID{}, commands.DecisionCancel, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestApplyOfficeDecisionCommand_NotConstructed(t *testing.T) {
	cmd := commands.ApplyOfficeDecisionCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrApplyOfficeDecisionCommandIsNotConstructed)
}
