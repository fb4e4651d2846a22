package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReportMissingCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	collectorID := kernel.NewUUID()
	missing := []kernel.UUID{kernel.NewUUID()}
	pinned := []kernel.UUID{kernel.NewUUID()}

	cmd, err := commands.NewReportMissingCommand(orderID, collectorID, missing, pinned, true, "shelf empty")
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, collectorID, cmd.CollectorID())
	assert.Equal(t, missing, cmd.Missing())
	assert.Equal(t, pinned, cmd.PinnedAvailable())
	assert.True(t, cmd.CanPinAvailability())
	assert.Equal(t, "shelf empty", cmd.Details())
}

func TestNewReportMissingCommand_NoMissingProducts(t *testing.T) {
	_, err := commands.NewReportMissingCommand(kernel.NewUUID(), kernel.NewUUID(), nil, nil, false, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrMissingProductsRequired)
}

func TestNewReportMissingCommand_PinWithoutCapability(t *testing.T) {
	missing := []kernel.UUID{kernel.NewUUID()}
	pinned := []kernel.UUID{kernel.NewUUID()}

	_, err := commands.NewReportMissingCommand(kernel.NewUUID(), kernel.NewUUID(), missing, pinned, false, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPinCapabilityRequired)
}

func TestNewReportMissingCommand_InvalidOrderID(t *testing.T) {
	missing := []kernel.UUID{kernel.NewUUID()}

	_, err := commands.NewReportMissingCommand(kernel.UUID{}, kernel.NewUUID(), missing, nil, false, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestReportMissingCommand_NotConstructed(t *testing.T) {
	cmd := commands.ReportMissingCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrReportMissingCommandIsNotConstructed)
}
