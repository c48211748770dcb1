package commands_test

import (
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteOrderCommand_ValidInput(t *testing.T) {
	orgID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewDeleteOrderCommand(orgID, orderID)
	require.NoError(t, err)
	assert.Equal(t, orgID, cmd.OrganizationID())
	assert.Equal(t, orderID, cmd.OrderID())
}

func TestNewDeleteOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewDeleteOrderCommand(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
