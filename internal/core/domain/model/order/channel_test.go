package order_test

import (
	"testing"

	"oms/internal/core/domain/model/order"
	"oms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelFromName(t *testing.T) {
	t.Run("should parse all valid channel names", func(t *testing.T) {
		testCases := map[string]order.Channel{
			"ONLINE":      order.Online,
			"OFFLINE":     order.Offline,
			"INSTORE":     order.InStore,
			"MARKETPLACE": order.Marketplace,
			"CALLCENTER":  order.CallCenter,
		}

		for name, expected := range testCases {
			channel, err := order.ChannelFromName(name)

			require.NoError(t, err, "name %q", name)
			assert.Equal(t, expected, channel)
			assert.Equal(t, name, channel.String())
		}
	})

	t.Run("should default empty name to ONLINE", func(t *testing.T) {
		channel, err := order.ChannelFromName("")

		require.NoError(t, err)
		assert.Equal(t, order.Online, channel)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.ChannelFromName("TELEGRAM")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestChannel_Validate(t *testing.T) {
	for _, channel := range order.Channels() {
		require.NoError(t, channel.Validate(), "channel %s", channel)
	}

	require.Error(t, order.ChannelUnknown.Validate())
	require.Error(t, order.Channel(42).Validate())
}
