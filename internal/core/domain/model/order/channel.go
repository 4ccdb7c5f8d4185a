package order

import (
	"fmt"

	"oms/internal/pkg/errs"
)

// Channel identifies the sales channel an order was placed through.
type Channel int

const (
	// ChannelUnknown represents an invalid or undefined channel.
	ChannelUnknown Channel = iota

	// Online orders are placed through the web storefront. This is the
	// default channel for drafts that do not name one.
	Online

	// Offline orders are imported from offline batch sources.
	Offline

	// InStore orders are placed at a physical point of sale.
	InStore

	// Marketplace orders arrive from third-party marketplaces.
	Marketplace

	// CallCenter orders are taken by phone agents.
	CallCenter
)

func getChannelNames() map[Channel]string {
	return map[Channel]string{
		ChannelUnknown: "UNKNOWN",
		Online:         "ONLINE",
		Offline:        "OFFLINE",
		InStore:        "INSTORE",
		Marketplace:    "MARKETPLACE",
		CallCenter:     "CALLCENTER",
	}
}

func getValidChannelNames() map[Channel]string {
	//nolint:exhaustive // ChannelUnknown is intentionally excluded as it's invalid
	return map[Channel]string{
		Online:      "ONLINE",
		Offline:     "OFFLINE",
		InStore:     "INSTORE",
		Marketplace: "MARKETPLACE",
		CallCenter:  "CALLCENTER",
	}
}

// Channels returns all valid sales channels.
func Channels() []Channel {
	return []Channel{Online, Offline, InStore, Marketplace, CallCenter}
}

// ChannelFromName parses a wire name (e.g. "MARKETPLACE") into a Channel.
// An empty name defaults to Online.
func ChannelFromName(name string) (Channel, error) {
	if name == "" {
		return Online, nil
	}
	for channel, channelName := range getValidChannelNames() {
		if channelName == name {
			return channel, nil
		}
	}
	return ChannelUnknown, errs.NewValueIsInvalidErrorWithCause("orderType",
		fmt.Errorf("%q is not a valid order channel", name))
}

// Validate checks that the Channel is a member of the fixed channel set.
func (c Channel) Validate() error {
	if _, ok := getValidChannelNames()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderType",
			fmt.Errorf("%d is not a valid order channel", c))
	}
	return nil
}

// String returns the wire name of the channel, or "UNKNOWN" for invalid values.
func (c Channel) String() string {
	if name, ok := getChannelNames()[c]; ok {
		return name
	}
	return "UNKNOWN"
}
