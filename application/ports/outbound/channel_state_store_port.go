package outbound

import "github.com/laiba2005shahzad/BuildWAI/domain"

// ChannelStateStorePort holds the latest committed result per channel.
// Publish replaces a channel's slot in one atomic step; readers never observe
// a partially written state. Latest returns the zero value for a channel
// that has not committed yet.
type ChannelStateStorePort interface {
	Publish(channel domain.Channel, state domain.ChannelState)
	Latest(channel domain.Channel) domain.ChannelState
}
