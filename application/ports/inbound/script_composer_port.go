package inbound

import (
	"context"

	"github.com/laiba2005shahzad/BuildWAI/domain"
)

// ScriptComposerPort turns authentic items into one narration script for a
// channel. Composition never fails; an empty input yields the boilerplate-only
// script.
type ScriptComposerPort interface {
	Compose(ctx context.Context, items []domain.AuthenticItem, channel domain.Channel) string
}
