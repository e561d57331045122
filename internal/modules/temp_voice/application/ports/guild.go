package ports

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/bob/internal/modules/temp_voice/domain"
)

// GuildProvider reads guild data from the platform.
type GuildProvider interface {
	Guild(ctx context.Context, guildID snowflake.ID) (*domain.Guild, error)
}
