package player

import "context"

type Repository interface {
	GetPlayer(ctx context.Context, playerID int64) (Profile, error)
}
