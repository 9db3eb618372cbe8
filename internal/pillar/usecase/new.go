package usecase

import (
	"context"

	"creator-studio/internal/pillar/repository"
	pkgLog "creator-studio/pkg/log"
	"creator-studio/pkg/youtube"
)

// ChannelAnalyzer is the slice of the YouTube client the suggester
// depends on. A nil analyzer means no client is configured and the
// suggester serves the starter library instead.
type ChannelAnalyzer interface {
	GetChannel(ctx context.Context, channelID string) (*youtube.Channel, error)
	ListUploads(ctx context.Context, req youtube.ListUploadsRequest) ([]youtube.Video, error)
}

type implUseCase struct {
	repo repository.Repository
	yt   ChannelAnalyzer
	l    pkgLog.Logger
}

// New creates a new pillar UseCase instance. yt may be nil when no
// YouTube credentials are configured.
func New(repo repository.Repository, yt ChannelAnalyzer, l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		yt:   yt,
		l:    l,
	}
}
