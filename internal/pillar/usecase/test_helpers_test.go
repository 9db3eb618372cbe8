package usecase_test

import (
	"context"
	"fmt"

	"creator-studio/internal/model"
	"creator-studio/internal/pillar"
	"creator-studio/internal/pillar/repository"
	"creator-studio/internal/pillar/usecase"
	"creator-studio/pkg/log"
	"creator-studio/pkg/youtube"
)

// fakeRepo is an in-memory Repository that counts mutating calls so
// tests can assert when persistence was skipped.
type fakeRepo struct {
	users map[string][]model.Pillar
	seq   int

	createCalls int
	updateCalls int
	deleteCalls int

	failSave bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[string][]model.Pillar{}}
}

func (f *fakeRepo) seed(pillars ...model.Pillar) {
	for _, p := range pillars {
		f.users[p.UserID] = append(f.users[p.UserID], p)
	}
}

func (f *fakeRepo) CreatePillar(ctx context.Context, opt repository.CreatePillarOptions) (model.Pillar, error) {
	f.createCalls++
	if f.failSave {
		return model.Pillar{}, repository.ErrFailedToSave
	}
	f.seq++
	p := model.Pillar{
		ID:          fmt.Sprintf("pillar-%d", f.seq),
		UserID:      opt.UserID,
		Name:        opt.Name,
		Description: opt.Description,
		Keywords:    opt.Keywords,
		Color:       opt.Color,
		Tags:        opt.Tags,
	}
	f.users[p.UserID] = append(f.users[p.UserID], p)
	return p, nil
}

func (f *fakeRepo) GetOnePillar(ctx context.Context, opt repository.GetOnePillarOptions) (model.Pillar, error) {
	for _, p := range f.users[opt.UserID] {
		if opt.ID != "" && p.ID != opt.ID {
			continue
		}
		if opt.Name != "" && p.Name != opt.Name {
			continue
		}
		return p, nil
	}
	return model.Pillar{}, nil
}

func (f *fakeRepo) ListPillars(ctx context.Context, opt repository.ListPillarsOptions) ([]model.Pillar, error) {
	out := []model.Pillar{}
	out = append(out, f.users[opt.UserID]...)
	return out, nil
}

func (f *fakeRepo) UpdatePillar(ctx context.Context, p model.Pillar) (model.Pillar, error) {
	f.updateCalls++
	if f.failSave {
		return model.Pillar{}, repository.ErrFailedToSave
	}
	for i, stored := range f.users[p.UserID] {
		if stored.ID == p.ID {
			f.users[p.UserID][i] = p
			return p, nil
		}
	}
	return model.Pillar{}, repository.ErrNotFound
}

func (f *fakeRepo) DeletePillar(ctx context.Context, userID, id string) error {
	f.deleteCalls++
	if f.failSave {
		return repository.ErrFailedToSave
	}
	for i, stored := range f.users[userID] {
		if stored.ID == id {
			f.users[userID] = append(f.users[userID][:i], f.users[userID][i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// fakeAnalyzer is a canned ChannelAnalyzer for suggestion tests.
type fakeAnalyzer struct {
	channel    *youtube.Channel
	videos     []youtube.Video
	channelErr error
	uploadsErr error

	gotUploads youtube.ListUploadsRequest
}

func (f *fakeAnalyzer) GetChannel(ctx context.Context, channelID string) (*youtube.Channel, error) {
	if f.channelErr != nil {
		return nil, f.channelErr
	}
	return f.channel, nil
}

func (f *fakeAnalyzer) ListUploads(ctx context.Context, req youtube.ListUploadsRequest) ([]youtube.Video, error) {
	f.gotUploads = req
	if f.uploadsErr != nil {
		return nil, f.uploadsErr
	}
	return f.videos, nil
}

func newUseCase(repo repository.Repository, yt usecase.ChannelAnalyzer) pillar.UseCase {
	return usecase.New(repo, yt, log.NewNoopLogger())
}
