package http

import (
	"time"

	"creator-studio/internal/model"
	"creator-studio/internal/pillar"
)

// --- Request DTOs ---

type createReq struct {
	UserID      string   `json:"-"` // populated from URI param
	Name        string   `json:"name"        binding:"required,min=1,max=255"`
	Description string   `json:"description" binding:"max=2000"`
	Keywords    []string `json:"keywords"    binding:"omitempty,max=30"`
	Color       string   `json:"color"       binding:"omitempty,max=32"`
	Tags        []string `json:"tags"        binding:"omitempty,max=20"`
}

func (r *createReq) validate() error { return nil }

func (r *createReq) toInput() pillar.CreatePillarInput {
	return pillar.CreatePillarInput{
		UserID:      r.UserID,
		Name:        r.Name,
		Description: r.Description,
		Keywords:    r.Keywords,
		Color:       r.Color,
		Tags:        r.Tags,
	}
}

// ---

type updateReq struct {
	UserID      string   `json:"-"` // populated from URI params
	ID          string   `json:"-"`
	Name        string   `json:"name"        binding:"omitempty,min=1,max=255"`
	Description string   `json:"description" binding:"omitempty,max=2000"`
	Keywords    []string `json:"keywords"    binding:"omitempty,max=30"`
	Color       string   `json:"color"       binding:"omitempty,max=32"`
	Tags        []string `json:"tags"        binding:"omitempty,max=20"`
}

func (r *updateReq) validate() error { return nil }

func (r *updateReq) toInput() pillar.UpdatePillarInput {
	return pillar.UpdatePillarInput{
		UserID:      r.UserID,
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Keywords:    r.Keywords,
		Color:       r.Color,
		Tags:        r.Tags,
	}
}

// ---

type suggestReq struct {
	UserID    string `json:"user_id"    binding:"required"`
	ChannelID string `json:"channel_id" binding:"required"`
	MaxVideos int64  `json:"max_videos" binding:"omitempty,min=1,max=50"`
}

func (r *suggestReq) validate() error { return nil }

func (r *suggestReq) toInput() pillar.SuggestPillarsInput {
	return pillar.SuggestPillarsInput{
		UserID:    r.UserID,
		ChannelID: r.ChannelID,
		MaxVideos: r.MaxVideos,
	}
}

// --- Response DTOs ---

type pillarResp struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Keywords    []string  `json:"keywords,omitempty"`
	Color       string    `json:"color,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newPillarResp(p model.Pillar) pillarResp {
	return pillarResp{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Description: p.Description,
		Keywords:    p.Keywords,
		Color:       p.Color,
		Tags:        p.Tags,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type listResp struct {
	Pillars []pillarResp `json:"pillars"`
	Total   int          `json:"total"`
}

func (h *handler) newListResp(out pillar.ListPillarsOutput) listResp {
	pillars := make([]pillarResp, len(out.Pillars))
	for i, p := range out.Pillars {
		pillars[i] = newPillarResp(p)
	}
	return listResp{Pillars: pillars, Total: len(out.Pillars)}
}

type createResp struct {
	Pillar pillarResp `json:"pillar"`
}

func (h *handler) newCreateResp(out pillar.CreatePillarOutput) createResp {
	return createResp{Pillar: newPillarResp(out.Pillar)}
}

type updateResp struct {
	Pillar pillarResp `json:"pillar"`
}

func (h *handler) newUpdateResp(out pillar.UpdatePillarOutput) updateResp {
	return updateResp{Pillar: newPillarResp(out.Pillar)}
}

type suggestionResp struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type suggestResp struct {
	Suggestions []suggestionResp `json:"suggestions"`
	Source      string           `json:"source"`
}

func (h *handler) newSuggestResp(out pillar.SuggestPillarsOutput) suggestResp {
	suggestions := make([]suggestionResp, len(out.Suggestions))
	for i, s := range out.Suggestions {
		suggestions[i] = suggestionResp{
			Name:        s.Name,
			Description: s.Description,
			Keywords:    s.Keywords,
			Tags:        s.Tags,
		}
	}
	return suggestResp{Suggestions: suggestions, Source: out.Source}
}
