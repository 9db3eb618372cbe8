package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"creator-studio/internal/model"
	"creator-studio/internal/pillar"
	repo "creator-studio/internal/pillar/repository"
	"creator-studio/pkg/youtube"
)

const (
	defaultMaxVideos = 25
	maxSuggestions   = 5
	maxKeywords      = 6
	// Video tags are chosen deliberately by the creator; they count
	// more than title words.
	tagWeight = 3
	// A term must recur before it can name a pillar, and a keyword
	// must share at least this many videos with its seed.
	minSeedWeight = 2
	minShared     = 2
)

// Suggest proposes pillars from the channel's recent uploads. When no
// YouTube client is configured or the channel cannot be fetched, the
// embedded starter library answers instead; either way, suggestions
// the user's pillars already cover are dropped and nothing is
// persisted.
func (uc *implUseCase) Suggest(ctx context.Context, input pillar.SuggestPillarsInput) (pillar.SuggestPillarsOutput, error) {
	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return pillar.SuggestPillarsOutput{}, pillar.ErrMissingUserID
	}
	channelID := strings.TrimSpace(input.ChannelID)
	if channelID == "" {
		return pillar.SuggestPillarsOutput{}, pillar.ErrMissingChannel
	}

	existing, err := uc.repo.ListPillars(ctx, repo.ListPillarsOptions{UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Suggest ListPillars: %v", err)
		return pillar.SuggestPillarsOutput{}, err
	}

	if uc.yt == nil {
		uc.l.Infof(ctx, "uc.Suggest: no youtube client configured, serving starter library")
		return uc.starterFallback(existing), nil
	}

	ch, err := uc.yt.GetChannel(ctx, channelID)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Suggest GetChannel: %v", err)
		return uc.starterFallback(existing), nil
	}

	maxVideos := input.MaxVideos
	if maxVideos <= 0 {
		maxVideos = defaultMaxVideos
	}
	videos, err := uc.yt.ListUploads(ctx, youtube.ListUploadsRequest{
		UploadsPlaylistID: ch.UploadsPlaylistID,
		MaxResults:        maxVideos,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Suggest ListUploads: %v", err)
		return uc.starterFallback(existing), nil
	}
	if len(videos) == 0 {
		uc.l.Infof(ctx, "uc.Suggest: channel %s has no uploads, serving starter library", channelID)
		return uc.starterFallback(existing), nil
	}

	suggestions := dropCovered(suggestFromUploads(ch.Title, videos), existing)
	uc.l.Infof(ctx, "uc.Suggest: %d suggestions from %d uploads of %s", len(suggestions), len(videos), channelID)

	return pillar.SuggestPillarsOutput{
		Suggestions: suggestions,
		Source:      pillar.SourceChannelAnalysis,
	}, nil
}

func (uc *implUseCase) starterFallback(existing []model.Pillar) pillar.SuggestPillarsOutput {
	return pillar.SuggestPillarsOutput{
		Suggestions: dropCovered(starterSuggestions(), existing),
		Source:      pillar.SourceStarterLibrary,
	}
}

// dropCovered removes suggestions the user's pillars already cover: a
// suggestion is covered when its normalized name matches an existing
// pillar's name or one of its keywords.
func dropCovered(suggestions []pillar.Suggestion, existing []model.Pillar) []pillar.Suggestion {
	covered := make(map[string]bool)
	for _, p := range existing {
		covered[normalizeName(p.Name)] = true
		for _, kw := range p.Keywords {
			covered[normalizeName(kw)] = true
		}
	}

	out := make([]pillar.Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if covered[normalizeName(s.Name)] {
			continue
		}
		out = append(out, s)
	}
	return out
}

// suggestFromUploads turns a batch of uploads into pillar suggestions.
func suggestFromUploads(channelTitle string, videos []youtube.Video) []pillar.Suggestion {
	return clusterTerms(channelTitle, collectTerms(videos))
}

// termStats accumulates how often a term appears and in which videos.
type termStats struct {
	term   string
	weight int
	videos map[int]bool
}

// collectTerms gathers weighted term frequencies across the uploads.
// Tags enter whole (they are deliberate labels); titles are split into
// words and run through the stopword filter.
func collectTerms(videos []youtube.Video) map[string]*termStats {
	terms := make(map[string]*termStats)
	note := func(term string, videoIdx, weight int) {
		term = strings.Join(strings.Fields(strings.ToLower(term)), " ")
		if term == "" || stopwords[term] {
			return
		}
		st, ok := terms[term]
		if !ok {
			st = &termStats{term: term, videos: map[int]bool{}}
			terms[term] = st
		}
		st.weight += weight
		st.videos[videoIdx] = true
	}

	for i, v := range videos {
		for _, tag := range v.Tags {
			note(tag, i, tagWeight)
		}
		for _, word := range splitWords(v.Title) {
			note(word, i, 1)
		}
	}
	return terms
}

// clusterTerms greedily groups related terms into pillar suggestions.
// The highest-weighted unclaimed term seeds each cluster; terms that
// co-occur with the seed in enough videos join it as keywords.
func clusterTerms(channelTitle string, terms map[string]*termStats) []pillar.Suggestion {
	ordered := make([]*termStats, 0, len(terms))
	for _, st := range terms {
		ordered = append(ordered, st)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].weight != ordered[j].weight {
			return ordered[i].weight > ordered[j].weight
		}
		return ordered[i].term < ordered[j].term
	})

	claimed := make(map[string]bool)
	suggestions := make([]pillar.Suggestion, 0, maxSuggestions)
	for _, seed := range ordered {
		if len(suggestions) == maxSuggestions || seed.weight < minSeedWeight {
			break
		}
		if claimed[seed.term] {
			continue
		}
		claimed[seed.term] = true

		keywords := []string{seed.term}
		for _, cand := range ordered {
			if len(keywords) == maxKeywords {
				break
			}
			if claimed[cand.term] {
				continue
			}
			if sharedVideos(seed, cand) >= minShared {
				claimed[cand.term] = true
				keywords = append(keywords, cand.term)
			}
		}

		suggestions = append(suggestions, pillar.Suggestion{
			Name:        titleCase(seed.term),
			Description: fmt.Sprintf("Suggested from recent uploads of %s.", channelTitle),
			Keywords:    keywords,
			Tags:        []string{model.TagAISuggested},
		})
	}
	return suggestions
}

func sharedVideos(a, b *termStats) int {
	n := 0
	for idx := range a.videos {
		if b.videos[idx] {
			n++
		}
	}
	return n
}

// splitWords breaks a title into candidate terms, dropping short
// tokens and bare numbers.
func splitWords(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) < 3 || isNumeric(f) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// titleCase uppercases the first letter of each word for display.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// stopwords are title words too generic to name a content theme.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "from": true,
	"this": true, "that": true, "these": true, "those": true,
	"what": true, "when": true, "where": true, "why": true, "how": true,
	"who": true, "you": true, "your": true, "our": true, "his": true,
	"her": true, "its": true, "their": true, "they": true, "them": true,
	"was": true, "were": true, "are": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "does": true, "did": true,
	"will": true, "would": true, "can": true, "could": true, "should": true,
	"not": true, "all": true, "any": true, "more": true, "most": true,
	"some": true, "such": true, "only": true, "just": true, "very": true,
	"too": true, "also": true, "than": true, "then": true, "there": true,
	"here": true, "out": true, "off": true, "over": true, "under": true,
	"again": true, "once": true, "new": true, "best": true, "top": true,
	"full": true, "complete": true, "ultimate": true, "official": true,
	"video": true, "videos": true, "youtube": true, "channel": true,
	"episode": true, "season": true, "series": true, "part": true,
	"watch": true, "subscribe": true, "finally": true, "ever": true,
	"every": true, "about": true, "into": true, "after": true, "before": true,
}
