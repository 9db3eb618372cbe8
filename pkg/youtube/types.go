package youtube

import "time"

// Channel is a simplified representation of a YouTube channel.
type Channel struct {
	ID                string
	Title             string
	Description       string
	SubscriberCount   uint64
	VideoCount        uint64
	ViewCount         uint64
	UploadsPlaylistID string
}

// Video is a simplified representation of an uploaded video.
type Video struct {
	ID           string
	Title        string
	Description  string
	Tags         []string
	PublishedAt  time.Time
	ViewCount    uint64
	LikeCount    uint64
	CommentCount uint64
}

// ListUploadsRequest is the input for listing a channel's uploads.
type ListUploadsRequest struct {
	UploadsPlaylistID string
	MaxResults        int64
}
