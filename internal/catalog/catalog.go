// Package catalog turns the video list into what the front-end renders:
// category rows, card images and the player for the playback dialog.
package catalog

import (
	"myflix/internal/models"
	"myflix/internal/utils"
)

// PlaceholderImage is shown when a video has no image and no YouTube thumbnail.
const PlaceholderImage = "https://placehold.co/600x400"

// Group is one category row.
type Group struct {
	Category models.Category
	Videos   []models.Video
}

// GroupByCategory splits videos into one group per distinct category, in
// order of first appearance.
func GroupByCategory(videos []models.Video) []Group {
	groups := []Group{}
	index := map[models.Category]int{}

	for _, v := range videos {
		i, ok := index[v.Category]
		if !ok {
			i = len(groups)
			index[v.Category] = i
			groups = append(groups, Group{Category: v.Category})
		}
		groups[i].Videos = append(groups[i].Videos, v)
	}
	return groups
}

// CardImage picks the image for a video card.
func CardImage(v models.Video) string {
	if v.Image != "" {
		return v.Image
	}
	if thumb, ok := utils.ThumbnailFor(v.VideoURL); ok {
		return thumb
	}
	return PlaceholderImage
}

// PlayerKind selects the playback element.
type PlayerKind int

const (
	// PlayerNative plays the video URL directly.
	PlayerNative PlayerKind = iota
	// PlayerEmbed uses the YouTube iframe player.
	PlayerEmbed
)

func (k PlayerKind) String() string {
	if k == PlayerEmbed {
		return "embed"
	}
	return "native"
}

// Player describes how a video is played.
type Player struct {
	Kind PlayerKind
	URL  string
}

// PlayerFor returns the embed player for YouTube links and the raw video URL otherwise.
func PlayerFor(v models.Video) Player {
	if id, ok := utils.ExtractYouTubeID(v.VideoURL); ok {
		return Player{Kind: PlayerEmbed, URL: utils.YouTubeEmbedURL(id)}
	}
	return Player{Kind: PlayerNative, URL: v.VideoURL}
}
