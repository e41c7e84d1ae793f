package stories

import "github.com/orgball2608/story-studio/internal/domain"

func Seed() []domain.StoryItem {
	return []domain.StoryItem{
		{
			ID:            "s1",
			Author:        domain.Author{Name: "Alice", AvatarURI: "https://i.pravatar.cc/150?img=1"},
			PostedAt:      "2h",
			PostedAtHours: 2,
			Caption:       "Morning run",
			CoverURI:      "https://picsum.photos/400/700?random=11",
			ViewCount:     120,
			LikeCount:     14,
			Segments: []domain.StorySegment{
				{ID: "s1-1", MediaKind: domain.MediaImage, SourceURI: "https://picsum.photos/400/700?random=11", DurationMs: domain.Millis(5000)},
				{ID: "s1-2", MediaKind: domain.MediaVideo, SourceURI: "https://samplelib.com/lib/preview/mp4/sample-5s.mp4"},
			},
			Category: "sport",
		},
		{
			ID:            "s2",
			Author:        domain.Author{Name: "Bruno", AvatarURI: "https://i.pravatar.cc/150?img=2"},
			PostedAt:      "5h",
			PostedAtHours: 5,
			Caption:       "Coffee break",
			CoverURI:      "https://picsum.photos/400/700?random=12",
			ViewCount:     45,
			LikeCount:     3,
			Segments: []domain.StorySegment{
				{ID: "s2-1", MediaKind: domain.MediaImage, SourceURI: "https://picsum.photos/400/700?random=12"},
			},
		},
		{
			ID:            "s3",
			Author:        domain.Author{Name: "Carla", AvatarURI: "https://i.pravatar.cc/150?img=3"},
			PostedAt:      "1d",
			PostedAtHours: 26,
			Caption:       "Weekend trip",
			CoverURI:      "https://picsum.photos/400/700?random=13",
			ViewCount:     310,
			LikeCount:     52,
			Segments: []domain.StorySegment{
				{ID: "s3-1", MediaKind: domain.MediaImage, SourceURI: "https://picsum.photos/400/700?random=13", DurationMs: domain.Millis(4000)},
				{ID: "s3-2", MediaKind: domain.MediaImage, SourceURI: "https://picsum.photos/400/700?random=14", DurationMs: domain.Millis(4000)},
			},
			IsPremium: true,
		},
	}
}
