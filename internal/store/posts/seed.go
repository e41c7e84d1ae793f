package posts

import "github.com/orgball2608/story-studio/internal/domain"

// Seed is the demo feed shown before the backend is reachable.
func Seed() []domain.Post {
	return []domain.Post{
		{
			ID:        "1",
			Author:    "Alice",
			Content:   "Hi, this is my first post! Loving building things with React Native",
			Time:      "2h",
			ImageURI:  "https://picsum.photos/800/600?random=1",
			LikeCount: 12,
			Comments:  []domain.Comment{{ID: "c1", Author: "Bruno", Text: "Awesome!"}},
		},
		{
			ID:        "2",
			Author:    "Bruno",
			Content:   "Enjoying the day and building an amazing app. #dev",
			Time:      "3h",
			LikeCount: 4,
			Comments: []domain.Comment{
				{ID: "c2", Author: "Alice", Text: "Let's go!"},
				{ID: "c3", Author: "Carla", Text: "Great"},
			},
		},
		{
			ID:        "3",
			Author:    "Carla",
			Content:   "Sharing a picture of my coffee",
			Time:      "4h",
			ImageURI:  "https://picsum.photos/800/600?random=2",
			LikeCount: 21,
			Comments:  []domain.Comment{},
		},
		{
			ID:        "4",
			Author:    "Daniel",
			Content:   "Square shot of my new project!",
			Time:      "1h",
			ImageURI:  "https://picsum.photos/400/400?random=3",
			LikeCount: 15,
			Comments:  []domain.Comment{{ID: "c4", Author: "Eva", Text: "Gorgeous!"}},
		},
		{
			ID:        "5",
			Author:    "Eva",
			Content:   "Vertical story of my day",
			Time:      "45m",
			ImageURI:  "https://picsum.photos/400/700?random=4",
			LikeCount: 8,
			Comments:  []domain.Comment{},
		},
		{
			ID:        "6",
			Author:    "Felipe",
			Content:   "Perfect panoramic landscape!",
			Time:      "30m",
			ImageURI:  "https://picsum.photos/1200/400?random=5",
			LikeCount: 25,
			Comments: []domain.Comment{
				{ID: "c5", Author: "Grace", Text: "What a view!"},
				{ID: "c6", Author: "Henry", Text: "Incredible"},
			},
		},
	}
}
