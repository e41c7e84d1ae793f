package domain

type Comment struct {
	ID     string `json:"id"`
	Author string `json:"user"`
	Text   string `json:"text"`
}

type Post struct {
	ID        string    `json:"id"`
	Author    string    `json:"user"`
	AvatarURI string    `json:"avatar,omitempty"`
	CoverURI  string    `json:"cover,omitempty"`
	Content   string    `json:"content"`
	Time      string    `json:"time"`
	ImageURI  string    `json:"image,omitempty"`
	LikeCount int       `json:"likes"`
	Liked     bool      `json:"liked"`
	Comments  []Comment `json:"comments"`
}
