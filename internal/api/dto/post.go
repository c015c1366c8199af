package dto

// PostBaseDTO is the create/edit form payload. Group is optional.
type PostBaseDTO struct {
	Text    string  `json:"text" form:"text"`
	GroupID *uint64 `json:"group" form:"group"`
}

type PostDTO struct {
	ID            uint64    `json:"id"`
	Text          string    `json:"text"`
	PubDate       string    `json:"pub_date"`
	Author        string    `json:"author"`
	AuthorID      uint64    `json:"author_id"`
	Group         *GroupDTO `json:"group,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	ThumbnailURL  string    `json:"thumbnail_url,omitempty"`
	CommentsCount int       `json:"comments_count"`
	URL           string    `json:"url"`
}

type PostPageDTO struct {
	Page  PageDTO    `json:"page"`
	Posts []*PostDTO `json:"posts"`
}

// ProfilePageDTO is an author page: header counters plus one feed page.
type ProfilePageDTO struct {
	Author      *UserDTO   `json:"author"`
	PostsAmount int64      `json:"posts_amount"`
	Following   bool       `json:"following"`
	Page        PageDTO    `json:"page"`
	Posts       []*PostDTO `json:"posts"`
}

// PostViewDTO is the single-post page with its comment thread. Warnings
// carries inline validation messages for a rejected comment.
type PostViewDTO struct {
	Post        *PostDTO      `json:"post"`
	PostsAmount int64         `json:"posts_amount"`
	Following   bool          `json:"following"`
	Comments    []*CommentDTO `json:"comments"`
	Warnings    []string      `json:"warnings,omitempty"`
}
