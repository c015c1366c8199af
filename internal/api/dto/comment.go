package dto

type CommentBaseDTO struct {
	Text string `json:"text" form:"text"`
}

type CommentDTO struct {
	ID       uint64 `json:"id"`
	PostID   uint64 `json:"post_id"`
	Author   string `json:"author"`
	AuthorID uint64 `json:"author_id"`
	Text     string `json:"text"`
	Created  string `json:"created"`
}
