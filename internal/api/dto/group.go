package dto

type GroupDTO struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// GroupPageDTO is the community page: the group card, one page of its
// feed and the twelve freshest posts for the sidebar.
type GroupPageDTO struct {
	Group     *GroupDTO  `json:"group"`
	Page      PageDTO    `json:"page"`
	Posts     []*PostDTO `json:"posts"`
	LastDozen []*PostDTO `json:"last_dozen"`
}
