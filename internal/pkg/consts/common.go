package consts

const (
	// IndexPageSize is the page size of the global feed.
	IndexPageSize = 5
	// FeedPageSize is the page size of group/profile/following feeds.
	FeedPageSize = 10
	// LastDozenPosts is how many recent posts a group view carries.
	LastDozenPosts = 12
)

const (
	MimePrefixImage = "image"
)
