package consts

const (
	PageCacheKey      = "page:cache:"
	TokenBlacklistKey = "token:blacklist:"
)
