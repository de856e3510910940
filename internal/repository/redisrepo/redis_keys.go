package redisrepo

const (
	CATEGORIES_KEY         = "penlink:categories"
	POSTS_PER_CATEGORY_KEY = "penlink:stats:posts-per-category"
)
