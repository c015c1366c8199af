package service

import (
	"context"
	"testing"
	"yatube/internal/api/dto"
	"yatube/internal/model"
	"yatube/internal/pkg/consts"
	"yatube/internal/pkg/thumbnail"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalFeedPagination(t *testing.T) {
	e := newTestEnv(t)
	author := e.addUser(t, "leo")
	seedFeed(t, e, author, 7)

	first, err := e.posts.GlobalFeed(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, first.Posts, consts.IndexPageSize)
	assert.Equal(t, int64(7), first.Page.Count)
	assert.Equal(t, 2, first.Page.NumPages)
	assert.True(t, first.Page.HasNext)
	assert.False(t, first.Page.HasPrev)
	// newest first
	assert.Equal(t, "Публикация номер 7", first.Posts[0].Text)

	second, err := e.posts.GlobalFeed(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, second.Posts, 2)
	assert.False(t, second.Page.HasNext)
	assert.True(t, second.Page.HasPrev)
	assert.Equal(t, "Публикация номер 1", second.Posts[1].Text)
}

func TestGlobalFeedClampsOutOfRangePage(t *testing.T) {
	e := newTestEnv(t)
	author := e.addUser(t, "leo")
	seedFeed(t, e, author, 7)

	feed, err := e.posts.GlobalFeed(context.Background(), 999)
	require.NoError(t, err)
	assert.Equal(t, 2, feed.Page.Page)
	assert.Len(t, feed.Posts, 2)

	feed, err = e.posts.GlobalFeed(context.Background(), -3)
	require.NoError(t, err)
	assert.Equal(t, 1, feed.Page.Page)
}

func TestGlobalFeedEmpty(t *testing.T) {
	e := newTestEnv(t)

	feed, err := e.posts.GlobalFeed(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, feed.Posts)
	assert.Equal(t, 1, feed.Page.NumPages)
	assert.False(t, feed.Page.HasNext)
}

func TestGroupFeed(t *testing.T) {
	e := newTestEnv(t)
	author := e.addUser(t, "leo")
	cats := e.addGroup(t, "cats")
	dogs := e.addGroup(t, "dogs")

	base := seedBase()
	for i := 0; i < 3; i++ {
		e.addPost(t, author, cats, "Пост про котов", base)
	}
	e.addPost(t, author, dogs, "Пост про собак", base)
	e.addPost(t, author, nil, "Пост без группы", base)

	feed, err := e.posts.GroupFeed(context.Background(), "cats", 1)
	require.NoError(t, err)
	assert.Equal(t, "cats", feed.Group.Slug)
	assert.Equal(t, int64(3), feed.Page.Count)
	assert.Len(t, feed.Posts, 3)
	assert.Len(t, feed.LastDozen, 3)
	for _, post := range feed.Posts {
		assert.Equal(t, "Пост про котов", post.Text)
		assert.Equal(t, "leo", post.Author)
	}
}

func TestGroupFeedUnknownSlug(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.posts.GroupFeed(context.Background(), "no-such-group", 1)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestGroupLastDozenCap(t *testing.T) {
	e := newTestEnv(t)
	author := e.addUser(t, "leo")
	cats := e.addGroup(t, "cats")

	base := seedBase()
	for i := 0; i < 15; i++ {
		e.addPost(t, author, cats, "Пост про котов", base)
	}

	feed, err := e.posts.GroupFeed(context.Background(), "cats", 1)
	require.NoError(t, err)
	assert.Len(t, feed.Posts, consts.FeedPageSize)
	assert.Len(t, feed.LastDozen, consts.LastDozenPosts)
}

func TestProfileFeed(t *testing.T) {
	e := newTestEnv(t)
	leo := e.addUser(t, "leo")
	mia := e.addUser(t, "mia")
	seedFeed(t, e, leo, 3)
	seedFeed(t, e, mia, 1)

	profile, err := e.posts.ProfileFeed(context.Background(), "leo", 0, 1)
	require.NoError(t, err)
	assert.Equal(t, "leo", profile.Author.Username)
	assert.Equal(t, int64(3), profile.PostsAmount)
	assert.Len(t, profile.Posts, 3)
	assert.False(t, profile.Following)
	for _, post := range profile.Posts {
		assert.Equal(t, "leo", post.Author)
	}
}

func TestProfileFeedFollowingFlag(t *testing.T) {
	e := newTestEnv(t)
	leo := e.addUser(t, "leo")
	mia := e.addUser(t, "mia")
	require.NoError(t, e.follows.Follow(context.Background(), mia.ID, "leo"))

	profile, err := e.posts.ProfileFeed(context.Background(), "leo", mia.ID, 1)
	require.NoError(t, err)
	assert.True(t, profile.Following)

	profile, err = e.posts.ProfileFeed(context.Background(), "leo", leo.ID, 1)
	require.NoError(t, err)
	assert.False(t, profile.Following)
}

func TestProfileFeedUnknownUser(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.posts.ProfileFeed(context.Background(), "ghost", 0, 1)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFollowingFeed(t *testing.T) {
	e := newTestEnv(t)
	leo := e.addUser(t, "leo")
	mia := e.addUser(t, "mia")
	reader := e.addUser(t, "reader")
	seedFeed(t, e, leo, 2)
	seedFeed(t, e, mia, 2)

	require.NoError(t, e.follows.Follow(context.Background(), reader.ID, "leo"))

	feed, err := e.posts.FollowingFeed(context.Background(), reader.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), feed.Page.Count)
	for _, post := range feed.Posts {
		assert.Equal(t, "leo", post.Author)
	}

	empty, err := e.posts.FollowingFeed(context.Background(), mia.ID, 1)
	require.NoError(t, err)
	assert.Empty(t, empty.Posts)
}

func TestCreatePost(t *testing.T) {
	e := newTestEnv(t)
	leo := e.addUser(t, "leo")
	cats := e.addGroup(t, "cats")

	post, err := e.posts.CreatePost(context.Background(), leo.ID, &dto.PostBaseDTO{
		Text:    "  Свежая публикация про котов  ",
		GroupID: &cats.ID,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Свежая публикация про котов", post.Text)
	assert.Equal(t, "leo", post.Author)
	assert.Equal(t, "cats", post.Group.Slug)
	assert.NotEmpty(t, post.PubDate)
	assert.Contains(t, post.URL, "/leo/")
}

func TestCreatePostValidation(t *testing.T) {
	e := newTestEnv(t)
	leo := e.addUser(t, "leo")

	var validation *ValidationError

	_, err := e.posts.CreatePost(context.Background(), leo.ID, &dto.PostBaseDTO{Text: "   "}, nil)
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, TextRequiredMessage, validation.Message)

	_, err = e.posts.CreatePost(context.Background(), leo.ID, &dto.PostBaseDTO{Text: "Нет!"}, nil)
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "Длина сообщения всего 4 символа, что меньше минимального значения: 5", validation.Message)

	missing := uint64(777)
	_, err = e.posts.CreatePost(context.Background(), leo.ID, &dto.PostBaseDTO{Text: "Нормальный текст", GroupID: &missing}, nil)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestCreatePostWithImage(t *testing.T) {
	e := newTestEnv(t)
	leo := e.addUser(t, "leo")

	post, err := e.posts.CreatePost(context.Background(), leo.ID, &dto.PostBaseDTO{Text: "Публикация с картинкой"}, &ImageUpload{
		Name:        "pic.png",
		ContentType: "image/png",
		Data:        testImagePNG(t),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, post.ImageURL)
	assert.NotEmpty(t, post.ThumbnailURL)

	// the original and its thumbnail are both in the store
	assert.Len(t, e.store.objects, 2)
	thumbs, err := e.store.List(context.Background(), thumbnail.Prefix)
	require.NoError(t, err)
	assert.Len(t, thumbs, 1)
}

func TestCreatePostRejectsNonImage(t *testing.T) {
	e := newTestEnv(t)
	leo := e.addUser(t, "leo")

	_, err := e.posts.CreatePost(context.Background(), leo.ID, &dto.PostBaseDTO{Text: "Публикация с файлом"}, &ImageUpload{
		Name:        "doc.txt",
		ContentType: "text/plain",
		Data:        []byte("not an image"),
	})
	assert.ErrorIs(t, err, ErrFileNotSupported)
	assert.Empty(t, e.store.objects)
}

func TestUpdatePostOwnership(t *testing.T) {
	e := newTestEnv(t)
	leo := e.addUser(t, "leo")
	mia := e.addUser(t, "mia")
	post := e.addPost(t, leo, nil, "Старый текст публикации", seedBase())

	_, err := e.posts.UpdatePost(context.Background(), mia.ID, "leo", post.ID, &dto.PostBaseDTO{Text: "Чужая правка"}, nil)
	assert.ErrorIs(t, err, ErrNotPostAuthor)

	updated, err := e.posts.UpdatePost(context.Background(), leo.ID, "leo", post.ID, &dto.PostBaseDTO{Text: "Новый текст публикации"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Новый текст публикации", updated.Text)
}

func TestUpdatePostClearsGroup(t *testing.T) {
	e := newTestEnv(t)
	leo := e.addUser(t, "leo")
	cats := e.addGroup(t, "cats")
	post := e.addPost(t, leo, cats, "Публикация в группе", seedBase())

	updated, err := e.posts.UpdatePost(context.Background(), leo.ID, "leo", post.ID, &dto.PostBaseDTO{Text: "Публикация без группы"}, nil)
	require.NoError(t, err)
	assert.Nil(t, updated.Group)
}

func TestDeletePostCascades(t *testing.T) {
	e := newTestEnv(t)
	leo := e.addUser(t, "leo")
	mia := e.addUser(t, "mia")

	post, err := e.posts.CreatePost(context.Background(), leo.ID, &dto.PostBaseDTO{Text: "Публикация на удаление"}, &ImageUpload{
		Name:        "pic.png",
		ContentType: "image/png",
		Data:        testImagePNG(t),
	})
	require.NoError(t, err)

	_, err = e.comments.AddComment(context.Background(), "leo", post.ID, mia.ID, "Комментарий к публикации")
	require.NoError(t, err)

	require.NoError(t, e.posts.DeletePost(context.Background(), leo.ID, "leo", post.ID))

	_, err = e.posts.GetPost(context.Background(), "leo", post.ID, 0)
	assert.ErrorIs(t, err, ErrPostNotFound)

	comments, err := e.comments.ListComments(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	// no orphaned objects left behind
	assert.Empty(t, e.store.objects)
}

func TestDeletePostOwnership(t *testing.T) {
	e := newTestEnv(t)
	leo := e.addUser(t, "leo")
	mia := e.addUser(t, "mia")
	post := e.addPost(t, leo, nil, "Чужая публикация", seedBase())

	err := e.posts.DeletePost(context.Background(), mia.ID, "leo", post.ID)
	assert.ErrorIs(t, err, ErrNotPostAuthor)
}

func TestGetPostView(t *testing.T) {
	e := newTestEnv(t)
	leo := e.addUser(t, "leo")
	mia := e.addUser(t, "mia")
	seedFeed(t, e, leo, 3)
	post := e.addPost(t, leo, nil, "Публикация с комментариями", seedBase())

	_, err := e.comments.AddComment(context.Background(), "leo", post.ID, mia.ID, "Первый комментарий")
	require.NoError(t, err)
	_, err = e.comments.AddComment(context.Background(), "leo", post.ID, mia.ID, "Второй комментарий")
	require.NoError(t, err)

	view, err := e.posts.GetPost(context.Background(), "leo", post.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, "Публикация с комментариями", view.Post.Text)
	assert.Equal(t, int64(4), view.PostsAmount)
	require.Len(t, view.Comments, 2)
	assert.Equal(t, "Второй комментарий", view.Comments[0].Text)
	assert.Equal(t, "mia", view.Comments[0].Author)
	assert.Equal(t, "Первый комментарий", view.Comments[1].Text)
}

func TestGetPostWrongAuthor(t *testing.T) {
	e := newTestEnv(t)
	leo := e.addUser(t, "leo")
	e.addUser(t, "mia")
	post := e.addPost(t, leo, nil, "Публикация Лео", seedBase())

	_, err := e.posts.GetPost(context.Background(), "mia", post.ID, 0)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPaginateMetadata(t *testing.T) {
	meta, offset := paginate(0, 1, 10)
	assert.Equal(t, 1, meta.NumPages)
	assert.Equal(t, 0, offset)

	meta, offset = paginate(21, 3, 10)
	assert.Equal(t, 3, meta.NumPages)
	assert.Equal(t, 20, offset)
	assert.False(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	meta, _ = paginate(21, 50, 10)
	assert.Equal(t, 3, meta.Page)
}

func TestMigrationIndexNamesDistinct(t *testing.T) {
	e := newTestEnv(t)
	m := e.db.Migrator()

	// posts and follows both index author_id, the names must not collide
	assert.True(t, m.HasIndex(&model.Post{}, "idx_author_id"))
	assert.True(t, m.HasIndex(&model.Follow{}, "idx_follow_author_id"))
}

func TestErrorMapCovered(t *testing.T) {
	for _, err := range []error{
		ErrUserNotFound, ErrGroupNotFound, ErrPostNotFound,
		ErrNotPostAuthor, ErrFollowSelf, ErrFileNotSupported,
	} {
		_, ok := ErrorMap[err]
		assert.True(t, ok, err.Error())
	}
}
