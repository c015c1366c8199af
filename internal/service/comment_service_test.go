package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComment(t *testing.T) {
	e := newTestEnv(t)
	leo := e.addUser(t, "leo")
	mia := e.addUser(t, "mia")
	post := e.addPost(t, leo, nil, "Публикация для обсуждения", seedBase())

	comment, err := e.comments.AddComment(context.Background(), "leo", post.ID, mia.ID, "  Отличная публикация!  ")
	require.NoError(t, err)
	assert.Equal(t, "Отличная публикация!", comment.Text)
	assert.Equal(t, "mia", comment.Author)
	assert.Equal(t, post.ID, comment.PostID)
	assert.NotEmpty(t, comment.Created)
}

func TestAddCommentValidation(t *testing.T) {
	e := newTestEnv(t)
	leo := e.addUser(t, "leo")
	mia := e.addUser(t, "mia")
	post := e.addPost(t, leo, nil, "Публикация для обсуждения", seedBase())

	var validation *ValidationError

	_, err := e.comments.AddComment(context.Background(), "leo", post.ID, mia.ID, "   ")
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, CommentRequiredMessage, validation.Message)

	_, err = e.comments.AddComment(context.Background(), "leo", post.ID, mia.ID, "Ну")
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "Длина сообщения всего 2 символа, что меньше минимального значения: 5", validation.Message)

	// nothing was written
	comments, err := e.comments.ListComments(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestAddCommentToMissingPost(t *testing.T) {
	e := newTestEnv(t)
	e.addUser(t, "leo")
	mia := e.addUser(t, "mia")

	_, err := e.comments.AddComment(context.Background(), "leo", 999, mia.ID, "Комментарий в пустоту")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestListCommentsNewestFirst(t *testing.T) {
	e := newTestEnv(t)
	leo := e.addUser(t, "leo")
	mia := e.addUser(t, "mia")
	post := e.addPost(t, leo, nil, "Публикация для обсуждения", seedBase())

	_, err := e.comments.AddComment(context.Background(), "leo", post.ID, mia.ID, "Первый комментарий")
	require.NoError(t, err)
	_, err = e.comments.AddComment(context.Background(), "leo", post.ID, mia.ID, "Второй комментарий")
	require.NoError(t, err)

	comments, err := e.comments.ListComments(context.Background(), post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "Второй комментарий", comments[0].Text)
	assert.Equal(t, "Первый комментарий", comments[1].Text)
}
