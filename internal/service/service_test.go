package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"
	"time"
	"yatube/internal/model"
	"yatube/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// fakeStore is an in-memory object store standing in for MinIO.
type fakeStore struct {
	objects map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string][]byte)}
}

func (s *fakeStore) Upload(_ context.Context, objectName string, reader io.Reader, _ int64, _ string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	s.objects[objectName] = data
	return objectName, nil
}

func (s *fakeStore) Delete(_ context.Context, objectName string) error {
	delete(s.objects, objectName)
	return nil
}

func (s *fakeStore) List(_ context.Context, prefix string) ([]string, error) {
	var keys []string
	for k := range s.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (s *fakeStore) PublicURL(objectName string) string {
	return "http://store.local/media/" + objectName
}

type testEnv struct {
	db         *gorm.DB
	store      *fakeStore
	userRepo   repository.UserRepo
	groupRepo  repository.GroupRepo
	postRepo   repository.PostRepo
	followRepo repository.FollowRepo

	users    UserService
	posts    PostService
	comments CommentService
	follows  FollowService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Group{}, &model.Post{}, &model.Comment{}, &model.Follow{},
	))

	store := newFakeStore()
	userRepo := repository.NewUserRepo(db)
	groupRepo := repository.NewGroupRepo(db)
	postRepo := repository.NewPostRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	followRepo := repository.NewFollowRepo(db)

	return &testEnv{
		db:         db,
		store:      store,
		userRepo:   userRepo,
		groupRepo:  groupRepo,
		postRepo:   postRepo,
		followRepo: followRepo,
		users:      NewUserService(userRepo),
		posts:      NewPostService(postRepo, groupRepo, userRepo, followRepo, store),
		comments:   NewCommentService(commentRepo, postRepo, userRepo),
		follows:    NewFollowService(followRepo, userRepo),
	}
}

func (e *testEnv) addUser(t *testing.T, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Password: "x"}
	require.NoError(t, e.userRepo.CreateUser(context.Background(), user))
	return user
}

func (e *testEnv) addGroup(t *testing.T, slug string) *model.Group {
	t.Helper()
	group := &model.Group{Title: "Группа " + slug, Slug: slug, Description: "описание"}
	require.NoError(t, e.groupRepo.CreateGroup(context.Background(), group))
	return group
}

func (e *testEnv) addPost(t *testing.T, author *model.User, group *model.Group, text string, pubDate time.Time) *model.Post {
	t.Helper()
	post := &model.Post{Text: text, PubDate: pubDate, AuthorID: author.ID}
	if group != nil {
		post.GroupID = &group.ID
	}
	require.NoError(t, e.postRepo.CreatePost(context.Background(), post))
	return post
}

func testImagePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for x := 0; x < 64; x++ {
		for y := 0; y < 48; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 5), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func seedBase() time.Time {
	return time.Date(2026, 6, 8, 8, 12, 0, 0, time.UTC)
}

func seedFeed(t *testing.T, e *testEnv, author *model.User, n int) {
	t.Helper()
	base := time.Date(2026, 6, 8, 8, 12, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		e.addPost(t, author, nil, fmt.Sprintf("Публикация номер %d", i+1), base.Add(time.Duration(i)*time.Minute))
	}
}
