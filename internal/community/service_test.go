package community_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Princebca/heatshield-backend/internal/community"
)

func TestService_CreateAndListPosts(t *testing.T) {
	svc := community.NewService(community.NewInMemoryRepository())
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, &community.PostInput{
		UserID:     "usr_1",
		AuthorName: "Asha",
		Content:    "Shade cloth over the terrace dropped indoor temps by 3 degrees",
		Category:   community.CategoryTips,
	})
	require.NoError(t, err)
	assert.Contains(t, post.ID, "pst_")
	assert.Equal(t, community.CategoryTips, post.Category)

	posts, err := svc.ListPosts(ctx, 10, "")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, post.ID, posts[0].ID)
}

func TestService_CreatePostDefaultsCategory(t *testing.T) {
	svc := community.NewService(community.NewInMemoryRepository())

	post, err := svc.CreatePost(context.Background(), &community.PostInput{
		UserID:     "usr_1",
		AuthorName: "Asha",
		Content:    "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, community.CategoryGeneral, post.Category)
}

func TestService_CreatePostValidation(t *testing.T) {
	svc := community.NewService(community.NewInMemoryRepository())

	_, err := svc.CreatePost(context.Background(), &community.PostInput{
		UserID: "usr_1", Content: "hello",
	})
	require.Error(t, err)

	var verr *community.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "author_name", verr.Field)
}

func TestService_ListPostsCategoryFilter(t *testing.T) {
	svc := community.NewService(community.NewInMemoryRepository())
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, &community.PostInput{
		UserID: "usr_1", AuthorName: "Asha", Content: "tip", Category: community.CategoryTips,
	})
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, &community.PostInput{
		UserID: "usr_2", AuthorName: "Ravi", Content: "alert", Category: community.CategoryAlert,
	})
	require.NoError(t, err)

	posts, err := svc.ListPosts(ctx, 10, community.CategoryAlert)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "alert", posts[0].Content)
}

func TestService_EmptyFeedFallsBackToSamples(t *testing.T) {
	svc := community.NewService(community.NewInMemoryRepository())

	posts, err := svc.ListPosts(context.Background(), 10, "")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "HeatShield Team", posts[0].AuthorName)
}

func TestService_EmptyChallengesFallBackToSamples(t *testing.T) {
	svc := community.NewService(community.NewInMemoryRepository())

	challenges, err := svc.ListChallenges(context.Background())
	require.NoError(t, err)
	require.Len(t, challenges, 2)
	assert.Equal(t, "30-Day Hydration Challenge", challenges[0].Title)
	assert.True(t, challenges[0].IsActive)
}

func TestService_JoinChallenge(t *testing.T) {
	repo := community.NewInMemoryRepository()
	svc := community.NewService(repo)
	ctx := context.Background()

	require.NoError(t, repo.CreateChallenge(ctx, &community.Challenge{
		ID:           "chl_1",
		Title:        "Cool Roof Drive",
		Description:  "Paint 50 roofs white this summer",
		Type:         community.ChallengeAwareness,
		Goal:         50,
		Participants: 3,
		StartDate:    time.Now().UTC(),
		IsActive:     true,
	}))

	challenge, err := svc.JoinChallenge(ctx, "chl_1", "usr_1")
	require.NoError(t, err)
	assert.Equal(t, 4, challenge.Participants)

	_, err = svc.JoinChallenge(ctx, "chl_missing", "usr_1")
	assert.ErrorIs(t, err, community.ErrChallengeNotFound)

	_, err = svc.JoinChallenge(ctx, "chl_1", "")
	var verr *community.ValidationError
	assert.ErrorAs(t, err, &verr)
}
