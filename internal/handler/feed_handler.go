package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Einengutenmorgen/LSS-Twon-DB/internal/feed"
	"github.com/Einengutenmorgen/LSS-Twon-DB/internal/metrics"
	"github.com/Einengutenmorgen/LSS-Twon-DB/internal/render"
)

// FeedHandler serves the read side: feeds, point lookups, and edge sets.
type FeedHandler struct {
	engine *feed.Engine
}

func NewFeedHandler(engine *feed.Engine) *FeedHandler {
	return &FeedHandler{engine: engine}
}

// UserResponse defines the structure for a user lookup result.
type UserResponse struct {
	UserID   int64   `json:"user_id" example:"818934188"`
	Username *string `json:"username" example:"DeSantisJet"`
}

// IDListResponse defines the structure for follower/followee/like id sets.
type IDListResponse struct {
	UserID int64   `json:"user_id"`
	Count  int     `json:"count"`
	IDs    []int64 `json:"ids"`
}

// parseIDParam reads the :id path parameter; writes a 400 on failure.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id parameter"})
		return 0, false
	}
	return id, true
}

// parseFeedOptions reads start/end/limit query parameters; writes a 400 on
// failure. Timestamps use RFC 3339.
func parseFeedOptions(c *gin.Context) (feed.FeedOptions, bool) {
	var opts feed.FeedOptions
	if s := c.Query("start"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start timestamp, expected RFC 3339"})
			return opts, false
		}
		opts.Start = &t
	}
	if s := c.Query("end"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end timestamp, expected RFC 3339"})
			return opts, false
		}
		opts.End = &t
	}
	if s := c.Query("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return opts, false
		}
		opts.Limit = &limit
	}
	return opts, true
}

// LookupUser godoc
// @Summary      Look up a user by username
// @Description  Returns a user carrying the given username. Usernames are not unique; any one match may be returned.
// @Tags         users
// @Produce      json
// @Param        username  query     string  true  "Username to look up"
// @Success      200  {object}  UserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/lookup [get]
func (h *FeedHandler) LookupUser(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A 'username' query parameter is required"})
		return
	}

	user, err := h.engine.LookupUserByUsername(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.IncFeedQuery("lookup_user")
	c.JSON(http.StatusOK, UserResponse{UserID: user.UserID, Username: user.Username})
}

// GetUserFeed godoc
// @Summary      Reconstruct a user's feed
// @Description  Returns the posts authored by the user or anyone they follow, newest first, optionally bounded to an inclusive time window.
// @Tags         feed
// @Produce      json
// @Param        id     path      int     true   "User ID"
// @Param        start  query     string  false  "Inclusive lower bound (RFC 3339)"
// @Param        end    query     string  false  "Inclusive upper bound (RFC 3339)"
// @Param        limit  query     int     false  "Maximum posts to return (default 100)"
// @Success      200  {array}   feed.Post
// @Failure      400  {object}  ErrorResponse
// @Router       /users/{id}/feed [get]
func (h *FeedHandler) GetUserFeed(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}
	opts, ok := parseFeedOptions(c)
	if !ok {
		return
	}

	posts, err := h.engine.ReconstructFeed(c.Request.Context(), userID, opts)
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.IncFeedQuery("reconstruct_feed")
	c.JSON(http.StatusOK, posts)
}

// GetUserFeedRendered godoc
// @Summary      Reconstruct a user's feed as formatted text
// @Description  Same query as the feed endpoint, rendered as one word-wrapped text block per post.
// @Tags         feed
// @Produce      plain
// @Param        id     path      int     true   "User ID"
// @Param        start  query     string  false  "Inclusive lower bound (RFC 3339)"
// @Param        end    query     string  false  "Inclusive upper bound (RFC 3339)"
// @Param        limit  query     int     false  "Maximum posts to return (default 100)"
// @Success      200  {string}  string
// @Failure      400  {object}  ErrorResponse
// @Router       /users/{id}/feed/rendered [get]
func (h *FeedHandler) GetUserFeedRendered(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}
	opts, ok := parseFeedOptions(c)
	if !ok {
		return
	}

	posts, err := h.engine.ReconstructFeed(c.Request.Context(), userID, opts)
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.IncFeedQuery("reconstruct_feed")
	c.String(http.StatusOK, render.FormatFeed(posts))
}

// GetUserPosts godoc
// @Summary      Get all posts by an author
// @Description  Returns every post authored by the user, newest first, with usernames resolved.
// @Tags         feed
// @Produce      json
// @Param        id   path      int  true  "Author User ID"
// @Success      200  {array}   feed.Post
// @Failure      400  {object}  ErrorResponse
// @Router       /users/{id}/posts [get]
func (h *FeedHandler) GetUserPosts(c *gin.Context) {
	authorID, ok := parseIDParam(c)
	if !ok {
		return
	}

	posts, err := h.engine.GetPostsByAuthor(c.Request.Context(), authorID)
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.IncFeedQuery("posts_by_author")
	c.JSON(http.StatusOK, posts)
}

// GetFollowers godoc
// @Summary      Get a user's followers
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  IDListResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /users/{id}/followers [get]
func (h *FeedHandler) GetFollowers(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}

	ids, err := h.engine.GetFollowers(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.IncFeedQuery("followers")
	c.JSON(http.StatusOK, IDListResponse{UserID: userID, Count: len(ids), IDs: ids})
}

// GetFollowees godoc
// @Summary      Get the users someone follows
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  IDListResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /users/{id}/followees [get]
func (h *FeedHandler) GetFollowees(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}

	ids, err := h.engine.GetFollowees(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.IncFeedQuery("followees")
	c.JSON(http.StatusOK, IDListResponse{UserID: userID, Count: len(ids), IDs: ids})
}

// GetUserLikes godoc
// @Summary      Get the tweet ids a user has liked
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  IDListResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /users/{id}/likes [get]
func (h *FeedHandler) GetUserLikes(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}

	ids, err := h.engine.GetLikedTweetIDs(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.IncFeedQuery("liked_tweets")
	c.JSON(http.StatusOK, IDListResponse{UserID: userID, Count: len(ids), IDs: ids})
}

// GetTweetByID godoc
// @Summary      Get a single tweet
// @Tags         tweets
// @Produce      json
// @Param        id   path      int  true  "Tweet ID"
// @Success      200  {object}  models.Tweet
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /tweets/{id} [get]
func (h *FeedHandler) GetTweetByID(c *gin.Context) {
	tweetID, ok := parseIDParam(c)
	if !ok {
		return
	}

	tweet, err := h.engine.GetTweetByID(c.Request.Context(), tweetID)
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.IncFeedQuery("tweet_by_id")
	c.JSON(http.StatusOK, tweet)
}
