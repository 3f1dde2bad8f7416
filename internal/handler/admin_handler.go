package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Einengutenmorgen/LSS-Twon-DB/internal/feed"
	"github.com/Einengutenmorgen/LSS-Twon-DB/internal/loader"
)

// AdminHandler serves the write side: bulk loads and cascading user
// deletes. All of its routes sit behind the auth middleware.
type AdminHandler struct {
	loader *loader.Loader
	engine *feed.Engine
}

func NewAdminHandler(ldr *loader.Loader, engine *feed.Engine) *AdminHandler {
	return &AdminHandler{loader: ldr, engine: engine}
}

// LoadInput names the collector export files to merge. Paths are resolved
// on the server host; any subset may be given.
type LoadInput struct {
	FollowsCSV string `json:"follows_csv" example:"/data/UserFollowees1.csv"`
	LikesCSV   string `json:"likes_csv" example:"/data/users1_likes_df.csv"`
	TweetsCSV  string `json:"tweets_csv" example:"/data/FolloweeIDs1_tweets_df.csv"`
}

// LoadResponse reports one completed load run.
type LoadResponse struct {
	Report          loader.Report `json:"report"`
	ReadRowsSkipped int           `json:"read_rows_skipped"`
}

// LoadBatch godoc
// @Summary      Bulk load collector exports
// @Description  Reads the named CSV exports and merges them into the store as one transaction. Re-loading the same files is a no-op.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body LoadInput true "CSV paths"
// @Success      200  {object}  LoadResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Batch would violate referential integrity"
// @Router       /admin/load [post]
func (h *AdminHandler) LoadBatch(c *gin.Context) {
	var input LoadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.FollowsCSV == "" && input.LikesCSV == "" && input.TweetsCSV == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one CSV path is required"})
		return
	}

	batch, readSkipped, err := loader.ReadCSVBatch(input.FollowsCSV, input.LikesCSV, input.TweetsCSV)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.loader.Load(c.Request.Context(), batch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, LoadResponse{Report: *report, ReadRowsSkipped: readSkipped})
}

// DeleteUser godoc
// @Summary      Delete a user and everything that depends on them
// @Description  Removes the user; their tweets, follow edges, and likes cascade away, and retweets of them survive with the reference cleared.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  map[string]string "{"message": "User deleted"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.engine.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
