package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	errWishlistNotFound  = "wishlist not found"
	errListPublic        = "failed to find public wishlists"
	errListUserWishlists = "failed to fetch user's wishlists"
	errCreateWishlist    = "failed to create wishlist"
	errUpdateWishlist    = "failed to update wishlist"
	errDeleteWishlist    = "failed to delete wishlist"
)

type wishlistRequest struct {
	ListTitle string `json:"list_title" binding:"required"`
	IsPrivate bool   `json:"is_private"`
}

// @Summary      List public wishlists
// @Description  All public lists with owner username and item count.
// @Tags         wishlists
// @Produce      json
// @Success      200  {array}   models.Wishlist
// @Failure      500  {object}  map[string]string
// @Router       /api/wishlists/public [get]
func (h *Handler) listPublicWishlists(c *gin.Context) {
	lists, err := h.services.Wishlists.ListPublic(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListPublic, "wishlists_public_failed", err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

// @Summary      List a user's wishlists
// @Description  Union of the user's private and public lists, visible to any caller.
// @Tags         wishlists
// @Produce      json
// @Param        id  path  int  true  "Owner user id"
// @Success      200  {array}   models.Wishlist
// @Failure      500  {object}  map[string]string
// @Router       /api/wishlists/user/{id} [get]
func (h *Handler) listUserWishlists(c *gin.Context) {
	userID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	lists, err := h.services.Wishlists.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListUserWishlists, "wishlists_by_user_failed", err,
			"user_id", userID)
		return
	}
	c.JSON(http.StatusOK, lists)
}

// @Summary      Create wishlist
// @Tags         wishlists
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "Owner user id"
// @Param        body  body  wishlistRequest  true  "Title and visibility"
// @Success      201   {object}  models.Wishlist
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/wishlists/{id} [post]
// @Security     BearerAuth
func (h *Handler) createWishlist(c *gin.Context) {
	userID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	var req wishlistRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	list, err := h.services.Wishlists.Create(c.Request.Context(), userID, req.ListTitle, req.IsPrivate)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errCreateWishlist, "wishlist_create_failed", err,
			"user_id", userID)
		return
	}
	c.JSON(http.StatusCreated, list)
}

// @Summary      Update wishlist
// @Description  Replaces title and visibility. No ownership check is applied.
// @Tags         wishlists
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "Wishlist id"
// @Param        body  body  wishlistRequest  true  "Title and visibility"
// @Success      200   {object}  models.Wishlist
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/wishlists/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateWishlist(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	var req wishlistRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	list, err := h.services.Wishlists.Update(c.Request.Context(), id, req.ListTitle, req.IsPrivate)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdateWishlist, "wishlist_update_failed", err, "id", id)
		return
	}
	if list == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errWishlistNotFound})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Delete wishlist
// @Description  Returns the deleted row; items under the list are cascaded.
// @Tags         wishlists
// @Produce      json
// @Param        id  path  int  true  "Wishlist id"
// @Success      200  {object}  models.Wishlist
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/wishlists/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteWishlist(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	list, err := h.services.Wishlists.Delete(c.Request.Context(), id)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errDeleteWishlist, "wishlist_delete_failed", err, "id", id)
		return
	}
	if list == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errWishlistNotFound})
		return
	}
	c.JSON(http.StatusOK, list)
}
