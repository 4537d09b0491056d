package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	errItemNotFound  = "item not found"
	errListItems     = "failed to fetch items"
	errListUserItems = "failed to fetch items for user"
	errCreateItem    = "failed to create item"
	errUpdateItem    = "failed to update item"
	errDeleteItem    = "failed to delete item"
)

type itemRequest struct {
	ItemTitle   string   `json:"item_title" binding:"required"`
	Price       *float64 `json:"price"`
	ProductLink *string  `json:"product_link"`
}

// @Summary      List items of a wishlist
// @Tags         items
// @Produce      json
// @Param        wishlist_id  path  int  true  "Wishlist id"
// @Success      200  {array}   models.WishlistItem
// @Failure      500  {object}  map[string]string
// @Router       /api/wishlist-items/wishlist/{wishlist_id} [get]
func (h *Handler) listItemsByWishlist(c *gin.Context) {
	wishlistID, ok := h.parseIDParam(c, "wishlist_id")
	if !ok {
		return
	}
	items, err := h.services.Items.ListByWishlist(c.Request.Context(), wishlistID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListItems, "items_by_wishlist_failed", err,
			"wishlist_id", wishlistID)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary      List items across a user's wishlists
// @Tags         items
// @Produce      json
// @Param        user_id  path  int  true  "User id"
// @Success      200  {array}   models.WishlistItem
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/wishlist-items/user/{user_id} [get]
// @Security     BearerAuth
func (h *Handler) listItemsByUser(c *gin.Context) {
	userID, ok := h.parseIDParam(c, "user_id")
	if !ok {
		return
	}
	items, err := h.services.Items.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListUserItems, "items_by_user_failed", err,
			"user_id", userID)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary      Create item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        wishlist_id  path  int          true  "Wishlist id"
// @Param        body         body  itemRequest  true  "Title, optional price and link"
// @Success      201  {object}  models.WishlistItem
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/wishlist-items/{wishlist_id} [post]
// @Security     BearerAuth
func (h *Handler) createItem(c *gin.Context) {
	wishlistID, ok := h.parseIDParam(c, "wishlist_id")
	if !ok {
		return
	}
	var req itemRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	item, err := h.services.Items.Create(c.Request.Context(), wishlistID, req.ItemTitle, req.Price, req.ProductLink)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errCreateItem, "item_create_failed", err,
			"wishlist_id", wishlistID)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// @Summary      Update item
// @Description  Replaces title, price, and link. Omitted price/link become null.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  int          true  "Item id"
// @Param        body  body  itemRequest  true  "Title, optional price and link"
// @Success      200  {object}  models.WishlistItem
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/wishlist-items/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateItem(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	var req itemRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	item, err := h.services.Items.Update(c.Request.Context(), id, req.ItemTitle, req.Price, req.ProductLink)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdateItem, "item_update_failed", err, "id", id)
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errItemNotFound})
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary      Delete item
// @Description  Returns the deleted row.
// @Tags         items
// @Produce      json
// @Param        id  path  int  true  "Item id"
// @Success      200  {object}  models.WishlistItem
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/wishlist-items/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteItem(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	item, err := h.services.Items.Delete(c.Request.Context(), id)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errDeleteItem, "item_delete_failed", err, "id", id)
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errItemNotFound})
		return
	}
	c.JSON(http.StatusOK, item)
}
