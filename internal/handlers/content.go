package handlers

import (
	"net/http"

	"clean-backend/internal/content"
	"clean-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// CollectionHandler serves the uniform CRUD set for one ordered kind.
type CollectionHandler[E any, P any] struct {
	name  string
	items store.Collection[E, P]
}

func NewCollectionHandler[E any, P any](name string, items store.Collection[E, P]) *CollectionHandler[E, P] {
	return &CollectionHandler[E, P]{name: name, items: items}
}

// Register mounts reads on public and writes on admin under path.
func (h *CollectionHandler[E, P]) Register(public, admin gin.IRouter, path string) {
	public.GET(path, h.List)
	public.GET(path+"/:id", h.Get)
	admin.POST(path, h.Create)
	admin.PUT(path+"/:id", h.Update)
	admin.DELETE(path+"/:id", h.Delete)
}

func (h *CollectionHandler[E, P]) List(c *gin.Context) {
	items, err := h.items.List(c.Request.Context())
	if err != nil {
		respondError(c, h.name, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CollectionHandler[E, P]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.items.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.name, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CollectionHandler[E, P]) Create(c *gin.Context) {
	var p P
	if !bindJSON(c, h.name, &p) {
		return
	}
	if err := content.ValidateCreate(&p); err != nil {
		respondError(c, h.name, err)
		return
	}
	item, err := h.items.Create(c.Request.Context(), p)
	if err != nil {
		respondError(c, h.name, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *CollectionHandler[E, P]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var p P
	if !bindJSON(c, h.name, &p) {
		return
	}
	if err := content.ValidateUpdate(&p); err != nil {
		respondError(c, h.name, err)
		return
	}
	item, err := h.items.Update(c.Request.Context(), id, p)
	if err != nil {
		respondError(c, h.name, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CollectionHandler[E, P]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := h.items.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.name, err)
		return
	}
	if !deleted {
		respondError(c, h.name, store.ErrNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// SingletonHandler serves a section that holds at most one row.
type SingletonHandler[E any, P any] struct {
	name string
	item store.Singleton[E, P]
}

func NewSingletonHandler[E any, P any](name string, item store.Singleton[E, P]) *SingletonHandler[E, P] {
	return &SingletonHandler[E, P]{name: name, item: item}
}

func (h *SingletonHandler[E, P]) Register(public, admin gin.IRouter, path string) {
	public.GET(path, h.Get)
	admin.PUT(path, h.Replace)
}

func (h *SingletonHandler[E, P]) Get(c *gin.Context) {
	item, err := h.item.Get(c.Request.Context())
	if err != nil {
		respondError(c, h.name, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Replace takes a complete payload and upserts the row.
func (h *SingletonHandler[E, P]) Replace(c *gin.Context) {
	var p P
	if !bindJSON(c, h.name, &p) {
		return
	}
	if err := content.ValidateCreate(&p); err != nil {
		respondError(c, h.name, err)
		return
	}
	item, err := h.item.Replace(c.Request.Context(), p)
	if err != nil {
		respondError(c, h.name, err)
		return
	}
	c.JSON(http.StatusOK, item)
}
