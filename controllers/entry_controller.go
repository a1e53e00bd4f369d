package controllers

import (
	"net/http"

	"github.com/WangRL15/Health-Management-Web-Application/middlewares"
	"github.com/WangRL15/Health-Management-Web-Application/services"
	"github.com/WangRL15/Health-Management-Web-Application/utils"

	"github.com/gin-gonic/gin"
)

// EntryController serves the list/create pair shared by workouts, diet logs,
// exercise logs and health goals.
type EntryController[T any] struct {
	svc     *services.EntryService[T]
	parse   func(userID uint, f utils.Fields) (*T, error)
	listKey string
	itemKey string
	notice  string
}

func NewEntryController[T any](
	svc *services.EntryService[T],
	parse func(uint, utils.Fields) (*T, error),
	listKey, itemKey, notice string,
) *EntryController[T] {
	return &EntryController[T]{svc: svc, parse: parse, listKey: listKey, itemKey: itemKey, notice: notice}
}

func (h *EntryController[T]) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	rows, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{h.listKey: rows, "notices": middlewares.Flashes(c)})
}

func (h *EntryController[T]) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	f, err := bindFields(c)
	if err != nil {
		respondError(c, err)
		return
	}
	rec, err := h.parse(userID, f)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.svc.Create(c.Request.Context(), userID, rec); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"notice": h.notice, h.itemKey: rec})
}
