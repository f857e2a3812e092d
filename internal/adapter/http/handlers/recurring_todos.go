package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"famitodo/internal/adapter/http/dto"
	"famitodo/internal/adapter/http/mapper"
	"famitodo/internal/adapter/http/middleware"
	"famitodo/internal/adapter/http/validation"
	"famitodo/internal/core/domain"
	"famitodo/internal/core/ports"
	"famitodo/pkg/apierrors"
)

type RecurringTodoHandler struct {
	recurringTodoService ports.RecurringTodoService
}

func NewRecurringTodoHandler(recurringTodoService ports.RecurringTodoService) *RecurringTodoHandler {
	return &RecurringTodoHandler{recurringTodoService: recurringTodoService}
}

func (h *RecurringTodoHandler) Create(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateRecurringTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRecurringTodoPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateRecurringTodoInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRecurringTodoPayload, lang),
		)
		return
	}

	todo, err := h.recurringTodoService.Create(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidGenerationTime) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRecurringTodoPayload, lang),
			)
			return
		}

		zap.L().Error("failed to create recurring todo", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateRecurringTodo, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToRecurringTodoItem(todo))
}

func (h *RecurringTodoHandler) Get(c *gin.Context) {
	lang := middleware.GetLang(c)

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRecurringTodoID, lang),
		)
		return
	}

	todo, err := h.recurringTodoService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecurringTodoNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgRecurringTodoNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get recurring todo", zap.String("recurring_todo_id", id), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListRecurringTodos, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToRecurringTodoItem(todo))
}

func (h *RecurringTodoHandler) ListByGroup(c *gin.Context) {
	lang := middleware.GetLang(c)

	groupID := strings.TrimSpace(c.Param("id"))
	if groupID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgGroupNotFound, lang),
		)
		return
	}

	todos, err := h.recurringTodoService.ListByGroup(c.Request.Context(), groupID)
	if err != nil {
		zap.L().Error("failed to list recurring todos", zap.String("group_id", groupID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListRecurringTodos, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToRecurringTodoItems(todos))
}

func (h *RecurringTodoHandler) Update(c *gin.Context) {
	lang := middleware.GetLang(c)

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRecurringTodoID, lang),
		)
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRecurringTodoPayload, lang),
		)
		return
	}

	var raw map[string]json.RawMessage
	var req dto.UpdateRecurringTodoRequest
	if err := json.Unmarshal(body, &raw); err != nil || json.Unmarshal(body, &req) != nil || req.UserID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRecurringTodoPayload, lang),
		)
		return
	}

	// The merged shape is validated against the stored rule, so the current
	// record is loaded before the payload is accepted.
	current, err := h.recurringTodoService.Get(c.Request.Context(), id)
	if err != nil {
		h.respondRuleError(c, lang, id, err, apierrors.MsgFailUpdateRecurringTodo)
		return
	}

	input, err := validation.BuildUpdateRecurringTodoInput(req, raw, current)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRecurringTodoPayload, lang),
		)
		return
	}

	todo, err := h.recurringTodoService.Update(c.Request.Context(), id, req.UserID, input)
	if err != nil {
		h.respondRuleError(c, lang, id, err, apierrors.MsgFailUpdateRecurringTodo)
		return
	}

	c.JSON(http.StatusOK, mapper.ToRecurringTodoItem(todo))
}

func (h *RecurringTodoHandler) Toggle(c *gin.Context) {
	lang := middleware.GetLang(c)

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRecurringTodoID, lang),
		)
		return
	}

	var req dto.ToggleRecurringTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRecurringTodoPayload, lang),
		)
		return
	}

	todo, err := h.recurringTodoService.Toggle(c.Request.Context(), id, req.UserID)
	if err != nil {
		h.respondRuleError(c, lang, id, err, apierrors.MsgFailToggleRecurringTodo)
		return
	}

	c.JSON(http.StatusOK, mapper.ToRecurringTodoItem(todo))
}

func (h *RecurringTodoHandler) Delete(c *gin.Context) {
	lang := middleware.GetLang(c)

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRecurringTodoID, lang),
		)
		return
	}

	var req dto.DeleteRecurringTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRecurringTodoPayload, lang),
		)
		return
	}

	if err := h.recurringTodoService.Delete(c.Request.Context(), id, req.UserID); err != nil {
		h.respondRuleError(c, lang, id, err, apierrors.MsgFailDeleteRecurringTodo)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RecurringTodoHandler) respondRuleError(c *gin.Context, lang, id string, err error, failMsgKey string) {
	switch {
	case errors.Is(err, domain.ErrRecurringTodoNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgRecurringTodoNotFound, lang),
		)
	case errors.Is(err, domain.ErrGroupNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgGroupNotFound, lang),
		)
	case errors.Is(err, domain.ErrPermissionDenied):
		c.JSON(
			http.StatusForbidden,
			apierrors.CreateError(http.StatusForbidden, apierrors.MsgPermissionDenied, lang),
		)
	case errors.Is(err, domain.ErrInvalidGenerationTime):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRecurringTodoPayload, lang),
		)
	default:
		zap.L().Error("recurring todo operation failed", zap.String("recurring_todo_id", id), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, failMsgKey, lang),
		)
	}
}
