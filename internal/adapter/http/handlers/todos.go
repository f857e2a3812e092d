package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"famitodo/internal/adapter/http/dto"
	"famitodo/internal/adapter/http/mapper"
	"famitodo/internal/adapter/http/middleware"
	"famitodo/internal/core/domain"
	"famitodo/internal/core/ports"
	"famitodo/pkg/apierrors"
)

type TodoHandler struct {
	todoService ports.TodoService
}

func NewTodoHandler(todoService ports.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang),
		)
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang),
		)
		return
	}

	var deadline *time.Time
	if req.Deadline != nil {
		parsedDeadline, err := time.Parse(time.RFC3339, *req.Deadline)
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang),
			)
			return
		}
		deadline = &parsedDeadline
	}

	todo, err := h.todoService.Create(c.Request.Context(), domain.CreateTodoInput{
		GroupID:     req.GroupID,
		Title:       title,
		Description: req.Description,
		Deadline:    deadline,
		Category:    domain.TodoCategory(req.Category),
		AssigneeIDs: req.AssignedUserIDs,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		zap.L().Error("failed to create todo", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTodo, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTodoItem(todo))
}
