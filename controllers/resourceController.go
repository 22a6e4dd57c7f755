package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/sanchitsharma1/Bizdash/config"
	"github.com/sanchitsharma1/Bizdash/models"
	"github.com/sanchitsharma1/Bizdash/repository"
)

// ResourceController serves the CRUD endpoints for one resource type. The
// same handler set is instantiated for expenses, earnings and inventory.
type ResourceController[T repository.Record] struct {
	repo *repository.Repository[T]
	name string // singular label used in messages, e.g. "expense"
}

func NewResourceController[T repository.Record](repo *repository.Repository[T], name string) *ResourceController[T] {
	return &ResourceController[T]{repo: repo, name: name}
}

// List returns the full collection in the resource's default order.
func (rc *ResourceController[T]) List(c *gin.Context) {
	records, err := rc.repo.List(c.Request.Context())
	if err != nil {
		rc.fail(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// Get returns a single record by id.
func (rc *ResourceController[T]) Get(c *gin.Context) {
	id, ok := rc.pathID(c)
	if !ok {
		return
	}
	record, err := rc.repo.Get(c.Request.Context(), id)
	if err != nil {
		rc.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Create validates and stores a new record, returning it with its id.
func (rc *ResourceController[T]) Create(c *gin.Context) {
	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindingMessage(err)})
		return
	}
	created, err := rc.repo.Create(c.Request.Context(), record)
	if err != nil {
		rc.fail(c, "create", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update replaces the whole stored record with the submitted fields.
func (rc *ResourceController[T]) Update(c *gin.Context) {
	id, ok := rc.pathID(c)
	if !ok {
		return
	}
	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindingMessage(err)})
		return
	}
	updated, err := rc.repo.Update(c.Request.Context(), id, record)
	if err != nil {
		rc.fail(c, "update", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes the record permanently.
func (rc *ResourceController[T]) Delete(c *gin.Context) {
	id, ok := rc.pathID(c)
	if !ok {
		return
	}
	if err := rc.repo.Delete(c.Request.Context(), id); err != nil {
		rc.fail(c, "delete", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": rc.name + " deleted successfully"})
}

// pathID parses the :id parameter. A non-numeric id can never exist, so it
// reports not found rather than a validation failure.
func (rc *ResourceController[T]) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": rc.name + " not found"})
		return 0, false
	}
	return id, true
}

// fail maps a repository error onto the response contract: validation → 400,
// missing id → 404, anything else → a generic 500 with the detail logged.
func (rc *ResourceController[T]) fail(c *gin.Context, operation string, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": rc.name + " not found"})
	default:
		config.LogError(rc.name, operation, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to " + operation + " " + rc.name})
	}
}

// bindingMessage turns a gin binding failure into a client-safe message.
// Tag failures from the declarative schema come back per field; malformed
// JSON or a non-numeric amount collapses into one generic line.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, ve := range verrs {
			parts = append(parts, strings.ToLower(ve.Field())+" failed on "+ve.Tag())
		}
		return "invalid fields: " + strings.Join(parts, ", ")
	}
	return "invalid request body: " + err.Error()
}
