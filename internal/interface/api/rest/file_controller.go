package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-manager-api/internal/application/ports"
	"file-manager-api/internal/application/services"
	domain "file-manager-api/internal/domain/file"
	"file-manager-api/internal/interface/api/rest/dto/file"
	"file-manager-api/internal/interface/api/rest/middleware"
	"file-manager-api/internal/interface/api/rest/validator"
)

type FileController struct {
	fileService ports.FileService
	logger      *zap.Logger
}

// NewFileController registers the file routes behind the given middleware chain.
func NewFileController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
	mw ...gin.HandlerFunc,
) *FileController {
	fc := &FileController{
		fileService: fileService,
		logger:      logger,
	}

	g := r.Group("", mw...)
	g.GET(RouteFiles, fc.IndexHandler)
	g.POST(RouteFiles, fc.StoreHandler)
	g.GET(RouteFileCreate, fc.CreateHandler)
	g.POST(RouteFileMassDestroy, fc.MassDestroyHandler)
	g.GET(RouteFile, fc.ShowHandler)
	g.PUT(RouteFile, fc.UpdateHandler)
	g.PATCH(RouteFile, fc.UpdateHandler)
	g.DELETE(RouteFile, fc.DestroyHandler)
	g.GET(RouteFileEdit, fc.EditHandler)
	g.POST(RouteFileRestore, fc.RestoreHandler)
	g.DELETE(RouteFilePermaDestroy, fc.PermanentlyDeleteHandler)

	return fc
}

func (fc *FileController) toIndex(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, RouteFiles)
}

// fail maps service errors to responses. op names the failed call in the log line.
func (fc *FileController) fail(c *gin.Context, op, msg string, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrMediaNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrQuotaExceeded):
		fc.toIndex(c)
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
		fc.logger.Error(op+"() error", zap.Error(err))
	}
}

func (fc *FileController) idParam(c *gin.Context) (domain.ID, bool) {
	id, err := validator.ValidateID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, false
	}
	return domain.ID(id), true
}

func (fc *FileController) IndexHandler(c *gin.Context) {
	q, errs := validator.ValidateListQuery(c.Query("filter"), c.Query("show_deleted"))
	if errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid query",
			"details": errs,
		})
		return
	}

	l, err := fc.fileService.List(c.Request.Context(), middleware.Actor(c), q)
	if err != nil {
		fc.fail(c, "List", "failed to get files", err)
		return
	}

	c.JSON(http.StatusOK, file.ToResponseListing(*l))
}

func (fc *FileController) CreateHandler(c *gin.Context) {
	form, err := fc.fileService.CreateForm(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		fc.fail(c, "CreateForm", "failed to build the form", err)
		return
	}

	c.JSON(http.StatusOK, file.ToResponseCreateForm(*form))
}

func (fc *FileController) StoreHandler(c *gin.Context) {
	var req file.StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateStore(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	if _, err := fc.fileService.Store(c.Request.Context(), middleware.Actor(c), file.ToDomainStore(req)); err != nil {
		fc.fail(c, "Store", "failed to create files", err)
		return
	}

	fc.toIndex(c)
}

func (fc *FileController) EditHandler(c *gin.Context) {
	id, ok := fc.idParam(c)
	if !ok {
		return
	}

	form, err := fc.fileService.EditForm(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		fc.fail(c, "EditForm", "failed to build the form", err)
		return
	}

	c.JSON(http.StatusOK, file.ToResponseEditForm(*form))
}

func (fc *FileController) UpdateHandler(c *gin.Context) {
	id, ok := fc.idParam(c)
	if !ok {
		return
	}

	var req file.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUpdate(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	if _, err := fc.fileService.Update(c.Request.Context(), middleware.Actor(c), id, file.ToDomainUpdate(req)); err != nil {
		fc.fail(c, "Update", "failed to update the file", err)
		return
	}

	fc.toIndex(c)
}

func (fc *FileController) ShowHandler(c *gin.Context) {
	id, ok := fc.idParam(c)
	if !ok {
		return
	}

	d, err := fc.fileService.Show(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		fc.fail(c, "Show", "failed to get the file", err)
		return
	}

	c.JSON(http.StatusOK, file.ToResponseDetails(*d))
}

func (fc *FileController) DestroyHandler(c *gin.Context) {
	id, ok := fc.idParam(c)
	if !ok {
		return
	}

	if err := fc.fileService.Destroy(c.Request.Context(), middleware.Actor(c), id); err != nil {
		fc.fail(c, "Destroy", "failed to delete the file", err)
		return
	}

	fc.toIndex(c)
}

func (fc *FileController) MassDestroyHandler(c *gin.Context) {
	var req file.MassDestroyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	ids := file.ToDomainIDs(validator.UniqueIDs(req.IDs))
	if _, err := fc.fileService.MassDestroy(c.Request.Context(), middleware.Actor(c), ids); err != nil {
		fc.fail(c, "MassDestroy", "failed to delete files", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (fc *FileController) RestoreHandler(c *gin.Context) {
	id, ok := fc.idParam(c)
	if !ok {
		return
	}

	if _, err := fc.fileService.Restore(c.Request.Context(), middleware.Actor(c), id); err != nil {
		fc.fail(c, "Restore", "failed to restore the file", err)
		return
	}

	fc.toIndex(c)
}

func (fc *FileController) PermanentlyDeleteHandler(c *gin.Context) {
	id, ok := fc.idParam(c)
	if !ok {
		return
	}

	if err := fc.fileService.PermanentlyDelete(c.Request.Context(), middleware.Actor(c), id); err != nil {
		fc.fail(c, "PermanentlyDelete", "failed to delete the file", err)
		return
	}

	fc.toIndex(c)
}
