package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/khoahotran/portfolio-builder/internal/application/usecase/portfolio"
	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-builder/pkg/apperror"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

type PortfolioHandler struct {
	store  *portfolioUC.Store
	logger logger.Logger
}

func NewPortfolioHandler(store *portfolioUC.Store, log logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{store: store, logger: log}
}

func (h *PortfolioHandler) ListPortfolios(c *gin.Context) {
	q, err := ParseListQuery(c)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToPortfolioSummaryDTOs(h.store.Query(q)))
}

func (h *PortfolioHandler) CreatePortfolio(c *gin.Context) {
	var req portfolio.Draft
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	if err := portfolio.ValidateDraft(req); err != nil {
		c.Error(err)
		return
	}

	p, err := h.store.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	id := c.Param("id")
	p, ok := h.store.GetByID(id)
	if !ok {
		c.Error(apperror.NewNotFound("portfolio", id))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PortfolioHandler) GetCurrentPortfolio(c *gin.Context) {
	p, ok := h.store.Current()
	if !ok {
		c.Error(apperror.NewNotFound("portfolio", "current"))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PortfolioHandler) UpdatePortfolio(c *gin.Context) {
	id := c.Param("id")

	var patch portfolio.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(bindError(err))
		return
	}
	if patch.IsEmpty() {
		c.Error(apperror.NewInvalidInput("patch has no fields", nil))
		return
	}
	if err := patch.Validate(); err != nil {
		c.Error(err)
		return
	}

	p, found, err := h.store.Update(c.Request.Context(), id, patch)
	if !found {
		c.Error(apperror.NewNotFound("portfolio", id))
		return
	}
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PortfolioHandler) DeletePortfolio(c *gin.Context) {
	id := c.Param("id")
	found, err := h.store.Delete(c.Request.Context(), id)
	if !found {
		c.Error(apperror.NewNotFound("portfolio", id))
		return
	}
	if err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PortfolioHandler) ListTemplates(c *gin.Context) {
	dtos := make([]TemplateDTO, len(portfolio.Templates))
	for i, t := range portfolio.Templates {
		dtos[i] = TemplateDTO{ID: t}
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *PortfolioHandler) GetFacets(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Facets())
}

func bindError(err error) error {
	if errors.Is(err, io.EOF) {
		return apperror.NewInvalidInput("request body is empty", err)
	}
	return apperror.NewInvalidInput("invalid request data", err)
}
