package handlers

import (
	"net/http"

	response "lmnts_studio/internal/adapter/http/dto/response"
	"lmnts_studio/internal/domain/entities"
	"lmnts_studio/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static service catalog the funnel's selection
// step renders.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListServices returns the catalog, optionally narrowed to one category.
//
// @Summary      List catalog services
// @Tags         catalog
// @Produce      json
// @Param        category  query     string  false  "ai, creative or eventos"
// @Success      200       {array}   response.ServiceResponse
// @Failure      400       {object}  pkg.HTTPError
// @Router       /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusOK, response.FromCatalog(entities.Catalog()))
		return
	}

	cat := entities.ServiceCategory(category)
	if !cat.Valid() {
		appErr := pkg.NewDomainErrorSimple("UNKNOWN_CATEGORY", "Unknown service category", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalog(entities.CatalogByCategory(cat)))
}
