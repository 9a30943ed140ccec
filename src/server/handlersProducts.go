package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	app "storeadmin/src/app"
)

// GetProducts lists the store's products. Query parameters categoryId,
// colorId, sizeId and isFeatured narrow the result.
func (a *AppHandler) GetProducts(c *gin.Context) {
	filter := app.ProductFilter{
		CategoryID: c.Query("categoryId"),
		ColorID:    c.Query("colorId"),
		SizeID:     c.Query("sizeId"),
	}
	if raw, ok := c.GetQuery("isFeatured"); ok && raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			c.String(http.StatusBadRequest, "isFeatured must be a boolean")
			return
		}
		filter.IsFeatured = &featured
	}
	products, err := a.services.Products.List(c.Request.Context(), c.Param("storeId"), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (a *AppHandler) GetProduct(c *gin.Context) {
	product, err := a.services.Products.Get(c.Request.Context(), c.Param("productId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (a *AppHandler) PostProduct(c *gin.Context) {
	var body app.ProductInput
	if !bindJSON(c, &body) {
		return
	}
	product, err := a.services.Products.Create(c.Request.Context(), currentUser(c), c.Param("storeId"), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (a *AppHandler) PatchProduct(c *gin.Context) {
	var body app.ProductInput
	if !bindJSON(c, &body) {
		return
	}
	product, err := a.services.Products.Update(c.Request.Context(), currentUser(c),
		c.Param("storeId"), c.Param("productId"), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (a *AppHandler) DeleteProduct(c *gin.Context) {
	product, err := a.services.Products.Delete(c.Request.Context(), currentUser(c),
		c.Param("storeId"), c.Param("productId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}
