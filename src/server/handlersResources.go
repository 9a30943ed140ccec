package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "storeadmin/src/app"
)

func (a *AppHandler) GetStores(c *gin.Context) {
	stores, err := a.services.Stores.List(c.Request.Context(), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stores)
}

func (a *AppHandler) GetStore(c *gin.Context) {
	store, err := a.services.Stores.Get(c.Request.Context(), currentUser(c), c.Param("storeId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, store)
}

func (a *AppHandler) PostStore(c *gin.Context) {
	var body app.StoreInput
	if !bindJSON(c, &body) {
		return
	}
	store, err := a.services.Stores.Create(c.Request.Context(), currentUser(c), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, store)
}

func (a *AppHandler) PatchStore(c *gin.Context) {
	var body app.StoreInput
	if !bindJSON(c, &body) {
		return
	}
	store, err := a.services.Stores.Rename(c.Request.Context(), currentUser(c), c.Param("storeId"), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, store)
}

func (a *AppHandler) DeleteStore(c *gin.Context) {
	store, err := a.services.Stores.Delete(c.Request.Context(), currentUser(c), c.Param("storeId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, store)
}

func (a *AppHandler) GetCategories(c *gin.Context) {
	categories, err := a.services.Categories.List(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (a *AppHandler) GetCategory(c *gin.Context) {
	category, err := a.services.Categories.Get(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (a *AppHandler) PostCategory(c *gin.Context) {
	var body app.CategoryInput
	if !bindJSON(c, &body) {
		return
	}
	category, err := a.services.Categories.Create(c.Request.Context(), currentUser(c), c.Param("storeId"), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (a *AppHandler) PatchCategory(c *gin.Context) {
	var body app.CategoryInput
	if !bindJSON(c, &body) {
		return
	}
	category, err := a.services.Categories.Update(c.Request.Context(), currentUser(c),
		c.Param("storeId"), c.Param("categoryId"), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (a *AppHandler) DeleteCategory(c *gin.Context) {
	category, err := a.services.Categories.Delete(c.Request.Context(), currentUser(c),
		c.Param("storeId"), c.Param("categoryId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// attributeRoutes registers list/read/write routes for colors or sizes
// under group, e.g. /:storeId/colors and /:storeId/colors/:id.
func (a *AppHandler) attributeRoutes(group *gin.RouterGroup, path string, service *app.AttributeService) {
	group.GET("/:storeId/"+path, func(c *gin.Context) {
		attributes, err := service.List(c.Request.Context(), c.Param("storeId"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, attributes)
	})
	group.POST("/:storeId/"+path, func(c *gin.Context) {
		var body app.AttributeInput
		if !bindJSON(c, &body) {
			return
		}
		attribute, err := service.Create(c.Request.Context(), currentUser(c), c.Param("storeId"), body)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, attribute)
	})
	group.GET("/:storeId/"+path+"/:id", func(c *gin.Context) {
		attribute, err := service.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, attribute)
	})
	group.PATCH("/:storeId/"+path+"/:id", func(c *gin.Context) {
		var body app.AttributeInput
		if !bindJSON(c, &body) {
			return
		}
		attribute, err := service.Update(c.Request.Context(), currentUser(c), c.Param("storeId"), c.Param("id"), body)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, attribute)
	})
	group.DELETE("/:storeId/"+path+"/:id", func(c *gin.Context) {
		attribute, err := service.Delete(c.Request.Context(), currentUser(c), c.Param("storeId"), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, attribute)
	})
}
